package post

import (
	"encoding/json"
	"errors"
	"net/http"

	"blog-backend/internal/handler/http/pathutil"
	"blog-backend/internal/handler/http/respond"
	postUC "blog-backend/internal/usecase/post"
)

var errInvalidBody = errors.New("invalid request body")

func writeError(w http.ResponseWriter, err error) {
	if respond.Validation(w, err) {
		return
	}
	switch {
	case errors.Is(err, postUC.ErrPostNotFound):
		respond.SafeError(w, http.StatusNotFound, err)
	case errors.Is(err, postUC.ErrInvalidPostID):
		respond.SafeError(w, http.StatusBadRequest, err)
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}

type ListHandler struct{ Svc *postUC.Service }

// ServeHTTP lists posts, newest first.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]DTO, 0, len(list))
	for _, p := range list {
		out = append(out, toDTO(p))
	}
	respond.JSON(w, http.StatusOK, out)
}

type GetHandler struct{ Svc *postUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	p, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(p))
}

type CreateHandler struct{ Svc *postUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	p, err := h.Svc.Create(r.Context(), postUC.CreateInput{
		Title:    req.Title,
		Content:  req.Content,
		Summary:  req.Summary,
		Category: req.Category,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(p))
}

type UpdateHandler struct{ Svc *postUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	p, err := h.Svc.Update(r.Context(), postUC.UpdateInput{
		ID:       id,
		Title:    req.Title,
		Content:  req.Content,
		Summary:  req.Summary,
		Category: req.Category,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(p))
}

type DeleteHandler struct{ Svc *postUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
