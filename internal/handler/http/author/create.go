package author

import (
	"encoding/json"
	"net/http"

	"blog-backend/internal/handler/http/respond"
	authorUC "blog-backend/internal/usecase/author"
)

type CreateHandler struct{ Svc *authorUC.Service }

// ServeHTTP creates an author.
// 201 with the stored author; 400 naming the failed field; 409 if the name is taken.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	a, err := h.Svc.Create(r.Context(), authorUC.CreateInput{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(a))
}
