package author

import (
	"encoding/json"
	"net/http"

	"blog-backend/internal/handler/http/pathutil"
	"blog-backend/internal/handler/http/respond"
	authorUC "blog-backend/internal/usecase/author"
)

type UpdateHandler struct{ Svc *authorUC.Service }

// ServeHTTP updates the fields present in the body.
// A rejected update leaves the stored author unchanged.
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

	a, err := h.Svc.Update(r.Context(), authorUC.UpdateInput{
		ID:          id,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(a))
}
