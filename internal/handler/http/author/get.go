package author

import (
	"net/http"

	"blog-backend/internal/handler/http/pathutil"
	"blog-backend/internal/handler/http/respond"
	authorUC "blog-backend/internal/usecase/author"
)

type GetHandler struct{ Svc *authorUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	a, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(a))
}
