package author

import (
	"net/http"

	"blog-backend/internal/handler/http/pathutil"
	"blog-backend/internal/handler/http/respond"
	authorUC "blog-backend/internal/usecase/author"
)

type DeleteHandler struct{ Svc *authorUC.Service }

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
