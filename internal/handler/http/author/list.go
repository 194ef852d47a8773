package author

import (
	"net/http"

	"blog-backend/internal/handler/http/respond"
	authorUC "blog-backend/internal/usecase/author"
)

type ListHandler struct{ Svc *authorUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(list))
	for _, a := range list {
		out = append(out, toDTO(a))
	}
	respond.JSON(w, http.StatusOK, out)
}
