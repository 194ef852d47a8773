package author

import (
	"net/http"

	authorUC "blog-backend/internal/usecase/author"
)

// Register registers all author-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *authorUC.Service) {
	mux.Handle("GET    /authors", ListHandler{svc})
	mux.Handle("POST   /authors", CreateHandler{svc})
	mux.Handle("GET    /authors/{id}", GetHandler{svc})
	mux.Handle("PUT    /authors/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /authors/{id}", DeleteHandler{svc})
}
