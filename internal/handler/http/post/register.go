package post

import (
	"net/http"

	postUC "blog-backend/internal/usecase/post"
)

// Register registers all post-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *postUC.Service) {
	mux.Handle("GET    /posts", ListHandler{svc})
	mux.Handle("POST   /posts", CreateHandler{svc})
	mux.Handle("GET    /posts/{id}", GetHandler{svc})
	mux.Handle("PUT    /posts/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /posts/{id}", DeleteHandler{svc})
}
