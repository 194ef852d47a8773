package author

import (
	"errors"
	"net/http"

	"blog-backend/internal/handler/http/respond"
	authorUC "blog-backend/internal/usecase/author"
)

var errInvalidBody = errors.New("invalid request body")

func writeError(w http.ResponseWriter, err error) {
	if respond.Validation(w, err) {
		return
	}
	switch {
	case errors.Is(err, authorUC.ErrAuthorNotFound):
		respond.SafeError(w, http.StatusNotFound, err)
	case errors.Is(err, authorUC.ErrInvalidAuthorID):
		respond.SafeError(w, http.StatusBadRequest, err)
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
