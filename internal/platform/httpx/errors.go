package httpx

import (
	"errors"
	"net/http"

	"github.com/biztrack/biztrack/internal/shared"
)

// RespondError maps a handler error to an HTTP response. Errors tagged with a
// status via shared.StatusError surface with that status and message; every
// other failure defaults to an internal error carrying whatever message the
// underlying operation produced.
func RespondError(w http.ResponseWriter, err error) {
	var statusErr *shared.StatusError
	if errors.As(err, &statusErr) {
		Problem(w, statusErr.Status, http.StatusText(statusErr.Status), statusErr.Message)
		return
	}
	Problem(w, http.StatusInternalServerError, "Internal Error", err.Error())
}
