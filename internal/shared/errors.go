// Package shared holds cross-cutting helpers used by every resource package.
package shared

import (
	"fmt"
	"net/http"
)

// StatusError is an error carrying the HTTP status it should surface with.
// Handlers construct it for conditions they classify themselves; anything
// else propagates untagged and defaults to an internal error downstream.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

// NotFoundf builds a StatusError tagged with 404 and a message naming the
// missing resource and key.
func NotFoundf(format string, args ...any) *StatusError {
	return &StatusError{Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}
