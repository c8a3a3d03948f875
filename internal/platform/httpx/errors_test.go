package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biztrack/biztrack/internal/shared"
)

func TestRespondErrorUsesTaggedStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondError(rr, shared.NotFoundf("Company code %s not found.", "acmecorp"))

	require.Equal(t, http.StatusNotFound, rr.Code)

	var body ProblemDetail
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, http.StatusNotFound, body.Status)
	require.Equal(t, "Company code acmecorp not found.", body.Detail)
}

func TestRespondErrorDefaultsToInternal(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondError(rr, errors.New(`null value in column "name" violates not-null constraint`))

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var body ProblemDetail
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, http.StatusInternalServerError, body.Status)
	require.Contains(t, body.Detail, "not-null constraint")
}

func TestRespondErrorUnwrapsWrappedStatusError(t *testing.T) {
	rr := httptest.NewRecorder()
	wrapped := errors.Join(shared.NotFoundf("Invoice id %d not found.", 7))
	RespondError(rr, wrapped)

	require.Equal(t, http.StatusNotFound, rr.Code)
}
