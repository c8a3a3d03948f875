package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biztrack/biztrack/internal/companies"
	"github.com/biztrack/biztrack/internal/industries"
	"github.com/biztrack/biztrack/internal/invoices"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(RouterParams{
		Logger:            logger,
		Config:            &Config{},
		CompaniesHandler:  companies.NewHandler(logger, companies.NewService(companies.NewRepository(nil))),
		InvoicesHandler:   invoices.NewHandler(logger, invoices.NewService(invoices.NewRepository(nil))),
		IndustriesHandler: industries.NewHandler(logger, industries.NewService(industries.NewRepository(nil))),
	})
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestUnmatchedPathIs404(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/invalid-url", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}
