package industries

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/biztrack/biztrack/internal/platform/httpx"
)

// Handler wires HTTP endpoints for industries and company-industry links.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
	}
}

// MountRoutes registers industry routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{code}", h.get)
	r.Post("/{industry_code}/{company_code}", h.link)
	r.Delete("/{industry_code}/{company_code}", h.unlink)
}

type industryForm struct {
	Code string `json:"code"`
	Name string `json:"name" validate:"required"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list industries", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"industries": out})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	ind, err := h.service.Get(r.Context(), code)
	if err != nil {
		h.logger.Error("get industry", slog.Any("error", err), slog.String("code", code))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"industry": ind})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var form industryForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validator.Struct(form); err != nil {
		h.logger.Error("create industry", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	created, err := h.service.Create(r.Context(), CreateIndustryInput{
		Code: form.Code,
		Name: form.Name,
	})
	if err != nil {
		h.logger.Error("create industry", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"industry": created})
}

func (h *Handler) link(w http.ResponseWriter, r *http.Request) {
	industryCode := chi.URLParam(r, "industry_code")
	companyCode := chi.URLParam(r, "company_code")

	assoc, err := h.service.Link(r.Context(), industryCode, companyCode)
	if err != nil {
		h.logger.Error("link company to industry", slog.Any("error", err),
			slog.String("industry_code", industryCode), slog.String("company_code", companyCode))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"result": assoc})
}

func (h *Handler) unlink(w http.ResponseWriter, r *http.Request) {
	industryCode := chi.URLParam(r, "industry_code")
	companyCode := chi.URLParam(r, "company_code")

	if err := h.service.Unlink(r.Context(), industryCode, companyCode); err != nil {
		h.logger.Error("unlink company from industry", slog.Any("error", err),
			slog.String("industry_code", industryCode), slog.String("company_code", companyCode))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"message": "Deleted"})
}
