package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adpilot/internal/core/engine"
	"adpilot/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the campaign and evaluation usecases plus a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	campaigns   port.CampaignUseCase
	evaluations port.EvaluationUseCase
	logger      *slog.Logger
	router      chi.Router
}

// NewHandler creates a handler with all routes configured. metricsHandler
// serves the prometheus registry and may be nil to disable the endpoint.
func NewHandler(campaigns port.CampaignUseCase, evaluations port.EvaluationUseCase, logger *slog.Logger, metricsHandler http.Handler) *Handler {
	h := &Handler{campaigns: campaigns, evaluations: evaluations, logger: logger}
	r := chi.NewRouter()

	r.Get("/", h.handleServiceInfo)
	r.Get("/health", h.handleHealth)
	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Post("/campaigns/evaluate-all", h.handleEvaluateAll)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Patch("/campaigns/{id}", h.handleUpdateCampaign)

		r.Put("/campaigns/{id}/schedule", h.handleSetSchedule)
		r.Get("/campaigns/{id}/schedule", h.handleGetSchedule)
		r.Delete("/campaigns/{id}/schedule", h.handleDeleteSchedule)

		r.Post("/campaigns/{id}/evaluate", h.handleEvaluateCampaign)
		r.Get("/campaigns/{id}/evaluation-history", h.handleEvaluationHistory)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleServiceInfo identifies the service and the rule engine revision it
// runs.
func (h *Handler) handleServiceInfo(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"service": "adpilot",
		"version": engine.Version,
	})
}

// writeJSON encodes v with the proper content type. Encoding failures are
// logged; the status line has already been sent at that point.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps usecase errors onto HTTP status codes.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrCampaignNotFound):
		http.Error(w, "campaign not found", http.StatusNotFound)
	case errors.Is(err, port.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
