package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// campaignRequest is the JSON body for create and patch. Every field is a
// pointer so a patch can tell "absent" from "zero".
type campaignRequest struct {
	Name            *string          `json:"name"`
	CurrentStatus   *domain.Status   `json:"current_status"`
	IsManaged       *bool            `json:"is_managed"`
	BudgetLimit     *decimal.Decimal `json:"budget_limit"`
	SpendToday      *decimal.Decimal `json:"spend_today"`
	StockDaysLeft   *int             `json:"stock_days_left"`
	StockDaysMin    *int             `json:"stock_days_min"`
	ScheduleEnabled *bool            `json:"schedule_enabled"`
}

type campaignResponse struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	CurrentStatus   domain.Status    `json:"current_status"`
	TargetStatus    domain.Status    `json:"target_status"`
	IsManaged       bool             `json:"is_managed"`
	BudgetLimit     *decimal.Decimal `json:"budget_limit"`
	SpendToday      decimal.Decimal  `json:"spend_today"`
	StockDaysLeft   *int             `json:"stock_days_left"`
	StockDaysMin    *int             `json:"stock_days_min"`
	ScheduleEnabled bool             `json:"schedule_enabled"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:              c.ID,
		Name:            c.Name,
		CurrentStatus:   c.CurrentStatus,
		TargetStatus:    c.TargetStatus,
		IsManaged:       c.IsManaged,
		BudgetLimit:     c.BudgetLimit,
		SpendToday:      c.SpendToday,
		StockDaysLeft:   c.StockDaysLeft,
		StockDaysMin:    c.StockDaysMin,
		ScheduleEnabled: c.ScheduleEnabled,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// campaignID extracts and parses the {id} path parameter.
func campaignID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	params := port.CreateCampaignParams{
		IsManaged:       req.IsManaged,
		BudgetLimit:     req.BudgetLimit,
		SpendToday:      req.SpendToday,
		StockDaysLeft:   req.StockDaysLeft,
		StockDaysMin:    req.StockDaysMin,
		ScheduleEnabled: req.ScheduleEnabled,
	}
	if req.Name != nil {
		params.Name = *req.Name
	}
	if req.CurrentStatus != nil {
		params.CurrentStatus = *req.CurrentStatus
	}

	campaign, err := h.campaigns.Create(r.Context(), params)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(*campaign))
}

// handleListCampaigns supports skip/limit paging and the needs_sync filter
// (campaigns whose current and target statuses diverge).
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := port.CampaignFilter{Limit: 100}

	if v := q.Get("skip"); v != "" {
		skip, err := strconv.Atoi(v)
		if err != nil || skip < 0 {
			http.Error(w, "invalid skip", http.StatusBadRequest)
			return
		}
		filter.Skip = skip
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 || limit > 1000 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}
	if v := q.Get("needs_sync"); v != "" {
		needsSync, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, "invalid needs_sync", http.StatusBadRequest)
			return
		}
		filter.NeedsSync = &needsSync
	}

	campaigns, err := h.campaigns.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := make([]campaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		resp = append(resp, toCampaignResponse(c))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	campaign, err := h.campaigns.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(*campaign))
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req campaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	campaign, err := h.campaigns.Update(r.Context(), id, port.CampaignPatch{
		Name:            req.Name,
		CurrentStatus:   req.CurrentStatus,
		IsManaged:       req.IsManaged,
		BudgetLimit:     req.BudgetLimit,
		SpendToday:      req.SpendToday,
		StockDaysLeft:   req.StockDaysLeft,
		StockDaysMin:    req.StockDaysMin,
		ScheduleEnabled: req.ScheduleEnabled,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(*campaign))
}
