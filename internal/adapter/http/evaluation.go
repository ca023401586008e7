package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
)

type evaluationResponse struct {
	TargetStatus  domain.Status   `json:"target_status"`
	TriggeredRule domain.RuleName `json:"triggered_rule,omitempty"`
	RuleDetails   string          `json:"rule_details,omitempty"`
}

type bulkEvaluationItemResponse struct {
	CampaignID    uuid.UUID       `json:"campaign_id"`
	TargetStatus  domain.Status   `json:"target_status"`
	TriggeredRule domain.RuleName `json:"triggered_rule,omitempty"`
}

type bulkEvaluationResponse struct {
	Evaluated int                          `json:"evaluated"`
	Results   []bulkEvaluationItemResponse `json:"results"`
}

type evaluationLogResponse struct {
	ID             uuid.UUID                `json:"id"`
	CampaignID     uuid.UUID                `json:"campaign_id"`
	TriggeredRule  domain.RuleName          `json:"triggered_rule,omitempty"`
	PreviousTarget domain.Status            `json:"previous_target"`
	NewTarget      domain.Status            `json:"new_target"`
	Context        domain.EvaluationContext `json:"context"`
	CreatedAt      time.Time                `json:"created_at"`
}

// dryRunParam reads the dry_run query flag; evaluation then still logs but
// leaves the stored target status untouched.
func dryRunParam(r *http.Request) (bool, bool) {
	v := r.URL.Query().Get("dry_run")
	if v == "" {
		return false, true
	}
	dryRun, err := strconv.ParseBool(v)
	return dryRun, err == nil
}

func (h *Handler) handleEvaluateCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	dryRun, ok := dryRunParam(r)
	if !ok {
		http.Error(w, "invalid dry_run", http.StatusBadRequest)
		return
	}

	res, err := h.evaluations.EvaluateCampaign(r.Context(), id, dryRun)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, evaluationResponse{
		TargetStatus:  res.TargetStatus,
		TriggeredRule: res.TriggeredRule,
		RuleDetails:   res.RuleDetails,
	})
}

func (h *Handler) handleEvaluateAll(w http.ResponseWriter, r *http.Request) {
	dryRun, ok := dryRunParam(r)
	if !ok {
		http.Error(w, "invalid dry_run", http.StatusBadRequest)
		return
	}

	res, err := h.evaluations.EvaluateAll(r.Context(), dryRun)
	if err != nil {
		h.writeError(w, err)
		return
	}

	items := make([]bulkEvaluationItemResponse, 0, len(res.Results))
	for _, item := range res.Results {
		items = append(items, bulkEvaluationItemResponse{
			CampaignID:    item.CampaignID,
			TargetStatus:  item.TargetStatus,
			TriggeredRule: item.TriggeredRule,
		})
	}
	h.writeJSON(w, http.StatusOK, bulkEvaluationResponse{Evaluated: res.Evaluated, Results: items})
}

func (h *Handler) handleEvaluationHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	skip, limit := 0, 50
	if v := q.Get("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Error(w, "invalid skip", http.StatusBadRequest)
			return
		}
		skip = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	logs, err := h.evaluations.EvaluationHistory(r.Context(), id, skip, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := make([]evaluationLogResponse, 0, len(logs))
	for _, entry := range logs {
		resp = append(resp, evaluationLogResponse{
			ID:             entry.ID,
			CampaignID:     entry.CampaignID,
			TriggeredRule:  entry.TriggeredRule,
			PreviousTarget: entry.PreviousTarget,
			NewTarget:      entry.NewTarget,
			Context:        entry.Context,
			CreatedAt:      entry.CreatedAt,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}
