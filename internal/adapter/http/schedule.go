package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

type scheduleSlotRequest struct {
	DayOfWeek int              `json:"day_of_week"`
	StartTime domain.TimeOfDay `json:"start_time"`
	EndTime   domain.TimeOfDay `json:"end_time"`
}

type scheduleUpdateRequest struct {
	Slots []scheduleSlotRequest `json:"slots"`
}

type scheduleSlotResponse struct {
	ID         uuid.UUID        `json:"id"`
	CampaignID uuid.UUID        `json:"campaign_id"`
	DayOfWeek  int              `json:"day_of_week"`
	StartTime  domain.TimeOfDay `json:"start_time"`
	EndTime    domain.TimeOfDay `json:"end_time"`
}

func toSlotResponses(slots []domain.ScheduleSlot) []scheduleSlotResponse {
	resp := make([]scheduleSlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, scheduleSlotResponse{
			ID:         s.ID,
			CampaignID: s.CampaignID,
			DayOfWeek:  s.DayOfWeek,
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
		})
	}
	return resp
}

// handleSetSchedule replaces the whole weekly schedule of a campaign.
func (h *Handler) handleSetSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req scheduleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	params := make([]port.SlotParams, 0, len(req.Slots))
	for _, s := range req.Slots {
		params = append(params, port.SlotParams{
			DayOfWeek: s.DayOfWeek,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}

	slots, err := h.campaigns.SetSchedule(r.Context(), id, params)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toSlotResponses(slots))
}

func (h *Handler) handleGetSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	slots, err := h.campaigns.GetSchedule(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toSlotResponses(slots))
}

func (h *Handler) handleDeleteSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	if err := h.campaigns.ClearSchedule(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
