package engine

import (
	"time"

	"adpilot/internal/core/domain"
)

// contextSlotLimit caps how many slots a snapshot embeds; the full count is
// still recorded in SchedulesCount.
const contextSlotLimit = 5

// buildContext snapshots the inputs of an evaluation. Given identical
// inputs the snapshot marshals to identical JSON, engine version aside.
func buildContext(c domain.Campaign, slots []domain.ScheduleSlot, now time.Time) domain.EvaluationContext {
	var budget *string
	if c.BudgetLimit != nil {
		s := c.BudgetLimit.String()
		budget = &s
	}

	rendered := make([]domain.ContextSlot, 0, min(len(slots), contextSlotLimit))
	for _, slot := range slots[:min(len(slots), contextSlotLimit)] {
		rendered = append(rendered, domain.ContextSlot{
			Day:   slot.DayOfWeek,
			Start: slot.StartTime.String(),
			End:   slot.EndTime.String(),
		})
	}

	return domain.EvaluationContext{
		CurrentStatus:   c.CurrentStatus,
		IsManaged:       c.IsManaged,
		BudgetLimit:     budget,
		SpendToday:      c.SpendToday.String(),
		StockDaysLeft:   c.StockDaysLeft,
		StockDaysMin:    c.StockDaysMin,
		ScheduleEnabled: c.ScheduleEnabled,
		CurrentTime:     now.Format(time.RFC3339),
		CurrentWeekday:  domain.Weekday(now),
		SchedulesCount:  len(slots),
		Schedules:       rendered,
		EngineVersion:   Version,
	}
}
