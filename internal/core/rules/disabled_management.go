package rules

import (
	"time"

	"adpilot/internal/core/domain"
)

// disabledManagement wins over every other rule: a campaign with automatic
// management switched off keeps its current target status untouched.
type disabledManagement struct{}

func (disabledManagement) Priority() int         { return 1 }
func (disabledManagement) Name() domain.RuleName { return domain.RuleDisabledManagement }

func (disabledManagement) ForcedStatus() (domain.Status, bool) {
	return "", false
}

func (disabledManagement) Evaluate(c domain.Campaign, _ []domain.ScheduleSlot, _ time.Time) (bool, string) {
	if !c.IsManaged {
		return true, "campaign management is disabled"
	}
	return false, ""
}
