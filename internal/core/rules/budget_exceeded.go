package rules

import (
	"fmt"
	"time"

	"adpilot/internal/core/domain"
)

// budgetExceeded pauses a campaign once today's spend reaches its budget
// limit. The comparison is inclusive: spending exactly the limit fires.
type budgetExceeded struct{}

func (budgetExceeded) Priority() int         { return 4 }
func (budgetExceeded) Name() domain.RuleName { return domain.RuleBudgetExceeded }

func (budgetExceeded) ForcedStatus() (domain.Status, bool) {
	return domain.StatusPaused, true
}

func (budgetExceeded) Evaluate(c domain.Campaign, _ []domain.ScheduleSlot, _ time.Time) (bool, string) {
	if c.BudgetLimit == nil {
		return false, ""
	}
	if c.SpendToday.GreaterThanOrEqual(*c.BudgetLimit) {
		return true, fmt.Sprintf("spend %s >= limit %s", c.SpendToday, c.BudgetLimit)
	}
	return false, ""
}
