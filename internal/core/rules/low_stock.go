package rules

import (
	"fmt"
	"time"

	"adpilot/internal/core/domain"
)

// lowStock pauses a campaign whose advertised product is about to run out.
// The comparison is strict: hitting the minimum exactly does not fire.
type lowStock struct{}

func (lowStock) Priority() int         { return 3 }
func (lowStock) Name() domain.RuleName { return domain.RuleLowStock }

func (lowStock) ForcedStatus() (domain.Status, bool) {
	return domain.StatusPaused, true
}

func (lowStock) Evaluate(c domain.Campaign, _ []domain.ScheduleSlot, _ time.Time) (bool, string) {
	if c.StockDaysMin == nil || c.StockDaysLeft == nil {
		return false, ""
	}
	if *c.StockDaysLeft < *c.StockDaysMin {
		return true, fmt.Sprintf("stock %d days left, minimum is %d", *c.StockDaysLeft, *c.StockDaysMin)
	}
	return false, ""
}
