package rules

import (
	"fmt"
	"strings"
	"time"

	"adpilot/internal/core/domain"
)

// schedule pauses a campaign whenever the reference time falls outside every
// slot defined for the current weekday. Campaigns without schedule control
// or without any slots are never affected.
type schedule struct{}

func (schedule) Priority() int         { return 2 }
func (schedule) Name() domain.RuleName { return domain.RuleSchedule }

func (schedule) ForcedStatus() (domain.Status, bool) {
	return domain.StatusPaused, true
}

func (schedule) Evaluate(c domain.Campaign, slots []domain.ScheduleSlot, now time.Time) (bool, string) {
	if !c.ScheduleEnabled || len(slots) == 0 {
		return false, ""
	}

	weekday := domain.Weekday(now)
	tod := domain.TimeOfDayOf(now)

	for _, slot := range slots {
		if slot.Contains(weekday, tod) {
			return false, ""
		}
	}

	var today []string
	for _, slot := range slots {
		if slot.DayOfWeek == weekday {
			today = append(today, fmt.Sprintf("%d %s-%s", slot.DayOfWeek, slot.StartTime, slot.EndTime))
		}
	}
	info := "no slots for today"
	if len(today) > 0 {
		info = strings.Join(today, ", ")
	}

	return true, fmt.Sprintf("current time %s outside active slots (%s)", tod, info)
}
