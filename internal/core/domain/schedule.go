package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScheduleSlot is a recurring weekly time window during which a campaign is
// allowed to run. DayOfWeek uses ISO numbering with Monday = 0. Both ends of
// the interval are inclusive.
type ScheduleSlot struct {
	ID         uuid.UUID
	CampaignID uuid.UUID
	DayOfWeek  int
	StartTime  TimeOfDay
	EndTime    TimeOfDay
}

// Contains reports whether the slot covers the given weekday and time of
// day. Boundaries are inclusive on both ends.
func (s ScheduleSlot) Contains(weekday int, t TimeOfDay) bool {
	return s.DayOfWeek == weekday && s.StartTime <= t && t <= s.EndTime
}

// Weekday returns the ISO weekday index (Monday = 0) for t.
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// TimeOfDay is a wall-clock time within a day, stored as seconds since
// midnight. It maps to the Postgres TIME type and compares with ordinary
// integer operators.
type TimeOfDay int

// NewTimeOfDay builds a TimeOfDay from hours and minutes.
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*3600 + minute*60)
}

// TimeOfDayOf extracts the time-of-day component of t.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

// ParseTimeOfDay parses "15:04" or "15:04:05".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDayOf(t), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q", s)
}

func (t TimeOfDay) Hour() int   { return int(t) / 3600 }
func (t TimeOfDay) Minute() int { return int(t) / 60 % 60 }
func (t TimeOfDay) Second() int { return int(t) % 60 }

// Microseconds returns the offset since midnight in microseconds, the unit
// used by the Postgres TIME wire format.
func (t TimeOfDay) Microseconds() int64 {
	return int64(t) * 1e6
}

// TimeOfDayFromMicroseconds converts a Postgres TIME value back.
func TimeOfDayFromMicroseconds(us int64) TimeOfDay {
	return TimeOfDay(us / 1e6)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
