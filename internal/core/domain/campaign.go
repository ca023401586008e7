package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a campaign. CurrentStatus reflects what
// is live on the ad platform; TargetStatus is what the rule engine wants it
// to be. The two may diverge until an external synchronizer reconciles them.
type Status string

const (
	StatusActive Status = "active"
	StatusPaused Status = "paused"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusPaused
}

// Campaign represents an advertising campaign under automatic status
// control. Money amounts are decimals in account currency units.
type Campaign struct {
	ID              uuid.UUID
	Name            string
	CurrentStatus   Status
	TargetStatus    Status
	IsManaged       bool
	BudgetLimit     *decimal.Decimal // nil means no daily budget cap
	SpendToday      decimal.Decimal
	StockDaysLeft   *int
	StockDaysMin    *int
	ScheduleEnabled bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NeedsSync reports whether the live status lags behind the engine's
// recommendation.
func (c Campaign) NeedsSync() bool {
	return c.CurrentStatus != c.TargetStatus
}
