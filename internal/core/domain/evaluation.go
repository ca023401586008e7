package domain

import (
	"time"

	"github.com/google/uuid"
)

// RuleName identifies a business rule in logs and reports. The empty value
// means no rule fired.
type RuleName string

const (
	RuleDisabledManagement RuleName = "disabled_management"
	RuleSchedule           RuleName = "schedule"
	RuleLowStock           RuleName = "low_stock"
	RuleBudgetExceeded     RuleName = "budget_exceeded"

	// RuleNoRestrictions is a reporting label for evaluations where no rule
	// fired. It is never stored as a triggered rule.
	RuleNoRestrictions RuleName = "no_restrictions"
)

// EvaluationLog is an immutable audit record of a single engine run for one
// campaign. Rows are append-only; the core never updates or deletes them.
type EvaluationLog struct {
	ID             uuid.UUID
	CampaignID     uuid.UUID
	TriggeredRule  RuleName // empty when no rule fired, stored as NULL
	PreviousTarget Status
	NewTarget      Status
	Context        EvaluationContext
	CreatedAt      time.Time
}

// EvaluationContext is the input snapshot captured alongside a decision.
// Field order is fixed so identical inputs marshal to identical JSON.
type EvaluationContext struct {
	CurrentStatus   Status        `json:"current_status"`
	IsManaged       bool          `json:"is_managed"`
	BudgetLimit     *string       `json:"budget_limit"`
	SpendToday      string        `json:"spend_today"`
	StockDaysLeft   *int          `json:"stock_days_left"`
	StockDaysMin    *int          `json:"stock_days_min"`
	ScheduleEnabled bool          `json:"schedule_enabled"`
	CurrentTime     string        `json:"current_time"`
	CurrentWeekday  int           `json:"current_weekday"`
	SchedulesCount  int           `json:"schedules_count"`
	Schedules       []ContextSlot `json:"schedules"`
	EngineVersion   string        `json:"engine_version"`
}

// ContextSlot is the compact slot rendering embedded in a context snapshot.
type ContextSlot struct {
	Day   int    `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}
