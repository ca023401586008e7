// Package rules holds the closed set of business rules that decide whether
// a campaign should be forced out of delivery. Rules are pure: they never
// mutate their inputs, perform no I/O and are safe to call concurrently for
// different campaigns.
package rules

import (
	"time"

	"adpilot/internal/core/domain"
)

// Rule is one business condition with a fixed precedence. The set of
// implementations is sealed inside this package; NewRegistry is the only
// construction point.
type Rule interface {
	// Priority orders rule execution, 1 being checked first. Priorities are
	// distinct across the registry.
	Priority() int

	// Name is the stable identifier recorded in evaluation logs.
	Name() domain.RuleName

	// ForcedStatus returns the status to apply when the rule fires. ok is
	// false when the rule does not override the target status and the
	// campaign keeps whatever target it already had.
	ForcedStatus() (status domain.Status, ok bool)

	// Evaluate reports whether the rule fires for the given snapshot and, if
	// so, a human-readable explanation.
	Evaluate(c domain.Campaign, slots []domain.ScheduleSlot, now time.Time) (fired bool, details string)
}
