// Package engine applies the business rules to campaign snapshots. It is
// pure computation: all persistence happens in the adapters around it.
package engine

import (
	"time"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/rules"
)

// Version tags every context snapshot; bump it on snapshot schema changes.
const Version = "1.0"

// Result is the outcome of one evaluation. TriggeredRule is empty when no
// rule fired, in which case TargetStatus is active and Details is empty.
type Result struct {
	TargetStatus  domain.Status
	TriggeredRule domain.RuleName
	Details       string
}

// Engine iterates the rule registry in priority order and short-circuits on
// the first match. It holds no mutable state and may be shared across
// goroutines.
type Engine struct {
	rules []rules.Rule
}

// New builds an engine over the full rule registry. It fails when the
// registry is malformed (duplicate priorities), which is a startup defect.
func New() (*Engine, error) {
	rs, err := rules.NewRegistry()
	if err != nil {
		return nil, err
	}
	return &Engine{rules: rs}, nil
}

// Evaluate runs the rules against one campaign with its schedule slots at
// the given reference time. A zero now defaults to the wall clock. The first
// rule that fires decides the outcome; with no match the target is active.
func (e *Engine) Evaluate(c domain.Campaign, slots []domain.ScheduleSlot, now time.Time) Result {
	if now.IsZero() {
		now = time.Now()
	}

	for _, r := range e.rules {
		fired, details := r.Evaluate(c, slots, now)
		if !fired {
			continue
		}

		target, ok := r.ForcedStatus()
		if !ok {
			// no-override rule: keep the existing target, default active
			target = c.TargetStatus
			if target == "" {
				target = domain.StatusActive
			}
		}
		return Result{TargetStatus: target, TriggeredRule: r.Name(), Details: details}
	}

	return Result{TargetStatus: domain.StatusActive}
}

// EvaluateAndLog evaluates the campaign and builds the audit record for the
// decision. The log is always produced, dry run included; dryRun gates only
// the in-memory mutation of the campaign's target status. The caller is
// responsible for committing the log and the mutated campaign atomically.
func (e *Engine) EvaluateAndLog(c *domain.Campaign, slots []domain.ScheduleSlot, now time.Time, dryRun bool) (Result, domain.EvaluationLog) {
	if now.IsZero() {
		now = time.Now()
	}

	previous := c.TargetStatus
	res := e.Evaluate(*c, slots, now)

	entry := domain.EvaluationLog{
		ID:             uuid.New(),
		CampaignID:     c.ID,
		TriggeredRule:  res.TriggeredRule,
		PreviousTarget: previous,
		NewTarget:      res.TargetStatus,
		Context:        buildContext(*c, slots, now),
		CreatedAt:      now,
	}

	if !dryRun {
		c.TargetStatus = res.TargetStatus
	}
	return res, entry
}
