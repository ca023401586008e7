package port

import (
	"context"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
)

// EvaluationResult is the outcome of one campaign evaluation as exposed to
// callers. TriggeredRule is empty when no rule fired.
type EvaluationResult struct {
	TargetStatus  domain.Status
	TriggeredRule domain.RuleName
	RuleDetails   string
}

// BulkEvaluationItem is the per-campaign slice of a bulk run.
type BulkEvaluationItem struct {
	CampaignID    uuid.UUID
	TargetStatus  domain.Status
	TriggeredRule domain.RuleName
}

// BulkEvaluationResult aggregates a bulk run over all managed campaigns.
type BulkEvaluationResult struct {
	Evaluated int
	Results   []BulkEvaluationItem
}

// EvaluationUseCase drives the rule engine against stored campaigns. Every
// evaluation writes an audit log; dryRun gates only the target status
// mutation.
type EvaluationUseCase interface {
	EvaluateCampaign(ctx context.Context, id uuid.UUID, dryRun bool) (*EvaluationResult, error)
	// EvaluateAll evaluates every managed campaign with one batched schedule
	// lookup and commits all logs and mutations in a single transaction.
	EvaluateAll(ctx context.Context, dryRun bool) (*BulkEvaluationResult, error)
	EvaluationHistory(ctx context.Context, id uuid.UUID, skip, limit int) ([]domain.EvaluationLog, error)
}
