package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/engine"
	"adpilot/internal/core/port"
	"adpilot/pkg/metrics"
)

// EvaluationUseCase wires the rule engine to storage: it loads campaign
// snapshots, runs the engine and commits the resulting logs and status
// mutations. It implements port.EvaluationUseCase.
type EvaluationUseCase struct {
	repo    port.CampaignRepository
	engine  *engine.Engine
	metrics *metrics.Collector

	// now is swappable in tests; defaults to time.Now.
	now func() time.Time
}

// NewEvaluationUseCase creates the usecase. collector may be nil.
func NewEvaluationUseCase(repo port.CampaignRepository, eng *engine.Engine, collector *metrics.Collector) *EvaluationUseCase {
	return &EvaluationUseCase{repo: repo, engine: eng, metrics: collector, now: time.Now}
}

// EvaluateCampaign evaluates one campaign. The audit log is committed on
// every call; dryRun skips only the target status mutation. Schedule slots
// are fetched only when schedule rules can apply.
func (u *EvaluationUseCase) EvaluateCampaign(ctx context.Context, id uuid.UUID, dryRun bool) (*port.EvaluationResult, error) {
	started := u.now()

	campaign, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, port.ErrCampaignNotFound
	}

	var slots []domain.ScheduleSlot
	if campaign.ScheduleEnabled {
		if slots, err = u.repo.GetScheduleSlots(ctx, id); err != nil {
			return nil, err
		}
	}

	res, entry := u.engine.EvaluateAndLog(campaign, slots, started, dryRun)

	var mutated []domain.Campaign
	if !dryRun {
		mutated = append(mutated, *campaign)
	}
	if err = u.repo.SaveEvaluations(ctx, []domain.EvaluationLog{entry}, mutated); err != nil {
		return nil, err
	}

	u.metrics.RecordEvaluation(res.TriggeredRule)
	u.metrics.RecordDuration(time.Since(started))
	return &port.EvaluationResult{
		TargetStatus:  res.TargetStatus,
		TriggeredRule: res.TriggeredRule,
		RuleDetails:   res.Details,
	}, nil
}

// EvaluateAll runs the engine over every managed campaign. Slots are loaded
// with one batched query for the schedule-enabled subset, each campaign is
// evaluated independently against the same reference time, and all logs plus
// mutated campaigns are committed in one transaction. Evaluation itself is
// pure and cannot fail per campaign; a commit failure aborts the whole
// batch.
func (u *EvaluationUseCase) EvaluateAll(ctx context.Context, dryRun bool) (*port.BulkEvaluationResult, error) {
	campaigns, err := u.repo.ListManagedCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	if len(campaigns) == 0 {
		return &port.BulkEvaluationResult{Evaluated: 0, Results: []port.BulkEvaluationItem{}}, nil
	}

	var scheduleIDs []uuid.UUID
	for _, c := range campaigns {
		if c.ScheduleEnabled {
			scheduleIDs = append(scheduleIDs, c.ID)
		}
	}

	slotsByCampaign := map[uuid.UUID][]domain.ScheduleSlot{}
	if len(scheduleIDs) > 0 {
		if slotsByCampaign, err = u.repo.GetScheduleSlotsForMany(ctx, scheduleIDs); err != nil {
			return nil, err
		}
	}

	now := u.now()
	logs := make([]domain.EvaluationLog, 0, len(campaigns))
	mutated := make([]domain.Campaign, 0, len(campaigns))
	results := make([]port.BulkEvaluationItem, 0, len(campaigns))

	for i := range campaigns {
		campaign := &campaigns[i]

		var slots []domain.ScheduleSlot
		if campaign.ScheduleEnabled {
			slots = slotsByCampaign[campaign.ID]
		}

		res, entry := u.engine.EvaluateAndLog(campaign, slots, now, dryRun)
		logs = append(logs, entry)
		if !dryRun {
			mutated = append(mutated, *campaign)
		}

		u.metrics.RecordEvaluation(res.TriggeredRule)
		results = append(results, port.BulkEvaluationItem{
			CampaignID:    campaign.ID,
			TargetStatus:  res.TargetStatus,
			TriggeredRule: res.TriggeredRule,
		})
	}

	if err = u.repo.SaveEvaluations(ctx, logs, mutated); err != nil {
		return nil, err
	}

	u.metrics.RecordBulk(len(results))
	return &port.BulkEvaluationResult{Evaluated: len(results), Results: results}, nil
}

// EvaluationHistory pages the audit trail of one campaign, newest first.
func (u *EvaluationUseCase) EvaluationHistory(ctx context.Context, id uuid.UUID, skip, limit int) ([]domain.EvaluationLog, error) {
	campaign, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, port.ErrCampaignNotFound
	}
	return u.repo.ListEvaluationLogs(ctx, id, skip, limit)
}
