package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/engine"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

// Wed 2024-01-10 22:30, outside the demo 09:00-21:00 slot.
var wedLate = time.Date(2024, 1, 10, 22, 30, 0, 0, time.UTC)

func newEvaluationUseCase(t *testing.T, repo port.CampaignRepository) *EvaluationUseCase {
	t.Helper()
	eng, err := engine.New()
	if err != nil {
		t.Fatalf("engine.New error: %v", err)
	}
	u := NewEvaluationUseCase(repo, eng, nil)
	u.now = func() time.Time { return wedLate }
	return u
}

func wednesdaySlots(campaignID uuid.UUID) []domain.ScheduleSlot {
	return []domain.ScheduleSlot{{
		ID:         uuid.New(),
		CampaignID: campaignID,
		DayOfWeek:  2,
		StartTime:  domain.NewTimeOfDay(9, 0),
		EndTime:    domain.NewTimeOfDay(21, 0),
	}}
}

func TestEvaluateCampaignNotFound(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	id := uuid.New()

	repo.EXPECT().GetCampaign(mock.Anything, id).Return(nil, nil)

	u := newEvaluationUseCase(t, repo)
	if _, err := u.EvaluateCampaign(context.Background(), id, false); !errors.Is(err, port.ErrCampaignNotFound) {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
}

// A persisting evaluation commits both the log and the mutated campaign.
func TestEvaluateCampaignPersists(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	id := uuid.New()
	campaign := &domain.Campaign{
		ID:              id,
		CurrentStatus:   domain.StatusActive,
		TargetStatus:    domain.StatusActive,
		IsManaged:       true,
		SpendToday:      decimal.Zero,
		ScheduleEnabled: true,
	}

	repo.EXPECT().GetCampaign(mock.Anything, id).Return(campaign, nil)
	repo.EXPECT().GetScheduleSlots(mock.Anything, id).Return(wednesdaySlots(id), nil)

	var savedLogs []domain.EvaluationLog
	var savedCampaigns []domain.Campaign
	repo.EXPECT().
		SaveEvaluations(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, logs []domain.EvaluationLog, campaigns []domain.Campaign) {
			savedLogs = logs
			savedCampaigns = campaigns
		}).
		Return(nil)

	u := newEvaluationUseCase(t, repo)
	res, err := u.EvaluateCampaign(context.Background(), id, false)
	if err != nil {
		t.Fatalf("EvaluateCampaign error: %v", err)
	}
	if res.TargetStatus != domain.StatusPaused || res.TriggeredRule != domain.RuleSchedule {
		t.Fatalf("expected (paused, schedule), got (%s, %s)", res.TargetStatus, res.TriggeredRule)
	}

	if len(savedLogs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(savedLogs))
	}
	if savedLogs[0].PreviousTarget != domain.StatusActive || savedLogs[0].NewTarget != domain.StatusPaused {
		t.Fatalf("unexpected log transition %s -> %s", savedLogs[0].PreviousTarget, savedLogs[0].NewTarget)
	}
	if len(savedCampaigns) != 1 || savedCampaigns[0].TargetStatus != domain.StatusPaused {
		t.Fatalf("expected mutated campaign committed, got %+v", savedCampaigns)
	}
}

// A dry run still commits the log but leaves the campaign untouched.
func TestEvaluateCampaignDryRunStillLogs(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	id := uuid.New()
	campaign := &domain.Campaign{
		ID:            id,
		CurrentStatus: domain.StatusActive,
		TargetStatus:  domain.StatusActive,
		IsManaged:     true,
		SpendToday:    decimal.NewFromInt(2000),
	}
	limit := decimal.NewFromInt(1000)
	campaign.BudgetLimit = &limit

	repo.EXPECT().GetCampaign(mock.Anything, id).Return(campaign, nil)

	var savedLogs []domain.EvaluationLog
	var savedCampaigns []domain.Campaign
	repo.EXPECT().
		SaveEvaluations(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, logs []domain.EvaluationLog, campaigns []domain.Campaign) {
			savedLogs = logs
			savedCampaigns = campaigns
		}).
		Return(nil)

	u := newEvaluationUseCase(t, repo)
	res, err := u.EvaluateCampaign(context.Background(), id, true)
	if err != nil {
		t.Fatalf("EvaluateCampaign error: %v", err)
	}
	if res.TriggeredRule != domain.RuleBudgetExceeded {
		t.Fatalf("expected budget_exceeded, got %s", res.TriggeredRule)
	}

	if len(savedLogs) != 1 {
		t.Fatalf("dry run must still log, got %d logs", len(savedLogs))
	}
	if len(savedCampaigns) != 0 {
		t.Fatalf("dry run must not commit campaigns, got %d", len(savedCampaigns))
	}
	if campaign.TargetStatus != domain.StatusActive {
		t.Fatalf("dry run must not mutate the campaign, got %s", campaign.TargetStatus)
	}
}

// The schedule lookup is skipped entirely for campaigns without schedule
// control.
func TestEvaluateCampaignSkipsSlotLookup(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	id := uuid.New()
	campaign := &domain.Campaign{
		ID:            id,
		CurrentStatus: domain.StatusActive,
		TargetStatus:  domain.StatusActive,
		IsManaged:     true,
		SpendToday:    decimal.Zero,
	}

	repo.EXPECT().GetCampaign(mock.Anything, id).Return(campaign, nil)
	repo.EXPECT().SaveEvaluations(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	u := newEvaluationUseCase(t, repo)
	res, err := u.EvaluateCampaign(context.Background(), id, false)
	if err != nil {
		t.Fatalf("EvaluateCampaign error: %v", err)
	}
	if res.TargetStatus != domain.StatusActive || res.TriggeredRule != "" {
		t.Fatalf("expected (active, none), got (%s, %s)", res.TargetStatus, res.TriggeredRule)
	}
	repo.AssertNotCalled(t, "GetScheduleSlots", mock.Anything, mock.Anything)
}

func TestEvaluateAllEmpty(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ListManagedCampaigns(mock.Anything).Return(nil, nil)

	u := newEvaluationUseCase(t, repo)
	res, err := u.EvaluateAll(context.Background(), false)
	if err != nil {
		t.Fatalf("EvaluateAll error: %v", err)
	}
	if res.Evaluated != 0 || len(res.Results) != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
}

// Bulk evaluation batches the slot lookup for the schedule-enabled subset
// and commits everything in one call.
func TestEvaluateAllBatches(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	scheduled := domain.Campaign{
		ID:              uuid.New(),
		CurrentStatus:   domain.StatusActive,
		TargetStatus:    domain.StatusActive,
		IsManaged:       true,
		SpendToday:      decimal.Zero,
		ScheduleEnabled: true,
	}
	plain := domain.Campaign{
		ID:            uuid.New(),
		CurrentStatus: domain.StatusActive,
		TargetStatus:  domain.StatusActive,
		IsManaged:     true,
		SpendToday:    decimal.Zero,
	}

	repo.EXPECT().ListManagedCampaigns(mock.Anything).Return([]domain.Campaign{scheduled, plain}, nil)
	repo.EXPECT().
		GetScheduleSlotsForMany(mock.Anything, []uuid.UUID{scheduled.ID}).
		Return(map[uuid.UUID][]domain.ScheduleSlot{scheduled.ID: wednesdaySlots(scheduled.ID)}, nil)

	var savedLogs []domain.EvaluationLog
	var savedCampaigns []domain.Campaign
	repo.EXPECT().
		SaveEvaluations(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, logs []domain.EvaluationLog, campaigns []domain.Campaign) {
			savedLogs = logs
			savedCampaigns = campaigns
		}).
		Return(nil)

	u := newEvaluationUseCase(t, repo)
	res, err := u.EvaluateAll(context.Background(), false)
	if err != nil {
		t.Fatalf("EvaluateAll error: %v", err)
	}

	if res.Evaluated != 2 {
		t.Fatalf("expected 2 evaluated, got %d", res.Evaluated)
	}
	byID := map[uuid.UUID]port.BulkEvaluationItem{}
	for _, item := range res.Results {
		byID[item.CampaignID] = item
	}
	if byID[scheduled.ID].TriggeredRule != domain.RuleSchedule || byID[scheduled.ID].TargetStatus != domain.StatusPaused {
		t.Errorf("scheduled campaign: expected (paused, schedule), got %+v", byID[scheduled.ID])
	}
	if byID[plain.ID].TriggeredRule != "" || byID[plain.ID].TargetStatus != domain.StatusActive {
		t.Errorf("plain campaign: expected (active, none), got %+v", byID[plain.ID])
	}

	if len(savedLogs) != 2 {
		t.Errorf("expected 2 logs in one commit, got %d", len(savedLogs))
	}
	if len(savedCampaigns) != 2 {
		t.Errorf("expected 2 campaigns in one commit, got %d", len(savedCampaigns))
	}
}

// A bulk dry run commits every log but mutates no campaign.
func TestEvaluateAllDryRun(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	scheduled := domain.Campaign{
		ID:              uuid.New(),
		CurrentStatus:   domain.StatusActive,
		TargetStatus:    domain.StatusActive,
		IsManaged:       true,
		SpendToday:      decimal.Zero,
		ScheduleEnabled: true,
	}
	plain := domain.Campaign{
		ID:            uuid.New(),
		CurrentStatus: domain.StatusActive,
		TargetStatus:  domain.StatusActive,
		IsManaged:     true,
		SpendToday:    decimal.Zero,
	}

	repo.EXPECT().ListManagedCampaigns(mock.Anything).Return([]domain.Campaign{scheduled, plain}, nil)
	repo.EXPECT().
		GetScheduleSlotsForMany(mock.Anything, []uuid.UUID{scheduled.ID}).
		Return(map[uuid.UUID][]domain.ScheduleSlot{scheduled.ID: wednesdaySlots(scheduled.ID)}, nil)

	var savedLogs []domain.EvaluationLog
	var savedCampaigns []domain.Campaign
	repo.EXPECT().
		SaveEvaluations(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, logs []domain.EvaluationLog, campaigns []domain.Campaign) {
			savedLogs = logs
			savedCampaigns = campaigns
		}).
		Return(nil)

	u := newEvaluationUseCase(t, repo)
	res, err := u.EvaluateAll(context.Background(), true)
	if err != nil {
		t.Fatalf("EvaluateAll error: %v", err)
	}

	if res.Evaluated != 2 {
		t.Fatalf("expected 2 evaluated, got %d", res.Evaluated)
	}
	if len(savedLogs) != 2 {
		t.Errorf("dry run must still commit all logs, got %d", len(savedLogs))
	}
	if len(savedCampaigns) != 0 {
		t.Errorf("dry run must not commit campaigns, got %d", len(savedCampaigns))
	}
}

// A commit failure aborts the whole batch.
func TestEvaluateAllCommitFailure(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	c := domain.Campaign{
		ID:            uuid.New(),
		CurrentStatus: domain.StatusActive,
		TargetStatus:  domain.StatusActive,
		IsManaged:     true,
		SpendToday:    decimal.Zero,
	}
	repo.EXPECT().ListManagedCampaigns(mock.Anything).Return([]domain.Campaign{c}, nil)
	boom := errors.New("commit failed")
	repo.EXPECT().SaveEvaluations(mock.Anything, mock.Anything, mock.Anything).Return(boom)

	u := newEvaluationUseCase(t, repo)
	if _, err := u.EvaluateAll(context.Background(), false); !errors.Is(err, boom) {
		t.Fatalf("expected commit error, got %v", err)
	}
}

func TestEvaluationHistoryNotFound(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	id := uuid.New()
	repo.EXPECT().GetCampaign(mock.Anything, id).Return(nil, nil)

	u := newEvaluationUseCase(t, repo)
	if _, err := u.EvaluationHistory(context.Background(), id, 0, 50); !errors.Is(err, port.ErrCampaignNotFound) {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
}
