package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// CampaignUseCase implements campaign and schedule management on top of the
// repository port. Validation lives here so the engine can assume
// well-formed input.
type CampaignUseCase struct {
	repo port.CampaignRepository
}

// NewCampaignUseCase creates the usecase.
func NewCampaignUseCase(repo port.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo}
}

// Create validates the input and stores a new campaign. Unset optional
// fields take the same defaults the original schema used: managed, active,
// zero spend, schedule control off.
func (u *CampaignUseCase) Create(ctx context.Context, params port.CreateCampaignParams) (*domain.Campaign, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("%w: name is required", port.ErrInvalidInput)
	}
	if err := validateBudget(params.BudgetLimit); err != nil {
		return nil, err
	}
	if err := validateSpend(params.SpendToday); err != nil {
		return nil, err
	}

	campaign := &domain.Campaign{
		ID:            uuid.New(),
		Name:          params.Name,
		CurrentStatus: domain.StatusActive,
		TargetStatus:  domain.StatusActive,
		IsManaged:     true,
		SpendToday:    decimal.Zero,
		BudgetLimit:   params.BudgetLimit,
		StockDaysLeft: params.StockDaysLeft,
		StockDaysMin:  params.StockDaysMin,
	}
	if params.CurrentStatus != "" {
		if !params.CurrentStatus.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", port.ErrInvalidInput, params.CurrentStatus)
		}
		campaign.CurrentStatus = params.CurrentStatus
	}
	if params.IsManaged != nil {
		campaign.IsManaged = *params.IsManaged
	}
	if params.SpendToday != nil {
		campaign.SpendToday = *params.SpendToday
	}
	if params.ScheduleEnabled != nil {
		campaign.ScheduleEnabled = *params.ScheduleEnabled
	}

	if err := u.repo.CreateCampaign(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// Get returns a campaign or ErrCampaignNotFound.
func (u *CampaignUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	campaign, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, port.ErrCampaignNotFound
	}
	return campaign, nil
}

// List pages campaigns with the optional needs-sync filter.
func (u *CampaignUseCase) List(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	if f.Limit <= 0 {
		f.Limit = 100
	}
	if f.Skip < 0 {
		f.Skip = 0
	}
	return u.repo.ListCampaigns(ctx, f)
}

// Update applies a partial update to an existing campaign.
func (u *CampaignUseCase) Update(ctx context.Context, id uuid.UUID, patch port.CampaignPatch) (*domain.Campaign, error) {
	if err := validateBudget(patch.BudgetLimit); err != nil {
		return nil, err
	}
	if err := validateSpend(patch.SpendToday); err != nil {
		return nil, err
	}
	if patch.CurrentStatus != nil && !patch.CurrentStatus.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", port.ErrInvalidInput, *patch.CurrentStatus)
	}

	campaign, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, fmt.Errorf("%w: name is required", port.ErrInvalidInput)
		}
		campaign.Name = *patch.Name
	}
	if patch.CurrentStatus != nil {
		campaign.CurrentStatus = *patch.CurrentStatus
	}
	if patch.IsManaged != nil {
		campaign.IsManaged = *patch.IsManaged
	}
	if patch.BudgetLimit != nil {
		campaign.BudgetLimit = patch.BudgetLimit
	}
	if patch.SpendToday != nil {
		campaign.SpendToday = *patch.SpendToday
	}
	if patch.StockDaysLeft != nil {
		campaign.StockDaysLeft = patch.StockDaysLeft
	}
	if patch.StockDaysMin != nil {
		campaign.StockDaysMin = patch.StockDaysMin
	}
	if patch.ScheduleEnabled != nil {
		campaign.ScheduleEnabled = *patch.ScheduleEnabled
	}

	if err = u.repo.UpdateCampaign(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// SetSchedule validates and replaces all weekly slots of a campaign.
func (u *CampaignUseCase) SetSchedule(ctx context.Context, id uuid.UUID, params []port.SlotParams) ([]domain.ScheduleSlot, error) {
	if _, err := u.Get(ctx, id); err != nil {
		return nil, err
	}

	slots := make([]domain.ScheduleSlot, 0, len(params))
	for _, p := range params {
		if p.DayOfWeek < 0 || p.DayOfWeek > 6 {
			return nil, fmt.Errorf("%w: day_of_week %d out of range [0,6]", port.ErrInvalidInput, p.DayOfWeek)
		}
		if p.EndTime <= p.StartTime {
			return nil, fmt.Errorf("%w: end_time %s must be after start_time %s",
				port.ErrInvalidInput, p.EndTime, p.StartTime)
		}
		slots = append(slots, domain.ScheduleSlot{
			ID:         uuid.New(),
			CampaignID: id,
			DayOfWeek:  p.DayOfWeek,
			StartTime:  p.StartTime,
			EndTime:    p.EndTime,
		})
	}

	return u.repo.ReplaceScheduleSlots(ctx, id, slots)
}

// GetSchedule returns all slots of a campaign.
func (u *CampaignUseCase) GetSchedule(ctx context.Context, id uuid.UUID) ([]domain.ScheduleSlot, error) {
	if _, err := u.Get(ctx, id); err != nil {
		return nil, err
	}
	return u.repo.GetScheduleSlots(ctx, id)
}

// ClearSchedule removes every slot of a campaign.
func (u *CampaignUseCase) ClearSchedule(ctx context.Context, id uuid.UUID) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	return u.repo.DeleteScheduleSlots(ctx, id)
}

func validateBudget(v *decimal.Decimal) error {
	if v != nil && v.IsNegative() {
		return fmt.Errorf("%w: budget_limit must be >= 0", port.ErrInvalidInput)
	}
	return nil
}

func validateSpend(v *decimal.Decimal) error {
	if v != nil && v.IsNegative() {
		return fmt.Errorf("%w: spend_today must be >= 0", port.ErrInvalidInput)
	}
	return nil
}
