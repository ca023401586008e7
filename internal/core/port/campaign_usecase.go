package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adpilot/internal/core/domain"
)

// CreateCampaignParams carries validated input for campaign creation.
// Optional fields stay nil when absent.
type CreateCampaignParams struct {
	Name            string
	CurrentStatus   domain.Status
	IsManaged       *bool
	BudgetLimit     *decimal.Decimal
	SpendToday      *decimal.Decimal
	StockDaysLeft   *int
	StockDaysMin    *int
	ScheduleEnabled *bool
}

// CampaignPatch is a partial update; nil fields are left untouched.
type CampaignPatch struct {
	Name            *string
	CurrentStatus   *domain.Status
	IsManaged       *bool
	BudgetLimit     *decimal.Decimal
	SpendToday      *decimal.Decimal
	StockDaysLeft   *int
	StockDaysMin    *int
	ScheduleEnabled *bool
}

// SlotParams is one weekly window in a schedule replacement request.
type SlotParams struct {
	DayOfWeek int
	StartTime domain.TimeOfDay
	EndTime   domain.TimeOfDay
}

// CampaignUseCase exposes campaign and schedule management to inbound
// adapters.
type CampaignUseCase interface {
	Create(ctx context.Context, params CreateCampaignParams) (*domain.Campaign, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	List(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)
	Update(ctx context.Context, id uuid.UUID, patch CampaignPatch) (*domain.Campaign, error)

	// SetSchedule replaces all slots of a campaign.
	SetSchedule(ctx context.Context, id uuid.UUID, slots []SlotParams) ([]domain.ScheduleSlot, error)
	GetSchedule(ctx context.Context, id uuid.UUID) ([]domain.ScheduleSlot, error)
	ClearSchedule(ctx context.Context, id uuid.UUID) error
}
