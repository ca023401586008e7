package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
)

var (
	// ErrCampaignNotFound is returned when an operation references a campaign
	// that does not exist.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrInvalidInput wraps request validation failures.
	ErrInvalidInput = errors.New("invalid input")
)

// CampaignFilter narrows and pages campaign listings. NeedsSync selects
// campaigns whose current and target statuses diverge (or match, when
// false); nil applies no status filter.
type CampaignFilter struct {
	Skip      int
	Limit     int
	NeedsSync *bool
}

// CampaignRepository is the outbound persistence port. Implementations must
// be concurrency-safe; SaveEvaluations must commit logs and campaign
// mutations in one transaction.
type CampaignRepository interface {
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns nil without error when the id is unknown.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	// ListManagedCampaigns returns every campaign eligible for automatic
	// status control.
	ListManagedCampaigns(ctx context.Context) ([]domain.Campaign, error)

	GetScheduleSlots(ctx context.Context, campaignID uuid.UUID) ([]domain.ScheduleSlot, error)
	// GetScheduleSlotsForMany batches slot lookups for bulk evaluation. Ids
	// without slots are absent from the result map.
	GetScheduleSlotsForMany(ctx context.Context, campaignIDs []uuid.UUID) (map[uuid.UUID][]domain.ScheduleSlot, error)
	// ReplaceScheduleSlots atomically swaps all slots of a campaign.
	ReplaceScheduleSlots(ctx context.Context, campaignID uuid.UUID, slots []domain.ScheduleSlot) ([]domain.ScheduleSlot, error)
	DeleteScheduleSlots(ctx context.Context, campaignID uuid.UUID) error

	// SaveEvaluations appends evaluation logs and persists the new target
	// status of the mutated campaigns in a single transaction.
	SaveEvaluations(ctx context.Context, logs []domain.EvaluationLog, campaigns []domain.Campaign) error
	// ListEvaluationLogs pages a campaign's evaluation history, newest first.
	ListEvaluationLogs(ctx context.Context, campaignID uuid.UUID, skip, limit int) ([]domain.EvaluationLog, error)
}
