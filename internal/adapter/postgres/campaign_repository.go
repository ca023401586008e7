package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// querier is the subset of pgxpool.Pool the repository uses.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	db querier
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{db: pool}
}

const campaignColumns = `id, name, current_status, target_status, is_managed,
budget_limit, spend_today, stock_days_left, stock_days_min, schedule_enabled,
created_at, updated_at`

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.CurrentStatus,
		&c.TargetStatus,
		&c.IsManaged,
		&c.BudgetLimit,
		&c.SpendToday,
		&c.StockDaysLeft,
		&c.StockDaysMin,
		&c.ScheduleEnabled,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// CreateCampaign inserts a campaign and fills its timestamps.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	_, err := r.db.Exec(ctx, `INSERT INTO campaigns
(id, name, current_status, target_status, is_managed, budget_limit, spend_today,
 stock_days_left, stock_days_min, schedule_enabled, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		c.ID, c.Name, c.CurrentStatus, c.TargetStatus, c.IsManaged, c.BudgetLimit,
		c.SpendToday, c.StockDaysLeft, c.StockDaysMin, c.ScheduleEnabled,
		c.CreatedAt, c.UpdatedAt)
	return err
}

// GetCampaign returns a campaign by id, or nil when it does not exist.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	rows, err := r.db.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM campaigns WHERE id = $1`, campaignColumns), id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCampaigns pages campaigns, optionally filtered by sync state.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	where := ""
	if f.NeedsSync != nil {
		if *f.NeedsSync {
			where = "WHERE current_status <> target_status"
		} else {
			where = "WHERE current_status = target_status"
		}
	}
	query := fmt.Sprintf(`SELECT %s FROM campaigns %s ORDER BY created_at OFFSET $1 LIMIT $2`,
		campaignColumns, where)

	rows, err := r.db.Query(ctx, query, f.Skip, f.Limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// UpdateCampaign persists all mutable campaign fields.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	c.UpdatedAt = time.Now().UTC()
	tag, err := r.db.Exec(ctx, `UPDATE campaigns SET
name = $2, current_status = $3, target_status = $4, is_managed = $5,
budget_limit = $6, spend_today = $7, stock_days_left = $8, stock_days_min = $9,
schedule_enabled = $10, updated_at = $11
WHERE id = $1`,
		c.ID, c.Name, c.CurrentStatus, c.TargetStatus, c.IsManaged, c.BudgetLimit,
		c.SpendToday, c.StockDaysLeft, c.StockDaysMin, c.ScheduleEnabled, c.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

// ListManagedCampaigns returns every campaign with automatic control on.
func (r *CampaignRepository) ListManagedCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.db.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM campaigns WHERE is_managed ORDER BY created_at`, campaignColumns))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

func scanSlot(row pgx.CollectableRow) (domain.ScheduleSlot, error) {
	var (
		s          domain.ScheduleSlot
		start, end pgtype.Time
	)
	if err := row.Scan(&s.ID, &s.CampaignID, &s.DayOfWeek, &start, &end); err != nil {
		return s, err
	}
	s.StartTime = domain.TimeOfDayFromMicroseconds(start.Microseconds)
	s.EndTime = domain.TimeOfDayFromMicroseconds(end.Microseconds)
	return s, nil
}

const slotColumns = `id, campaign_id, day_of_week, start_time, end_time`

// GetScheduleSlots returns all slots of a campaign ordered by day and start.
func (r *CampaignRepository) GetScheduleSlots(ctx context.Context, campaignID uuid.UUID) ([]domain.ScheduleSlot, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM campaign_schedules WHERE campaign_id = $1 ORDER BY day_of_week, start_time`,
		slotColumns), campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanSlot)
}

// GetScheduleSlotsForMany fetches slots for a set of campaigns with one
// query, keyed by campaign id.
func (r *CampaignRepository) GetScheduleSlotsForMany(ctx context.Context, campaignIDs []uuid.UUID) (map[uuid.UUID][]domain.ScheduleSlot, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM campaign_schedules WHERE campaign_id = ANY($1) ORDER BY day_of_week, start_time`,
		slotColumns), campaignIDs)
	if err != nil {
		return nil, err
	}
	slots, err := pgx.CollectRows(rows, scanSlot)
	if err != nil {
		return nil, err
	}

	byCampaign := make(map[uuid.UUID][]domain.ScheduleSlot, len(campaignIDs))
	for _, s := range slots {
		byCampaign[s.CampaignID] = append(byCampaign[s.CampaignID], s)
	}
	return byCampaign, nil
}

// ReplaceScheduleSlots swaps the whole schedule of a campaign in one
// transaction and returns the stored slots.
func (r *CampaignRepository) ReplaceScheduleSlots(ctx context.Context, campaignID uuid.UUID, slots []domain.ScheduleSlot) ([]domain.ScheduleSlot, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	// no-op after a successful commit
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err = tx.Exec(ctx, `DELETE FROM campaign_schedules WHERE campaign_id = $1`, campaignID); err != nil {
		return nil, err
	}
	for _, s := range slots {
		_, err = tx.Exec(ctx, `INSERT INTO campaign_schedules
(id, campaign_id, day_of_week, start_time, end_time) VALUES ($1,$2,$3,$4,$5)`,
			s.ID, campaignID, s.DayOfWeek,
			pgtype.Time{Microseconds: s.StartTime.Microseconds(), Valid: true},
			pgtype.Time{Microseconds: s.EndTime.Microseconds(), Valid: true})
		if err != nil {
			return nil, err
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return slots, nil
}

// DeleteScheduleSlots removes all slots of a campaign.
func (r *CampaignRepository) DeleteScheduleSlots(ctx context.Context, campaignID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM campaign_schedules WHERE campaign_id = $1`, campaignID)
	return err
}

// SaveEvaluations appends evaluation logs and persists the new target status
// of the mutated campaigns in a single Serializable transaction.
func (r *CampaignRepository) SaveEvaluations(ctx context.Context, logs []domain.EvaluationLog, campaigns []domain.Campaign) error {
	if len(logs) == 0 && len(campaigns) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	// no-op after a successful commit
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, entry := range logs {
		var contextJSON []byte
		if contextJSON, err = json.Marshal(entry.Context); err != nil {
			return err
		}
		var rule *string
		if entry.TriggeredRule != "" {
			s := string(entry.TriggeredRule)
			rule = &s
		}
		batch.Queue(`INSERT INTO rule_evaluation_logs
(id, campaign_id, triggered_rule, previous_target, new_target, context, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			entry.ID, entry.CampaignID, rule, entry.PreviousTarget, entry.NewTarget,
			contextJSON, entry.CreatedAt)
	}
	for _, c := range campaigns {
		batch.Queue(`UPDATE campaigns SET target_status = $2, updated_at = now() WHERE id = $1`,
			c.ID, c.TargetStatus)
	}

	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// ListEvaluationLogs pages a campaign's evaluation history, newest first.
func (r *CampaignRepository) ListEvaluationLogs(ctx context.Context, campaignID uuid.UUID, skip, limit int) ([]domain.EvaluationLog, error) {
	rows, err := r.db.Query(ctx, `SELECT id, campaign_id, triggered_rule, previous_target,
new_target, context, created_at
FROM rule_evaluation_logs WHERE campaign_id = $1
ORDER BY created_at DESC OFFSET $2 LIMIT $3`, campaignID, skip, limit)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.EvaluationLog, error) {
		var (
			entry       domain.EvaluationLog
			rule        *string
			contextJSON []byte
		)
		if err := row.Scan(&entry.ID, &entry.CampaignID, &rule, &entry.PreviousTarget,
			&entry.NewTarget, &contextJSON, &entry.CreatedAt); err != nil {
			return entry, err
		}
		if rule != nil {
			entry.TriggeredRule = domain.RuleName(*rule)
		}
		if err := json.Unmarshal(contextJSON, &entry.Context); err != nil {
			return entry, err
		}
		return entry, nil
	})
}
