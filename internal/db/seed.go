package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Seed inserts demo campaigns into the database: a plain managed campaign, a
// schedule-bound one (business hours Monday through Friday), a low-stock one
// and one that already burned its budget. Inserts are idempotent.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	type demo struct {
		name            string
		isManaged       bool
		budgetLimit     *decimal.Decimal
		spendToday      decimal.Decimal
		stockDaysLeft   *int
		stockDaysMin    *int
		scheduleEnabled bool
	}

	budget := decimal.NewFromInt(1000)
	left, minDays := 3, 5

	demos := []demo{
		{name: "Demo: always on", isManaged: true, spendToday: decimal.Zero},
		{name: "Demo: business hours", isManaged: true, spendToday: decimal.Zero, scheduleEnabled: true},
		{name: "Demo: low stock", isManaged: true, spendToday: decimal.Zero, stockDaysLeft: &left, stockDaysMin: &minDays},
		{name: "Demo: budget exhausted", isManaged: true, budgetLimit: &budget, spendToday: decimal.NewFromInt(1500)},
		{name: "Demo: unmanaged", isManaged: false, spendToday: decimal.Zero},
	}

	for _, d := range demos {
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("adpilot-seed/"+d.name))
		_, err := pool.Exec(ctx, `INSERT INTO campaigns
(id, name, current_status, target_status, is_managed, budget_limit, spend_today,
 stock_days_left, stock_days_min, schedule_enabled, created_at, updated_at)
VALUES ($1,$2,'active','active',$3,$4,$5,$6,$7,$8,now(),now())
ON CONFLICT DO NOTHING`,
			id, d.name, d.isManaged, d.budgetLimit, d.spendToday,
			d.stockDaysLeft, d.stockDaysMin, d.scheduleEnabled)
		if err != nil {
			return fmt.Errorf("seed campaign %q: %w", d.name, err)
		}

		if !d.scheduleEnabled {
			continue
		}
		// weekday slots 09:00-21:00
		for day := 0; day < 5; day++ {
			slotID := uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("adpilot-seed/%s/slot-%d", d.name, day)))
			_, err = pool.Exec(ctx, `INSERT INTO campaign_schedules
(id, campaign_id, day_of_week, start_time, end_time)
VALUES ($1,$2,$3,'09:00','21:00')
ON CONFLICT DO NOTHING`, slotID, id, day)
			if err != nil {
				return fmt.Errorf("seed schedule for %q: %w", d.name, err)
			}
		}
	}
	return nil
}
