package repository

import (
	"context"
	"time"

	"restaurant-pos/internal/infra"
	"restaurant-pos/internal/infra/db"
)

type CounterRepository struct{}

func NewCounterRepository() *CounterRepository {
	return &CounterRepository{}
}

const nextCounterQuery = `
INSERT INTO daily_counters (business_date, last_value)
VALUES ($1, 1)
ON CONFLICT (business_date)
DO UPDATE SET last_value = daily_counters.last_value + 1
RETURNING last_value
`

// Next draws the next order number for the date. The upsert takes a row lock
// on the date's counter until commit, so two admissions can never read the
// same value, and a rolled-back admission restores the counter with the tx.
func (r *CounterRepository) Next(ctx context.Context, tx db.DBTX, businessDate time.Time) (int32, error) {
	var number int32
	err := tx.QueryRow(ctx, nextCounterQuery, businessDate).Scan(&number)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to increment daily counter", err)
	}
	return number, nil
}
