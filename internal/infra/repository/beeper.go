package repository

import (
	"context"

	"restaurant-pos/internal/infra"
	"restaurant-pos/internal/infra/db"
	"restaurant-pos/internal/pkg/pgconv"
)

type BeeperRepository struct{}

func NewBeeperRepository() *BeeperRepository {
	return &BeeperRepository{}
}

const reserveBeeperQuery = `
UPDATE beepers
SET status = 'in_use', updated_at = now()
WHERE id = $1 AND status = 'available'
`

const beeperStatusQuery = `
SELECT status FROM beepers WHERE id = $1
`

// Reserve is the admission gate: the guarded update succeeds for exactly one
// concurrent transaction per beeper, everyone else sees zero rows.
func (r *BeeperRepository) Reserve(ctx context.Context, tx db.DBTX, beeperID int32) error {
	tag, err := tx.Exec(ctx, reserveBeeperQuery, beeperID)
	if err != nil {
		return infra.WrapRepoErr("failed to reserve beeper", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Zero rows means either an unknown beeper or one already handed out.
	var status string
	err = tx.QueryRow(ctx, beeperStatusQuery, beeperID).Scan(&status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("beeper not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to check beeper status", err)
	}
	return infra.WrapRepoErr("beeper already in use", nil, infra.KindConflict)
}

const seedBeepersQuery = `
INSERT INTO beepers (id, status)
SELECT n, 'available' FROM generate_series(1, $1::int) AS n
ON CONFLICT (id) DO NOTHING
`

// Seed inserts the physical pager pool once; rows that already exist keep
// their current status across restarts.
func (r *BeeperRepository) Seed(ctx context.Context, tx db.DBTX, poolSize int32) error {
	if _, err := tx.Exec(ctx, seedBeepersQuery, poolSize); err != nil {
		return infra.WrapRepoErr("failed to seed beeper pool", err)
	}
	return nil
}

const releaseBeeperQuery = `
UPDATE beepers
SET status = 'available', updated_at = now()
WHERE id = $1
`

// Release is unguarded on purpose: releasing an already-available beeper is a
// no-op, which keeps terminal transitions idempotent at the storage level.
func (r *BeeperRepository) Release(ctx context.Context, tx db.DBTX, beeperID int32) error {
	tag, err := tx.Exec(ctx, releaseBeeperQuery, beeperID)
	if err != nil {
		return infra.WrapRepoErr("failed to release beeper", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("beeper not found", nil, infra.KindNotFound)
	}
	return nil
}
