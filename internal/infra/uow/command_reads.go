package uow

import (
	"context"

	"restaurant-pos/internal/infra"
	"restaurant-pos/internal/infra/db"
	"restaurant-pos/internal/pkg/pgconv"
	"restaurant-pos/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// commandReads serves validation reads on the command side. Bound to a
// transaction it sees the transaction's own writes; bound to the pool it
// reads committed state.
type commandReads struct {
	dbtx db.DBTX
}

const activeProductByIDQuery = `
SELECT id, category_id, name, price_cents, is_active
FROM products
WHERE id = $1 AND is_active
`

func (r *commandReads) ActiveProductByID(ctx context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	snapshot := &shared.ProductSnapshot{}
	err := r.dbtx.QueryRow(ctx, activeProductByIDQuery, id).Scan(
		&snapshot.ID,
		&snapshot.CategoryID,
		&snapshot.Name,
		&snapshot.PriceCents,
		&snapshot.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active product", err)
	}
	return snapshot, nil
}

const orderByIDForUpdateQuery = `
SELECT id, number, business_date, status, beeper_id, total_cents, cashier_id, chef_id, created_at, delivered_at
FROM orders
WHERE id = $1
FOR UPDATE
`

func (r *commandReads) OrderByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	snapshot := &shared.OrderSnapshot{}
	var (
		chefID      pgtype.UUID
		deliveredAt pgtype.Timestamptz
	)
	err := r.dbtx.QueryRow(ctx, orderByIDForUpdateQuery, id).Scan(
		&snapshot.ID,
		&snapshot.Number,
		&snapshot.BusinessDate,
		&snapshot.Status,
		&snapshot.BeeperID,
		&snapshot.TotalCents,
		&snapshot.CashierID,
		&chefID,
		&snapshot.CreatedAt,
		&deliveredAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order row", err)
	}
	snapshot.ChefID = pgconv.UUIDPtrFromPgtype(chefID)
	snapshot.DeliveredAt = pgconv.TimePtrFromPgtype(deliveredAt)
	return snapshot, nil
}

const beeperByIDQuery = `
SELECT id, status FROM beepers WHERE id = $1
`

func (r *commandReads) BeeperByID(ctx context.Context, id int32) (*shared.BeeperSnapshot, error) {
	snapshot := &shared.BeeperSnapshot{}
	err := r.dbtx.QueryRow(ctx, beeperByIDQuery, id).Scan(&snapshot.ID, &snapshot.Status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("beeper not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find beeper", err)
	}
	return snapshot, nil
}

const userByIDQuery = `
SELECT id, email, password_hash, role, is_active FROM users WHERE id = $1
`

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	return r.scanUser(r.dbtx.QueryRow(ctx, userByIDQuery, id))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *commandReads) scanUser(row rowScanner) (*shared.UserSnapshot, error) {
	snapshot := &shared.UserSnapshot{}
	err := row.Scan(
		&snapshot.ID,
		&snapshot.Email,
		&snapshot.PasswordHash,
		&snapshot.Role,
		&snapshot.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return snapshot, nil
}
