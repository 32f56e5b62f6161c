package repository

import (
	"context"

	"restaurant-pos/internal/domain/order"
	"restaurant-pos/internal/infra"
	"restaurant-pos/internal/infra/db"
	"restaurant-pos/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

const createOrderQuery = `
INSERT INTO orders (id, number, business_date, status, beeper_id, total_cents, cashier_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`

const createOrderLineQuery = `
INSERT INTO order_lines (order_id, product_id, name, qty, unit_price_cents, line_total_cents, position)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error) {
	var orderID uuid.UUID
	err := tx.QueryRow(ctx, createOrderQuery,
		o.ID(),
		o.Number(),
		o.BusinessDate(),
		o.Status().String(),
		o.BeeperID(),
		o.Total().Cents(),
		o.CashierID(),
	).Scan(&orderID)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}

	for i, line := range o.Lines() {
		_, err := tx.Exec(ctx, createOrderLineQuery,
			orderID,
			pgconv.UUIDPtrToPgtype(line.ProductID()),
			line.Name(),
			line.Qty(),
			line.UnitPrice().Cents(),
			line.LineTotal().Cents(),
			int32(i),
		)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create order line", err)
		}
	}

	return orderID, nil
}

const saveOrderTransitionQuery = `
UPDATE orders
SET status = $2, chef_id = $3, delivered_at = $4
WHERE id = $1
`

func (r *OrderRepository) SaveTransition(ctx context.Context, tx db.DBTX, o *order.Order) error {
	tag, err := tx.Exec(ctx, saveOrderTransitionQuery,
		o.ID(),
		o.Status().String(),
		pgconv.UUIDPtrToPgtype(o.ChefID()),
		pgconv.TimePtrToPgtype(o.DeliveredAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}
