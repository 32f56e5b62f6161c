package readstore

import (
	"context"
	"time"

	"restaurant-pos/internal/infra"
	"restaurant-pos/internal/infra/db"
	"restaurant-pos/internal/pkg/pgconv"
	"restaurant-pos/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

const findOrderByIDQuery = `
SELECT id, number, business_date, status, beeper_id, total_cents, cashier_id, chef_id, created_at, delivered_at
FROM orders
WHERE id = $1
`

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	view, err := r.scanOrder(r.db.QueryRow(ctx, findOrderByIDQuery, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	lines, err := r.findLines(ctx, []uuid.UUID{view.ID})
	if err != nil {
		return nil, err
	}
	view.Lines = lines[view.ID]

	return view, nil
}

const findOrdersByBusinessDateQuery = `
SELECT id, number, status, beeper_id, total_cents, created_at
FROM orders
WHERE business_date = $1 AND ($2::text IS NULL OR status = $2)
ORDER BY created_at DESC, id DESC
`

func (r *OrderReadStore) FindByBusinessDate(ctx context.Context, businessDate time.Time, status *string) ([]*queries.OrderListItem, error) {
	rows, err := r.db.Query(ctx, findOrdersByBusinessDateQuery, businessDate, pgconv.StringPtrToPgtype(status))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	result := make([]*queries.OrderListItem, 0)
	for rows.Next() {
		item := &queries.OrderListItem{}
		if err := rows.Scan(&item.ID, &item.Number, &item.Status, &item.BeeperID, &item.TotalCents, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order list item", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order rows", err)
	}

	return result, nil
}

const findKitchenQueueQuery = `
SELECT id, number, business_date, status, beeper_id, total_cents, cashier_id, chef_id, created_at, delivered_at
FROM orders
WHERE business_date = $1 AND status = 'in_kitchen'
ORDER BY created_at ASC, id ASC
`

// FindKitchenQueue loads the day's open orders oldest first, lines included,
// so the kitchen sees what to cook next.
func (r *OrderReadStore) FindKitchenQueue(ctx context.Context, businessDate time.Time) ([]*queries.OrderView, error) {
	rows, err := r.db.Query(ctx, findKitchenQueueQuery, businessDate)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load kitchen queue", err)
	}
	defer rows.Close()

	views := make([]*queries.OrderView, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		view, err := r.scanOrder(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan kitchen order", err)
		}
		views = append(views, view)
		ids = append(ids, view.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read kitchen queue rows", err)
	}

	if len(ids) == 0 {
		return views, nil
	}

	lines, err := r.findLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, view := range views {
		view.Lines = lines[view.ID]
	}

	return views, nil
}

const findOrderLinesQuery = `
SELECT id, order_id, product_id, name, qty, unit_price_cents, line_total_cents
FROM order_lines
WHERE order_id = ANY($1)
ORDER BY order_id, position
`

func (r *OrderReadStore) findLines(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]queries.OrderLineView, error) {
	rows, err := r.db.Query(ctx, findOrderLinesQuery, orderIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order lines", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]queries.OrderLineView, len(orderIDs))
	for rows.Next() {
		var (
			line      queries.OrderLineView
			orderID   uuid.UUID
			productID pgtype.UUID
		)
		if err := rows.Scan(&line.ID, &orderID, &productID, &line.Name, &line.Qty, &line.UnitPriceCents, &line.LineTotalCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order line", err)
		}
		line.ProductID = pgconv.UUIDPtrFromPgtype(productID)
		result[orderID] = append(result[orderID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order line rows", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *OrderReadStore) scanOrder(row rowScanner) (*queries.OrderView, error) {
	var (
		view        queries.OrderView
		chefID      pgtype.UUID
		deliveredAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID,
		&view.Number,
		&view.BusinessDate,
		&view.Status,
		&view.BeeperID,
		&view.TotalCents,
		&view.CashierID,
		&chefID,
		&view.CreatedAt,
		&deliveredAt,
	)
	if err != nil {
		return nil, err
	}
	view.ChefID = pgconv.UUIDPtrFromPgtype(chefID)
	view.DeliveredAt = pgconv.TimePtrFromPgtype(deliveredAt)
	view.Lines = []queries.OrderLineView{}
	return &view, nil
}
