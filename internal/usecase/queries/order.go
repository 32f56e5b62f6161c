package queries

import (
	"context"
	"time"

	"restaurant-pos/internal/domain/order"
	"restaurant-pos/internal/infra"
	"restaurant-pos/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errs.New("order not found")
)

type OrderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	// ListByBusinessDate returns the day's orders newest first, optionally
	// filtered by status.
	ListByBusinessDate(ctx context.Context, businessDate time.Time, status *order.Status) ([]*OrderListItem, error)
	// KitchenQueue returns the in_kitchen orders of the day oldest first,
	// lines included, for the kitchen display.
	KitchenQueue(ctx context.Context, businessDate time.Time) ([]*OrderView, error)
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByBusinessDate(ctx context.Context, businessDate time.Time, status *string) ([]*OrderListItem, error)
	FindKitchenQueue(ctx context.Context, businessDate time.Time) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *orderQueriesImpl) ListByBusinessDate(ctx context.Context, businessDate time.Time, status *order.Status) ([]*OrderListItem, error) {
	var statusFilter *string
	if status != nil {
		s := status.String()
		statusFilter = &s
	}
	return q.readStore.FindByBusinessDate(ctx, businessDate, statusFilter)
}

func (q *orderQueriesImpl) KitchenQueue(ctx context.Context, businessDate time.Time) ([]*OrderView, error) {
	return q.readStore.FindKitchenQueue(ctx, businessDate)
}
