package queries

import (
	"context"

	"restaurant-pos/internal/infra"
	"restaurant-pos/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound  = errs.New("product not found")
	ErrCategoryNotFound = errs.New("category not found")
)

type CatalogQueries interface {
	GetProductByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	// ListProducts returns the full catalog for admins; activeOnly restricts
	// it to what the register may sell.
	ListProducts(ctx context.Context, activeOnly bool) ([]*ProductView, error)
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*CategoryView, error)
	ListCategories(ctx context.Context) ([]*CategoryView, error)
}

type CatalogReadStore interface {
	FindProductByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	FindProducts(ctx context.Context, activeOnly bool) ([]*ProductView, error)
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*CategoryView, error)
	FindCategories(ctx context.Context) ([]*CategoryView, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
}

func NewCatalogQueries(readStore CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore}
}

func (q *catalogQueriesImpl) GetProductByID(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	view, err := q.readStore.FindProductByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListProducts(ctx context.Context, activeOnly bool) ([]*ProductView, error) {
	return q.readStore.FindProducts(ctx, activeOnly)
}

func (q *catalogQueriesImpl) GetCategoryByID(ctx context.Context, id uuid.UUID) (*CategoryView, error) {
	view, err := q.readStore.FindCategoryByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListCategories(ctx context.Context) ([]*CategoryView, error) {
	return q.readStore.FindCategories(ctx)
}
