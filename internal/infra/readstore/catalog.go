package readstore

import (
	"context"

	"restaurant-pos/internal/infra"
	"restaurant-pos/internal/infra/db"
	"restaurant-pos/internal/pkg/pgconv"
	"restaurant-pos/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx}
}

const findProductByIDQuery = `
SELECT p.id, p.category_id, c.name, p.name, p.price_cents, p.is_active, p.created_at, p.updated_at
FROM products p
JOIN categories c ON c.id = p.category_id
WHERE p.id = $1
`

func (r *CatalogReadStore) FindProductByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	view := &queries.ProductView{}
	err := r.db.QueryRow(ctx, findProductByIDQuery, id).Scan(
		&view.ID,
		&view.CategoryID,
		&view.CategoryName,
		&view.Name,
		&view.PriceCents,
		&view.IsActive,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}
	return view, nil
}

const findProductsQuery = `
SELECT p.id, p.category_id, c.name, p.name, p.price_cents, p.is_active, p.created_at, p.updated_at
FROM products p
JOIN categories c ON c.id = p.category_id
WHERE ($1::bool = false OR p.is_active)
ORDER BY c.sort_order, c.name, p.name
`

func (r *CatalogReadStore) FindProducts(ctx context.Context, activeOnly bool) ([]*queries.ProductView, error) {
	rows, err := r.db.Query(ctx, findProductsQuery, activeOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	result := make([]*queries.ProductView, 0)
	for rows.Next() {
		view := &queries.ProductView{}
		err := rows.Scan(
			&view.ID,
			&view.CategoryID,
			&view.CategoryName,
			&view.Name,
			&view.PriceCents,
			&view.IsActive,
			&view.CreatedAt,
			&view.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read product rows", err)
	}

	return result, nil
}

const findCategoryByIDQuery = `
SELECT id, name, sort_order, created_at, updated_at
FROM categories
WHERE id = $1
`

func (r *CatalogReadStore) FindCategoryByID(ctx context.Context, id uuid.UUID) (*queries.CategoryView, error) {
	view := &queries.CategoryView{}
	err := r.db.QueryRow(ctx, findCategoryByIDQuery, id).Scan(
		&view.ID,
		&view.Name,
		&view.SortOrder,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find category by ID", err)
	}
	return view, nil
}

const findCategoriesQuery = `
SELECT id, name, sort_order, created_at, updated_at
FROM categories
ORDER BY sort_order, name
`

func (r *CatalogReadStore) FindCategories(ctx context.Context) ([]*queries.CategoryView, error) {
	rows, err := r.db.Query(ctx, findCategoriesQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	defer rows.Close()

	result := make([]*queries.CategoryView, 0)
	for rows.Next() {
		view := &queries.CategoryView{}
		if err := rows.Scan(&view.ID, &view.Name, &view.SortOrder, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan category row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read category rows", err)
	}

	return result, nil
}
