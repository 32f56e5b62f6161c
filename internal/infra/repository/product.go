package repository

import (
	"context"

	"restaurant-pos/internal/domain/product"
	"restaurant-pos/internal/infra"
	"restaurant-pos/internal/infra/db"

	"github.com/google/uuid"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const createProductQuery = `
INSERT INTO products (id, category_id, name, price_cents, is_active)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

func (r *ProductRepository) Create(ctx context.Context, tx db.DBTX, p *product.Product) (uuid.UUID, error) {
	var productID uuid.UUID
	err := tx.QueryRow(ctx, createProductQuery,
		p.ID(),
		p.CategoryID(),
		p.Name(),
		p.PriceCents(),
		p.IsActive(),
	).Scan(&productID)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create product", err)
	}
	return productID, nil
}

const updateProductQuery = `
UPDATE products
SET category_id = $2, name = $3, price_cents = $4, is_active = $5, updated_at = now()
WHERE id = $1
`

func (r *ProductRepository) Update(ctx context.Context, tx db.DBTX, p *product.Product) error {
	tag, err := tx.Exec(ctx, updateProductQuery,
		p.ID(),
		p.CategoryID(),
		p.Name(),
		p.PriceCents(),
		p.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteProductQuery = `
DELETE FROM products WHERE id = $1
`

func (r *ProductRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteProductQuery, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}
