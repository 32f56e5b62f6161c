package repository

import (
	"context"

	"restaurant-pos/internal/domain/category"
	"restaurant-pos/internal/infra"
	"restaurant-pos/internal/infra/db"

	"github.com/google/uuid"
)

type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

const createCategoryQuery = `
INSERT INTO categories (id, name, sort_order)
VALUES ($1, $2, $3)
RETURNING id
`

func (r *CategoryRepository) Create(ctx context.Context, tx db.DBTX, c *category.Category) (uuid.UUID, error) {
	var categoryID uuid.UUID
	err := tx.QueryRow(ctx, createCategoryQuery, c.ID(), c.Name(), c.SortOrder()).Scan(&categoryID)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create category", err)
	}
	return categoryID, nil
}

const updateCategoryQuery = `
UPDATE categories
SET name = $2, sort_order = $3, updated_at = now()
WHERE id = $1
`

func (r *CategoryRepository) Update(ctx context.Context, tx db.DBTX, c *category.Category) error {
	tag, err := tx.Exec(ctx, updateCategoryQuery, c.ID(), c.Name(), c.SortOrder())
	if err != nil {
		return infra.WrapRepoErr("failed to update category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteCategoryQuery = `
DELETE FROM categories WHERE id = $1
`

func (r *CategoryRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteCategoryQuery, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	return nil
}
