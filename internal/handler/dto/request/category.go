package request

import (
	"restaurant-pos/internal/domain/category"
)

type CreateCategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int32  `json:"sort_order"`
}

func (r CreateCategoryRequest) ToDomain() (*category.Category, error) {
	return category.NewCategory(r.Name, r.SortOrder)
}

type UpdateCategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int32  `json:"sort_order"`
}
