package response

import (
	"time"

	"restaurant-pos/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductResponse struct {
	ID           uuid.UUID `json:"id"`
	CategoryID   uuid.UUID `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	Name         string    `json:"name"`
	PriceCents   int64     `json:"priceCents"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SortOrder int32     `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromProductView(view *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		ID:           view.ID,
		CategoryID:   view.CategoryID,
		CategoryName: view.CategoryName,
		Name:         view.Name,
		PriceCents:   view.PriceCents,
		IsActive:     view.IsActive,
		CreatedAt:    view.CreatedAt,
		UpdatedAt:    view.UpdatedAt,
	}
}

func FromProductViews(views []*queries.ProductView) []*ProductResponse {
	result := make([]*ProductResponse, len(views))
	for i, v := range views {
		result[i] = FromProductView(v)
	}
	return result
}

func FromCategoryView(view *queries.CategoryView) *CategoryResponse {
	return &CategoryResponse{
		ID:        view.ID,
		Name:      view.Name,
		SortOrder: view.SortOrder,
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	}
}

func FromCategoryViews(views []*queries.CategoryView) []*CategoryResponse {
	result := make([]*CategoryResponse, len(views))
	for i, v := range views {
		result[i] = FromCategoryView(v)
	}
	return result
}
