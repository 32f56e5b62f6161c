package request

import (
	"restaurant-pos/internal/domain/product"

	"github.com/google/uuid"
)

type CreateProductRequest struct {
	CategoryID uuid.UUID `json:"category_id" binding:"required"`
	Name       string    `json:"name" binding:"required"`
	PriceCents int64     `json:"price_cents" binding:"min=0"`
}

func (r CreateProductRequest) ToDomain() (*product.Product, error) {
	return product.NewProduct(r.CategoryID, r.Name, r.PriceCents)
}

type UpdateProductRequest struct {
	CategoryID uuid.UUID `json:"category_id" binding:"required"`
	Name       string    `json:"name" binding:"required"`
	PriceCents int64     `json:"price_cents" binding:"min=0"`
	IsActive   bool      `json:"is_active"`
}
