package request

import (
	"restaurant-pos/internal/domain/order"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	BeeperID int32              `json:"beeper_id" binding:"required,min=1"`
	Items    []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// OrderItemRequest carries one requested line. Either product_id (catalog
// item, priced server-side) or custom_name + unit_price_cents (free-form
// item, priced by the cashier) must be set; the domain assembler enforces
// the exactly-one rule.
type OrderItemRequest struct {
	ProductID      *uuid.UUID `json:"product_id,omitempty"`
	CustomName     *string    `json:"custom_name,omitempty"`
	Qty            int32      `json:"qty" binding:"required"`
	UnitPriceCents *int64     `json:"unit_price_cents,omitempty"`
}

func (r CreateOrderRequest) ToDomain() []order.LineInput {
	inputs := make([]order.LineInput, len(r.Items))
	for i, item := range r.Items {
		inputs[i] = order.LineInput{
			ProductID:      item.ProductID,
			CustomName:     item.CustomName,
			Qty:            item.Qty,
			UnitPriceCents: item.UnitPriceCents,
		}
	}
	return inputs
}
