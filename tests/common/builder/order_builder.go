//go:build unit || e2e

package builder

import (
	"time"

	"restaurant-pos/internal/handler/dto/request"
	"restaurant-pos/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	BeeperID int32
	Items    []request.OrderItemRequest
}

func NewOrderBuilder() *OrderBuilder {
	productID := uuid.New()
	return &OrderBuilder{
		BeeperID: 1,
		Items: []request.OrderItemRequest{
			{ProductID: &productID, Qty: 2},
		},
	}
}

func (o *OrderBuilder) BuildDTO() request.CreateOrderRequest {
	return request.CreateOrderRequest{
		BeeperID: o.BeeperID,
		Items:    o.Items,
	}
}

func (o *OrderBuilder) BuildReadModel() *queries.OrderView {
	now := time.Now()
	lines := make([]queries.OrderLineView, 0, len(o.Items))
	var total int64
	for _, item := range o.Items {
		unitPrice := int64(600)
		if item.UnitPriceCents != nil {
			unitPrice = *item.UnitPriceCents
		}
		name := "Margherita"
		if item.CustomName != nil {
			name = *item.CustomName
		}
		lineTotal := unitPrice * int64(item.Qty)
		total += lineTotal
		lines = append(lines, queries.OrderLineView{
			ID:             uuid.New(),
			ProductID:      item.ProductID,
			Name:           name,
			Qty:            item.Qty,
			UnitPriceCents: unitPrice,
			LineTotalCents: lineTotal,
		})
	}

	return &queries.OrderView{
		ID:           uuid.New(),
		Number:       1,
		BusinessDate: now,
		Status:       "in_kitchen",
		BeeperID:     o.BeeperID,
		TotalCents:   total,
		CashierID:    uuid.New(),
		CreatedAt:    now,
		Lines:        lines,
	}
}

// Fluent builder methods
func (o *OrderBuilder) WithBeeperID(id int32) *OrderBuilder {
	o.BeeperID = id
	return o
}

func (o *OrderBuilder) WithCatalogItem(productID uuid.UUID, qty int32) *OrderBuilder {
	o.Items = append(o.Items, request.OrderItemRequest{ProductID: &productID, Qty: qty})
	return o
}

func (o *OrderBuilder) WithCustomItem(name string, qty int32, unitPriceCents int64) *OrderBuilder {
	o.Items = append(o.Items, request.OrderItemRequest{CustomName: &name, Qty: qty, UnitPriceCents: &unitPriceCents})
	return o
}

func (o *OrderBuilder) WithItems(items []request.OrderItemRequest) *OrderBuilder {
	o.Items = items
	return o
}
