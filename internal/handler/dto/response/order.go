package response

import (
	"time"

	"restaurant-pos/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderResponse struct {
	ID           uuid.UUID           `json:"id"`
	Number       int32               `json:"number"`
	BusinessDate string              `json:"businessDate"`
	Status       string              `json:"status"`
	BeeperID     int32               `json:"beeperId"`
	TotalCents   int64               `json:"totalCents"`
	CashierID    uuid.UUID           `json:"cashierId"`
	ChefID       *uuid.UUID          `json:"chefId,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
	DeliveredAt  *time.Time          `json:"deliveredAt,omitempty"`
	Lines        []OrderLineResponse `json:"lines"`
}

type OrderLineResponse struct {
	ID             uuid.UUID  `json:"id"`
	ProductID      *uuid.UUID `json:"productId,omitempty"`
	Name           string     `json:"name"`
	Qty            int32      `json:"qty"`
	UnitPriceCents int64      `json:"unitPriceCents"`
	LineTotalCents int64      `json:"lineTotalCents"`
}

type OrderListItemResponse struct {
	ID         uuid.UUID `json:"id"`
	Number     int32     `json:"number"`
	Status     string    `json:"status"`
	BeeperID   int32     `json:"beeperId"`
	TotalCents int64     `json:"totalCents"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromOrderView(view *queries.OrderView) *OrderResponse {
	lines := make([]OrderLineResponse, len(view.Lines))
	for i, l := range view.Lines {
		lines[i] = OrderLineResponse{
			ID:             l.ID,
			ProductID:      l.ProductID,
			Name:           l.Name,
			Qty:            l.Qty,
			UnitPriceCents: l.UnitPriceCents,
			LineTotalCents: l.LineTotalCents,
		}
	}

	return &OrderResponse{
		ID:           view.ID,
		Number:       view.Number,
		BusinessDate: view.BusinessDate.Format("2006-01-02"),
		Status:       view.Status,
		BeeperID:     view.BeeperID,
		TotalCents:   view.TotalCents,
		CashierID:    view.CashierID,
		ChefID:       view.ChefID,
		CreatedAt:    view.CreatedAt,
		DeliveredAt:  view.DeliveredAt,
		Lines:        lines,
	}
}

func FromOrderViews(views []*queries.OrderView) []*OrderResponse {
	result := make([]*OrderResponse, len(views))
	for i, v := range views {
		result[i] = FromOrderView(v)
	}
	return result
}

func FromOrderListItem(item *queries.OrderListItem) *OrderListItemResponse {
	return &OrderListItemResponse{
		ID:         item.ID,
		Number:     item.Number,
		Status:     item.Status,
		BeeperID:   item.BeeperID,
		TotalCents: item.TotalCents,
		CreatedAt:  item.CreatedAt,
	}
}

func FromOrderListItems(items []*queries.OrderListItem) []*OrderListItemResponse {
	result := make([]*OrderListItemResponse, len(items))
	for i, item := range items {
		result[i] = FromOrderListItem(item)
	}
	return result
}
