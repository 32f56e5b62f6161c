package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type OrderView struct {
	ID           uuid.UUID       `json:"id"`
	Number       int32           `json:"number"`
	BusinessDate time.Time       `json:"business_date"`
	Status       string          `json:"status"`
	BeeperID     int32           `json:"beeper_id"`
	TotalCents   int64           `json:"total_cents"`
	CashierID    uuid.UUID       `json:"cashier_id"`
	ChefID       *uuid.UUID      `json:"chef_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	DeliveredAt  *time.Time      `json:"delivered_at,omitempty"`
	Lines        []OrderLineView `json:"lines"`
}

type OrderLineView struct {
	ID             uuid.UUID  `json:"id"`
	ProductID      *uuid.UUID `json:"product_id,omitempty"`
	Name           string     `json:"name"`
	Qty            int32      `json:"qty"`
	UnitPriceCents int64      `json:"unit_price_cents"`
	LineTotalCents int64      `json:"line_total_cents"`
}

type OrderListItem struct {
	ID         uuid.UUID `json:"id"`
	Number     int32     `json:"number"`
	Status     string    `json:"status"`
	BeeperID   int32     `json:"beeper_id"`
	TotalCents int64     `json:"total_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

type BeeperView struct {
	ID     int32  `json:"id"`
	Status string `json:"status"`
}

type ProductView struct {
	ID           uuid.UUID `json:"id"`
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Name         string    `json:"name"`
	PriceCents   int64     `json:"price_cents"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CategoryView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SortOrder int32     `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
