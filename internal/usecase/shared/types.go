package shared

import (
	"time"

	"github.com/google/uuid"
)

type ProductSnapshot struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	Name       string
	PriceCents int64
	IsActive   bool
}

// Minimal snapshot for command read operations; lines are not loaded because
// lifecycle transitions never touch them.
type OrderSnapshot struct {
	ID           uuid.UUID
	Number       int32
	BusinessDate time.Time
	Status       string
	BeeperID     int32
	TotalCents   int64
	CashierID    uuid.UUID
	ChefID       *uuid.UUID
	CreatedAt    time.Time
	DeliveredAt  *time.Time
}

type BeeperSnapshot struct {
	ID     int32
	Status string
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}
