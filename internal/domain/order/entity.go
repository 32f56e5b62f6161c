package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrInvalidNumber     = errors.New("order number must be positive")
)

// Order is the aggregate created by the admission transaction. The per-date
// number, business date, beeper binding and total are fixed at creation;
// everything mutable afterwards goes through Transition.
type Order struct {
	id           uuid.UUID
	number       int32
	businessDate time.Time
	status       Status
	beeperID     int32
	lines        []Line
	total        Money
	cashierID    uuid.UUID
	chefID       *uuid.UUID
	createdAt    time.Time
	deliveredAt  *time.Time
}

// NewOrder builds a freshly admitted order. Lines and total must come from
// AssembleLines; number from the daily counter of businessDate.
func NewOrder(
	number int32,
	businessDate time.Time,
	beeperID int32,
	lines []Line,
	total Money,
	cashierID uuid.UUID,
) (*Order, error) {
	if number <= 0 {
		return nil, ErrInvalidNumber
	}
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	return &Order{
		id:           uuid.New(),
		number:       number,
		businessDate: businessDate,
		status:       StatusInKitchen,
		beeperID:     beeperID,
		lines:        lines,
		total:        total,
		cashierID:    cashierID,
	}, nil
}

func ReconstructOrder(
	id uuid.UUID,
	number int32,
	businessDate time.Time,
	status Status,
	beeperID int32,
	lines []Line,
	total Money,
	cashierID uuid.UUID,
	chefID *uuid.UUID,
	createdAt time.Time,
	deliveredAt *time.Time,
) *Order {
	return &Order{
		id:           id,
		number:       number,
		businessDate: businessDate,
		status:       status,
		beeperID:     beeperID,
		lines:        lines,
		total:        total,
		cashierID:    cashierID,
		chefID:       chefID,
		createdAt:    createdAt,
		deliveredAt:  deliveredAt,
	}
}

// Transition moves the order to target at instant now, applying the side
// effects the lifecycle defines: ready attaches the acting chef, the terminal
// states stamp deliveredAt as the closed-at time. Beeper release is the
// caller's job (it lives in the same database transaction).
func (o *Order) Transition(target Status, actorID uuid.UUID, now time.Time) error {
	if !o.status.CanTransitionTo(target) {
		return ErrInvalidTransition
	}

	switch target {
	case StatusReady:
		chef := actorID
		o.chefID = &chef
	case StatusDelivered, StatusCancelled:
		closedAt := now
		o.deliveredAt = &closedAt
	}

	o.status = target
	return nil
}

func (o *Order) IsActive() bool {
	return !o.status.IsTerminal()
}

func (o *Order) ID() uuid.UUID           { return o.id }
func (o *Order) Number() int32           { return o.number }
func (o *Order) BusinessDate() time.Time { return o.businessDate }
func (o *Order) Status() Status          { return o.status }
func (o *Order) BeeperID() int32         { return o.beeperID }
func (o *Order) Lines() []Line           { return o.lines }
func (o *Order) Total() Money            { return o.total }
func (o *Order) CashierID() uuid.UUID    { return o.cashierID }
func (o *Order) ChefID() *uuid.UUID      { return o.chefID }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }
