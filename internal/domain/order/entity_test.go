//go:build unit

package order_test

import (
	"testing"
	"time"

	"restaurant-pos/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogOf(items ...order.CatalogItem) func(uuid.UUID) (order.CatalogItem, bool) {
	byID := make(map[uuid.UUID]order.CatalogItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return func(id uuid.UUID) (order.CatalogItem, bool) {
		it, ok := byID[id]
		return it, ok
	}
}

func ptrTo[T any](v T) *T { return &v }

func TestAssembleLines(t *testing.T) {
	burger := order.CatalogItem{ID: uuid.New(), Name: "Burger", PriceCents: 600}
	fries := order.CatalogItem{ID: uuid.New(), Name: "Fries", PriceCents: 500}
	lookup := catalogOf(burger, fries)

	t.Run("prices catalog items and sums exactly", func(t *testing.T) {
		// 2 x $6.00 + 1 x $5.00 = $17.00
		lines, total, err := order.AssembleLines([]order.LineInput{
			{ProductID: ptrTo(burger.ID), Qty: 2},
			{ProductID: ptrTo(fries.ID), Qty: 1},
		}, lookup)
		require.NoError(t, err)
		require.Len(t, lines, 2)

		assert.Equal(t, int64(1700), total.Cents())
		assert.Equal(t, int64(600), lines[0].UnitPrice().Cents())
		assert.Equal(t, int64(1200), lines[0].LineTotal().Cents())
		assert.Equal(t, "Burger", lines[0].Name())
		assert.Equal(t, int64(500), lines[1].LineTotal().Cents())
	})

	t.Run("custom item uses the supplied price", func(t *testing.T) {
		lines, total, err := order.AssembleLines([]order.LineInput{
			{CustomName: ptrTo("  Staff meal  "), Qty: 3, UnitPriceCents: ptrTo(int64(250))},
		}, lookup)
		require.NoError(t, err)
		require.Len(t, lines, 1)

		assert.Equal(t, int64(750), total.Cents())
		assert.Equal(t, "Staff meal", lines[0].Name())
		assert.Nil(t, lines[0].ProductID())
	})

	t.Run("total stays exact across many lines", func(t *testing.T) {
		// 0.1 + 0.2 style drift is impossible in integer cents: 33 lines of 10¢ x 3.
		inputs := make([]order.LineInput, 33)
		for i := range inputs {
			inputs[i] = order.LineInput{CustomName: ptrTo("x"), Qty: 3, UnitPriceCents: ptrTo(int64(10))}
		}
		_, total, err := order.AssembleLines(inputs, lookup)
		require.NoError(t, err)
		assert.Equal(t, int64(990), total.Cents())
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name   string
			inputs []order.LineInput
			errIs  error
		}{
			{
				name:   "empty item list",
				inputs: nil,
				errIs:  order.ErrEmptyOrder,
			},
			{
				name:   "zero quantity",
				inputs: []order.LineInput{{ProductID: ptrTo(burger.ID), Qty: 0}},
				errIs:  order.ErrInvalidQuantity,
			},
			{
				name:   "negative quantity",
				inputs: []order.LineInput{{ProductID: ptrTo(burger.ID), Qty: -2}},
				errIs:  order.ErrInvalidQuantity,
			},
			{
				name:   "unknown product",
				inputs: []order.LineInput{{ProductID: ptrTo(uuid.New()), Qty: 1}},
				errIs:  order.ErrProductUnknown,
			},
			{
				name:   "custom item without price",
				inputs: []order.LineInput{{CustomName: ptrTo("Special"), Qty: 1}},
				errIs:  order.ErrMissingCustomPrice,
			},
			{
				name:   "custom item with negative price",
				inputs: []order.LineInput{{CustomName: ptrTo("Special"), Qty: 1, UnitPriceCents: ptrTo(int64(-1))}},
				errIs:  order.ErrNegativePrice,
			},
			{
				name:   "custom item with blank name",
				inputs: []order.LineInput{{CustomName: ptrTo("   "), Qty: 1, UnitPriceCents: ptrTo(int64(100))}},
				errIs:  order.ErrEmptyCustomName,
			},
			{
				name:   "both product and custom name",
				inputs: []order.LineInput{{ProductID: ptrTo(burger.ID), CustomName: ptrTo("Burger"), Qty: 1}},
				errIs:  order.ErrAmbiguousPricing,
			},
			{
				name:   "neither product nor custom name",
				inputs: []order.LineInput{{Qty: 1}},
				errIs:  order.ErrMissingPriceSource,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, _, err := order.AssembleLines(tc.inputs, lookup)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	lines, total, err := order.AssembleLines([]order.LineInput{
		{CustomName: ptrTo("Soup"), Qty: 1, UnitPriceCents: ptrTo(int64(400))},
	}, catalogOf())
	require.NoError(t, err)

	bd := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(7, bd, 3, lines, total, uuid.New())
	require.NoError(t, err)
	return o
}

func TestOrderTransitions(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("new order starts in kitchen with no chef", func(t *testing.T) {
		o := newTestOrder(t)
		assert.Equal(t, order.StatusInKitchen, o.Status())
		assert.Nil(t, o.ChefID())
		assert.Nil(t, o.DeliveredAt())
		assert.True(t, o.IsActive())
	})

	t.Run("full lifecycle attaches chef then stamps delivery", func(t *testing.T) {
		o := newTestOrder(t)
		chefID := uuid.New()

		require.NoError(t, o.Transition(order.StatusReady, chefID, now))
		assert.Equal(t, order.StatusReady, o.Status())
		require.NotNil(t, o.ChefID())
		assert.Equal(t, chefID, *o.ChefID())
		assert.Nil(t, o.DeliveredAt())

		deliveredAt := now.Add(10 * time.Minute)
		require.NoError(t, o.Transition(order.StatusDelivered, uuid.New(), deliveredAt))
		assert.Equal(t, order.StatusDelivered, o.Status())
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, deliveredAt, *o.DeliveredAt())
		assert.False(t, o.IsActive())
	})

	t.Run("cancellation is allowed from both active states", func(t *testing.T) {
		fromKitchen := newTestOrder(t)
		require.NoError(t, fromKitchen.Transition(order.StatusCancelled, uuid.New(), now))
		require.NotNil(t, fromKitchen.DeliveredAt())

		fromReady := newTestOrder(t)
		require.NoError(t, fromReady.Transition(order.StatusReady, uuid.New(), now))
		require.NoError(t, fromReady.Transition(order.StatusCancelled, uuid.New(), now))
		assert.Equal(t, order.StatusCancelled, fromReady.Status())
	})

	t.Run("invalid transitions are rejected", func(t *testing.T) {
		cases := []struct {
			name  string
			setup func(*order.Order)
			to    order.Status
		}{
			{name: "kitchen straight to delivered", to: order.StatusDelivered},
			{
				name: "delivered is terminal",
				setup: func(o *order.Order) {
					_ = o.Transition(order.StatusReady, uuid.New(), now)
					_ = o.Transition(order.StatusDelivered, uuid.New(), now)
				},
				to: order.StatusDelivered,
			},
			{
				name: "cancelled is terminal",
				setup: func(o *order.Order) {
					_ = o.Transition(order.StatusCancelled, uuid.New(), now)
				},
				to: order.StatusReady,
			},
			{
				name: "ready cannot go back to kitchen",
				setup: func(o *order.Order) {
					_ = o.Transition(order.StatusReady, uuid.New(), now)
				},
				to: order.StatusInKitchen,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				o := newTestOrder(t)
				if tc.setup != nil {
					tc.setup(o)
				}
				err := o.Transition(tc.to, uuid.New(), now)
				assert.ErrorIs(t, err, order.ErrInvalidTransition)
			})
		}
	})
}

func TestNewOrder(t *testing.T) {
	lines, total, err := order.AssembleLines([]order.LineInput{
		{CustomName: ptrTo("Soup"), Qty: 1, UnitPriceCents: ptrTo(int64(400))},
	}, catalogOf())
	require.NoError(t, err)

	bd := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("rejects non-positive number", func(t *testing.T) {
		_, err := order.NewOrder(0, bd, 1, lines, total, uuid.New())
		assert.ErrorIs(t, err, order.ErrInvalidNumber)
	})

	t.Run("rejects empty lines", func(t *testing.T) {
		_, err := order.NewOrder(1, bd, 1, nil, order.NewMoney(0), uuid.New())
		assert.ErrorIs(t, err, order.ErrEmptyOrder)
	})

	t.Run("total equals sum of line totals", func(t *testing.T) {
		o, err := order.NewOrder(1, bd, 1, lines, total, uuid.New())
		require.NoError(t, err)

		var sum int64
		for _, l := range o.Lines() {
			sum += l.LineTotal().Cents()
		}
		assert.Equal(t, sum, o.Total().Cents())
	})
}
