package order

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrInvalidQuantity    = errors.New("item quantity must be positive")
	ErrAmbiguousPricing   = errors.New("item must reference a product or carry a custom name, not both")
	ErrMissingPriceSource = errors.New("item references neither a product nor a custom name")
	ErrMissingCustomPrice = errors.New("custom item requires an explicit unit price")
	ErrNegativePrice      = errors.New("unit price cannot be negative")
	ErrEmptyCustomName    = errors.New("custom item name cannot be empty")
	ErrProductUnknown     = errors.New("item references an unknown or inactive product")
)

// Money is an exact fixed-point amount in cents. All order arithmetic stays in
// integer cents; floats never touch a total.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MulQty(qty int32) Money {
	return Money{cents: m.cents * int64(qty)}
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

// LineInput is a requested order line before pricing. Exactly one pricing
// source must be set: ProductID (catalog, server prices it) or
// CustomName + UnitPriceCents (free-form, cashier prices it).
type LineInput struct {
	ProductID      *uuid.UUID
	CustomName     *string
	Qty            int32
	UnitPriceCents *int64
}

// CatalogItem is the snapshot of an active product visible to the assembler.
type CatalogItem struct {
	ID         uuid.UUID
	Name       string
	PriceCents int64
}

// Line is a priced, immutable order line. Unit price is frozen at assembly;
// later catalog changes never retroactively change an order.
type Line struct {
	productID  *uuid.UUID
	name       string
	customName *string
	qty        int32
	unitPrice  Money
	lineTotal  Money
}

func (l Line) ProductID() *uuid.UUID { return l.productID }
func (l Line) Name() string          { return l.name }
func (l Line) CustomName() *string   { return l.customName }
func (l Line) Qty() int32            { return l.qty }
func (l Line) UnitPrice() Money      { return l.unitPrice }
func (l Line) LineTotal() Money      { return l.lineTotal }

func ReconstructLine(productID *uuid.UUID, name string, customName *string, qty int32, unitPrice, lineTotal Money) Line {
	return Line{
		productID:  productID,
		name:       name,
		customName: customName,
		qty:        qty,
		unitPrice:  unitPrice,
		lineTotal:  lineTotal,
	}
}

// AssembleLines validates and prices the requested items. Catalog prices come
// from lookup (which must only resolve active products); custom prices come
// from the input. Returns the priced lines and the exact order total.
func AssembleLines(inputs []LineInput, lookup func(uuid.UUID) (CatalogItem, bool)) ([]Line, Money, error) {
	if len(inputs) == 0 {
		return nil, Money{}, ErrEmptyOrder
	}

	lines := make([]Line, 0, len(inputs))
	total := NewMoney(0)

	for _, in := range inputs {
		if in.Qty <= 0 {
			return nil, Money{}, ErrInvalidQuantity
		}

		switch {
		case in.ProductID != nil && in.CustomName != nil:
			return nil, Money{}, ErrAmbiguousPricing

		case in.ProductID != nil:
			item, ok := lookup(*in.ProductID)
			if !ok {
				return nil, Money{}, ErrProductUnknown
			}
			unit := NewMoney(item.PriceCents)
			lineTotal := unit.MulQty(in.Qty)
			pid := item.ID
			lines = append(lines, Line{
				productID: &pid,
				name:      item.Name,
				qty:       in.Qty,
				unitPrice: unit,
				lineTotal: lineTotal,
			})
			total = total.Add(lineTotal)

		case in.CustomName != nil:
			name := strings.TrimSpace(*in.CustomName)
			if name == "" {
				return nil, Money{}, ErrEmptyCustomName
			}
			if in.UnitPriceCents == nil {
				return nil, Money{}, ErrMissingCustomPrice
			}
			if *in.UnitPriceCents < 0 {
				return nil, Money{}, ErrNegativePrice
			}
			unit := NewMoney(*in.UnitPriceCents)
			lineTotal := unit.MulQty(in.Qty)
			lines = append(lines, Line{
				name:       name,
				customName: &name,
				qty:        in.Qty,
				unitPrice:  unit,
				lineTotal:  lineTotal,
			})
			total = total.Add(lineTotal)

		default:
			return nil, Money{}, ErrMissingPriceSource
		}
	}

	return lines, total, nil
}
