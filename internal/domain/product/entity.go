package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("product name cannot be empty")
	ErrNameTooLong   = errors.New("product name too long")
	ErrNegativePrice = errors.New("product price cannot be negative")
)

const MaxNameLength = 100

// Product is a catalog entry. Its price is server-authoritative: order lines
// snapshot it at admission time and never trust a client-supplied value.
type Product struct {
	id         uuid.UUID
	categoryID uuid.UUID
	name       string
	priceCents int64
	isActive   bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewProduct(categoryID uuid.UUID, name string, priceCents int64) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Product{
		id:         uuid.New(),
		categoryID: categoryID,
		name:       name,
		priceCents: priceCents,
		isActive:   true,
	}, nil
}

func ReconstructProduct(
	id, categoryID uuid.UUID,
	name string,
	priceCents int64,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:         id,
		categoryID: categoryID,
		name:       name,
		priceCents: priceCents,
		isActive:   isActive,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (p *Product) ID() uuid.UUID         { return p.id }
func (p *Product) CategoryID() uuid.UUID { return p.categoryID }
func (p *Product) Name() string          { return p.name }
func (p *Product) PriceCents() int64     { return p.priceCents }
func (p *Product) IsActive() bool        { return p.isActive }
func (p *Product) CreatedAt() time.Time  { return p.createdAt }
func (p *Product) UpdatedAt() time.Time  { return p.updatedAt }
