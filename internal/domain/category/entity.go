// Package category models menu sections as first-class entities. A category
// may exist with zero products; visibility never depends on sentinel rows in
// the product table.
package category

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName   = errors.New("category name cannot be empty")
	ErrNameTooLong = errors.New("category name too long")
)

const MaxNameLength = 50

type Category struct {
	id        uuid.UUID
	name      string
	sortOrder int32
	createdAt time.Time
	updatedAt time.Time
}

func NewCategory(name string, sortOrder int32) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}

	return &Category{
		id:        uuid.New(),
		name:      name,
		sortOrder: sortOrder,
	}, nil
}

func ReconstructCategory(id uuid.UUID, name string, sortOrder int32, createdAt, updatedAt time.Time) *Category {
	return &Category{
		id:        id,
		name:      name,
		sortOrder: sortOrder,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Category) ID() uuid.UUID        { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) SortOrder() int32     { return c.sortOrder }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }
