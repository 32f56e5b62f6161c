package shared

import (
	"context"
	"time"

	"restaurant-pos/internal/domain/category"
	"restaurant-pos/internal/domain/order"
	"restaurant-pos/internal/domain/product"
	"restaurant-pos/internal/domain/user"
	"restaurant-pos/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Beepers() BeeperRepository
	Counters() CounterRepository
	Products() ProductRepository
	Categories() CategoryRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ActiveProductByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	// OrderByIDForUpdate locks the order row for the rest of the transaction.
	OrderByIDForUpdate(ctx context.Context, id uuid.UUID) (*OrderSnapshot, error)
	BeeperByID(ctx context.Context, id int32) (*BeeperSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error)
	// SaveTransition persists the mutable lifecycle fields: status, chef_id,
	// delivered_at.
	SaveTransition(ctx context.Context, tx db.DBTX, o *order.Order) error
}

type BeeperRepository interface {
	Reserve(ctx context.Context, tx db.DBTX, beeperID int32) error
	Release(ctx context.Context, tx db.DBTX, beeperID int32) error
}

type CounterRepository interface {
	// Next atomically increments and returns the counter for businessDate,
	// creating it at 1 on first use of the date.
	Next(ctx context.Context, tx db.DBTX, businessDate time.Time) (int32, error)
}

type ProductRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *product.Product) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, p *product.Product) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type CategoryRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *category.Category) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, c *category.Category) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, u *user.User) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
