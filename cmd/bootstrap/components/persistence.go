package components

import (
	"context"

	"restaurant-pos/internal/infra/db"
	"restaurant-pos/internal/infra/readstore"
	"restaurant-pos/internal/infra/repository"
	"restaurant-pos/internal/infra/uow"
	"restaurant-pos/internal/pkg/config"
	"restaurant-pos/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	fx.Provide(
		uow.NewPostgresUoW,
	),
	fx.Invoke(seedBeeperPool),
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Order
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		// Catalog
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		// Beeper
		fx.Annotate(
			readstore.NewBeeperReadStore,
			fx.As(new(queries.BeeperReadStore)),
		),
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

// seedBeeperPool ensures the physical pager inventory exists before the
// server starts taking orders. Re-running against an already seeded pool
// is a no-op.
func seedBeeperPool(pool *pgxpool.Pool, cfg config.Config) error {
	return repository.NewBeeperRepository().Seed(
		context.Background(), pool, int32(cfg.POS.BeeperPoolSize),
	)
}
