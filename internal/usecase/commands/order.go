package commands

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"restaurant-pos/internal/domain/order"
	reqdto "restaurant-pos/internal/handler/dto/request"
	"restaurant-pos/internal/infra"
	"restaurant-pos/internal/pkg/busday"
	"restaurant-pos/internal/pkg/clock"
	"restaurant-pos/internal/pkg/config"
	"restaurant-pos/internal/pkg/errs"
	"restaurant-pos/internal/usecase/queries"
	"restaurant-pos/internal/usecase/shared"
)

var (
	ErrBeeperNotFound          = errs.New("beeper not found")
	ErrBeeperInUse             = errs.New("beeper already in use")
	ErrProductNotFound         = errs.New("product not found")
	ErrOrderNotFound           = errs.New("order not found")
	ErrInvalidTransition       = errs.New("invalid order status transition")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type OrderCommands interface {
	// CreateOrder runs the admission transaction: resolve the business date,
	// price the items, draw the next daily number, reserve the beeper and
	// persist the order. All of it commits or none of it does.
	CreateOrder(ctx context.Context, req reqdto.CreateOrderRequest, cashierID uuid.UUID) (*queries.OrderView, error)
	MarkReady(ctx context.Context, orderID, chefID uuid.UUID) (*queries.OrderView, error)
	Deliver(ctx context.Context, orderID, actorID uuid.UUID) (*queries.OrderView, error)
	Cancel(ctx context.Context, orderID, actorID uuid.UUID) (*queries.OrderView, error)
}

type orderCommandsImpl struct {
	uow          shared.UnitOfWork
	orderQueries queries.OrderQueries
	clock        clock.Clock
	loc          *time.Location
}

func NewOrderCommands(
	uow shared.UnitOfWork,
	orderQueries queries.OrderQueries,
	clk clock.Clock,
	cfg config.POSConfig,
) (OrderCommands, error) {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid store timezone")
	}

	return &orderCommandsImpl{
		uow:          uow,
		orderQueries: orderQueries,
		clock:        clk,
		loc:          loc,
	}, nil
}

func (c *orderCommandsImpl) CreateOrder(
	ctx context.Context,
	req reqdto.CreateOrderRequest,
	cashierID uuid.UUID,
) (*queries.OrderView, error) {
	businessDate := busday.Resolve(c.clock.Now(), c.loc)

	var orderID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lines, total, err := c.assembleLines(ctx, tx, req.ToDomain())
		if err != nil {
			return err
		}

		// The guarded update below is the admission gate: it succeeds for
		// exactly one concurrent order per beeper.
		if err := tx.Beepers().Reserve(ctx, tx.DB(), req.BeeperID); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return ErrBeeperNotFound
			case infra.IsKind(err, infra.KindConflict):
				return ErrBeeperInUse
			default:
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		// Drawing the number last keeps the counter row lock short; it still
		// serializes same-date admissions until commit, which is what makes
		// duplicates impossible.
		number, err := tx.Counters().Next(ctx, tx.DB(), businessDate)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		orderEntity, err := order.NewOrder(number, businessDate, req.BeeperID, lines, total, cashierID)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		orderID, err = tx.Orders().Create(ctx, tx.DB(), orderEntity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: serve the full view from the read store
	return c.orderQueries.GetByID(ctx, orderID)
}

func (c *orderCommandsImpl) assembleLines(
	ctx context.Context,
	tx shared.Tx,
	inputs []order.LineInput,
) ([]order.Line, order.Money, error) {
	var lookupErr error
	lookup := func(id uuid.UUID) (order.CatalogItem, bool) {
		snapshot, err := tx.Reads().ActiveProductByID(ctx, id)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				lookupErr = err
			}
			return order.CatalogItem{}, false
		}
		return order.CatalogItem{
			ID:         snapshot.ID,
			Name:       snapshot.Name,
			PriceCents: snapshot.PriceCents,
		}, true
	}

	lines, total, err := order.AssembleLines(inputs, lookup)
	if lookupErr != nil {
		return nil, order.Money{}, errs.Mark(lookupErr, ErrDatabaseOperationFailed)
	}
	if err != nil {
		if errors.Is(err, order.ErrProductUnknown) {
			return nil, order.Money{}, errs.Mark(err, ErrProductNotFound)
		}
		return nil, order.Money{}, errs.Mark(err, ErrDomainValidation)
	}
	return lines, total, nil
}

func (c *orderCommandsImpl) MarkReady(ctx context.Context, orderID, chefID uuid.UUID) (*queries.OrderView, error) {
	return c.transition(ctx, orderID, chefID, order.StatusReady)
}

func (c *orderCommandsImpl) Deliver(ctx context.Context, orderID, actorID uuid.UUID) (*queries.OrderView, error) {
	return c.transition(ctx, orderID, actorID, order.StatusDelivered)
}

func (c *orderCommandsImpl) Cancel(ctx context.Context, orderID, actorID uuid.UUID) (*queries.OrderView, error) {
	return c.transition(ctx, orderID, actorID, order.StatusCancelled)
}

func (c *orderCommandsImpl) transition(
	ctx context.Context,
	orderID, actorID uuid.UUID,
	target order.Status,
) (*queries.OrderView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, err := tx.Reads().OrderByIDForUpdate(ctx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		orderEntity, err := reconstructFromSnapshot(snapshot)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := orderEntity.Transition(target, actorID, c.clock.Now()); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		if err := tx.Orders().SaveTransition(ctx, tx.DB(), orderEntity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// A closed order hands its beeper back to the pool in the same
		// transaction.
		if target.IsTerminal() {
			if err := tx.Beepers().Release(ctx, tx.DB(), snapshot.BeeperID); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.orderQueries.GetByID(ctx, orderID)
}

func reconstructFromSnapshot(snapshot *shared.OrderSnapshot) (*order.Order, error) {
	status, err := order.NewStatus(snapshot.Status)
	if err != nil {
		return nil, err
	}

	// Lines stay unloaded: lifecycle transitions never touch them.
	return order.ReconstructOrder(
		snapshot.ID,
		snapshot.Number,
		snapshot.BusinessDate,
		status,
		snapshot.BeeperID,
		nil,
		order.NewMoney(snapshot.TotalCents),
		snapshot.CashierID,
		snapshot.ChefID,
		snapshot.CreatedAt,
		snapshot.DeliveredAt,
	), nil
}
