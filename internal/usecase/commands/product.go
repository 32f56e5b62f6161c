package commands

import (
	"context"

	"github.com/google/uuid"

	"restaurant-pos/internal/domain/product"
	reqdto "restaurant-pos/internal/handler/dto/request"
	"restaurant-pos/internal/infra"
	"restaurant-pos/internal/pkg/errs"
	"restaurant-pos/internal/usecase/queries"
	"restaurant-pos/internal/usecase/shared"
)

var (
	ErrCategoryNotFound = errs.New("category not found")
	ErrProductInUse     = errs.New("product is referenced by existing orders")
)

type ProductCommands interface {
	Create(ctx context.Context, req reqdto.CreateProductRequest) (*queries.ProductView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateProductRequest) (*queries.ProductView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productCommandsImpl struct {
	uow            shared.UnitOfWork
	catalogQueries queries.CatalogQueries
}

func NewProductCommands(uow shared.UnitOfWork, catalogQueries queries.CatalogQueries) ProductCommands {
	return &productCommandsImpl{
		uow:            uow,
		catalogQueries: catalogQueries,
	}
}

func (c *productCommandsImpl) Create(ctx context.Context, req reqdto.CreateProductRequest) (*queries.ProductView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var productID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		productID, err = tx.Products().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrCategoryNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.catalogQueries.GetProductByID(ctx, productID)
}

func (c *productCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateProductRequest) (*queries.ProductView, error) {
	// Run the request through the domain constructor for validation, then
	// rebind it to the target id.
	validated, err := product.NewProduct(req.CategoryID, req.Name, req.PriceCents)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := c.catalogQueries.GetProductByID(ctx, id)
		if err != nil {
			return err
		}

		entity := product.ReconstructProduct(
			id,
			validated.CategoryID(),
			validated.Name(),
			validated.PriceCents(),
			req.IsActive,
			existing.CreatedAt,
			existing.UpdatedAt,
		)

		if err := tx.Products().Update(ctx, tx.DB(), entity); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return queries.ErrProductNotFound
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return ErrCategoryNotFound
			default:
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.catalogQueries.GetProductByID(ctx, id)
}

func (c *productCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Products().Delete(ctx, tx.DB(), id); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return queries.ErrProductNotFound
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				// Ordered at least once; deactivate instead of deleting.
				return ErrProductInUse
			default:
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
}
