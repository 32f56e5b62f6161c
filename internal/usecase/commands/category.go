package commands

import (
	"context"

	"github.com/google/uuid"

	"restaurant-pos/internal/domain/category"
	reqdto "restaurant-pos/internal/handler/dto/request"
	"restaurant-pos/internal/infra"
	"restaurant-pos/internal/pkg/errs"
	"restaurant-pos/internal/usecase/queries"
	"restaurant-pos/internal/usecase/shared"
)

var (
	ErrCategoryNotEmpty = errs.New("category still has products")
)

type CategoryCommands interface {
	Create(ctx context.Context, req reqdto.CreateCategoryRequest) (*queries.CategoryView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCategoryRequest) (*queries.CategoryView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryCommandsImpl struct {
	uow            shared.UnitOfWork
	catalogQueries queries.CatalogQueries
}

func NewCategoryCommands(uow shared.UnitOfWork, catalogQueries queries.CatalogQueries) CategoryCommands {
	return &categoryCommandsImpl{
		uow:            uow,
		catalogQueries: catalogQueries,
	}
}

func (c *categoryCommandsImpl) Create(ctx context.Context, req reqdto.CreateCategoryRequest) (*queries.CategoryView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var categoryID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		categoryID, err = tx.Categories().Create(ctx, tx.DB(), entity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.catalogQueries.GetCategoryByID(ctx, categoryID)
}

func (c *categoryCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCategoryRequest) (*queries.CategoryView, error) {
	validated, err := category.NewCategory(req.Name, req.SortOrder)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := c.catalogQueries.GetCategoryByID(ctx, id)
		if err != nil {
			return err
		}

		entity := category.ReconstructCategory(
			id,
			validated.Name(),
			validated.SortOrder(),
			existing.CreatedAt,
			existing.UpdatedAt,
		)

		if err := tx.Categories().Update(ctx, tx.DB(), entity); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return queries.ErrCategoryNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.catalogQueries.GetCategoryByID(ctx, id)
}

func (c *categoryCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Categories().Delete(ctx, tx.DB(), id); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return queries.ErrCategoryNotFound
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return ErrCategoryNotEmpty
			default:
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
}
