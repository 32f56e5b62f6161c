package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"restaurant-pos/internal/domain/user"
	reqdto "restaurant-pos/internal/handler/dto/request"
	"restaurant-pos/internal/infra"
	"restaurant-pos/internal/pkg/errs"
	"restaurant-pos/internal/pkg/password"
	"restaurant-pos/internal/usecase/shared"
)

var (
	ErrEmailAlreadyUsed = errs.New("email already registered")
	ErrPasswordHashing  = errs.New("password hashing failed")
)

type UserCommands interface {
	Create(ctx context.Context, req reqdto.CreateUserRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateUserRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUserCommands(uow shared.UnitOfWork) UserCommands {
	return &userCommandsImpl{uow: uow}
}

func (c *userCommandsImpl) Create(ctx context.Context, req reqdto.CreateUserRequest) (uuid.UUID, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	if _, err := user.NewPassword(req.Password); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrPasswordHashing)
	}

	entity := user.NewUser(email, hash, role)

	var userID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		userID, err = tx.Users().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailAlreadyUsed
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}

func (c *userCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateUserRequest) error {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, err := tx.Reads().UserByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		hash := snapshot.PasswordHash
		if req.Password != nil {
			if _, err := user.NewPassword(*req.Password); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			hash, err = password.HashPassword(*req.Password)
			if err != nil {
				return errs.Mark(err, ErrPasswordHashing)
			}
		}

		// Timestamps are owned by the database; the update statement never
		// touches created_at.
		entity := user.ReconstructUser(id, email, hash, role, nil, req.IsActive, time.Time{}, time.Time{})

		if err := tx.Users().Update(ctx, tx.DB(), entity); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return ErrUserNotFound
			case infra.IsKind(err, infra.KindDuplicateKey):
				return ErrEmailAlreadyUsed
			default:
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
}

func (c *userCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
