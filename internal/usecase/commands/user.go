package commands

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"
)

type CreateUserRequest struct {
	Name  string
	Email string
}

type UpdateUserRequest struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	Create(ctx context.Context, req CreateUserRequest) (int64, error)
	Update(ctx context.Context, userID int64, req UpdateUserRequest) error
	Delete(ctx context.Context, userID int64) error
}

type userUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewUserUseCase(uow shared.UnitOfWork) UserCommands {
	return &userUseCaseImpl{uow: uow}
}

func (uc *userUseCaseImpl) Create(ctx context.Context, req CreateUserRequest) (int64, error) {
	u, err := user.New(req.Name, req.Email)
	if err != nil {
		return 0, err
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Users().Create(ctx, tx.DB(), u)
		if derr != nil {
			return mapUserWriteErr(derr)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return createdID, nil
}

func (uc *userUseCaseImpl) Update(ctx context.Context, userID int64, req UpdateUserRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().UserByID(ctx, userID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrUserNotFound)
			}
			return derr
		}

		u := user.Reconstruct(snap.ID, snap.Name, snap.Email)
		if derr = u.ApplyPatch(req.Name, req.Email); derr != nil {
			return derr
		}
		if derr = tx.Users().Update(ctx, tx.DB(), u); derr != nil {
			return mapUserWriteErr(derr)
		}
		return nil
	})
}

func (uc *userUseCaseImpl) Delete(ctx context.Context, userID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, userID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrUserNotFound)
			}
			return derr
		}
		return tx.Users().Delete(ctx, tx.DB(), userID)
	})
}

func mapUserWriteErr(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(err, errs.ErrDuplicateEmail)
	}
	return err
}
