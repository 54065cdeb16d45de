package commands

import (
	"context"

	"shareit/internal/domain/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"
)

type CreateRequestRequest struct {
	Description string
}

type RequestCommands interface {
	Create(ctx context.Context, userID int64, req CreateRequestRequest) (int64, error)
}

type requestUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRequestUseCase(uow shared.UnitOfWork, clk clock.Clock) RequestCommands {
	return &requestUseCaseImpl{uow: uow, clock: clk}
}

func (uc *requestUseCaseImpl) Create(ctx context.Context, userID int64, req CreateRequestRequest) (int64, error) {
	var createdID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, userID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrUserNotFound)
			}
			return derr
		}

		r, derr := request.New(userID, req.Description, uc.clock.Now())
		if derr != nil {
			return derr
		}
		id, derr := tx.Requests().Create(ctx, tx.DB(), r)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return createdID, nil
}
