package commands

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"
)

type CreateItemRequest struct {
	Name        string
	Description string
	Available   *bool
	RequestID   *int64
}

type UpdateItemRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemCommands interface {
	Create(ctx context.Context, ownerID int64, req CreateItemRequest) (int64, error)
	// Update hides items from non-owners: editing someone else's item
	// reports not-found.
	Update(ctx context.Context, ownerID, itemID int64, req UpdateItemRequest) error
	Delete(ctx context.Context, ownerID, itemID int64) error
}

type itemUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewItemUseCase(uow shared.UnitOfWork) ItemCommands {
	return &itemUseCaseImpl{uow: uow}
}

func (uc *itemUseCaseImpl) Create(ctx context.Context, ownerID int64, req CreateItemRequest) (int64, error) {
	if req.Available == nil {
		return 0, errs.Wrap(errs.ErrInvalidInput, "available is required")
	}

	var createdID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, ownerID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrUserNotFound)
			}
			return derr
		}
		if req.RequestID != nil {
			if _, derr := tx.Reads().RequestByID(ctx, *req.RequestID); derr != nil {
				if infra.IsKind(derr, infra.KindNotFound) {
					return errs.Mark(derr, errs.ErrRequestNotFound)
				}
				return derr
			}
		}

		it, derr := item.New(ownerID, req.Name, req.Description, *req.Available, req.RequestID)
		if derr != nil {
			return derr
		}
		id, derr := tx.Items().Create(ctx, tx.DB(), it)
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

func (uc *itemUseCaseImpl) Update(ctx context.Context, ownerID, itemID int64, req UpdateItemRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ItemByID(ctx, itemID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrItemNotFound)
			}
			return derr
		}

		it := item.Reconstruct(snap.ID, snap.OwnerID, snap.Name, snap.Description, snap.Available, snap.RequestID)
		if !it.IsOwnedBy(ownerID) {
			return errs.Wrap(errs.ErrItemNotFound, "item is not owned by requester")
		}
		it.ApplyPatch(req.Name, req.Description, req.Available)
		return tx.Items().Update(ctx, tx.DB(), it)
	})
}

func (uc *itemUseCaseImpl) Delete(ctx context.Context, ownerID, itemID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ItemByID(ctx, itemID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrItemNotFound)
			}
			return derr
		}
		if snap.OwnerID != ownerID {
			return errs.Wrap(errs.ErrItemNotFound, "item is not owned by requester")
		}
		return tx.Items().Delete(ctx, tx.DB(), itemID)
	})
}
