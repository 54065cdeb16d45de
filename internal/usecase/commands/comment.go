package commands

import (
	"context"
	"time"

	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"
)

type AddCommentRequest struct {
	Text string
}

// AddCommentResult carries what the API echoes back; comments have no
// standalone read endpoint to re-fetch from.
type AddCommentResult struct {
	ID         int64
	Text       string
	AuthorName string
	Created    time.Time
}

type CommentCommands interface {
	// Add gates on booking history: the author must have a booking for
	// the item that has already ended, whatever its status.
	Add(ctx context.Context, authorID, itemID int64, req AddCommentRequest) (*AddCommentResult, error)
}

type commentUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCommentUseCase(uow shared.UnitOfWork, clk clock.Clock) CommentCommands {
	return &commentUseCaseImpl{uow: uow, clock: clk}
}

func (uc *commentUseCaseImpl) Add(ctx context.Context, authorID, itemID int64, req AddCommentRequest) (*AddCommentResult, error) {
	var result *AddCommentResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		author, derr := tx.Reads().UserByID(ctx, authorID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrUserNotFound)
			}
			return derr
		}
		if _, derr := tx.Reads().ItemByID(ctx, itemID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrItemNotFound)
			}
			return derr
		}

		now := uc.clock.Now()
		eligible, derr := tx.Reads().HasPastBooking(ctx, authorID, itemID, now)
		if derr != nil {
			return derr
		}
		if !eligible {
			return errs.Wrap(errs.ErrCommentWithoutBooking, "no finished booking for this item")
		}

		c, derr := comment.New(itemID, authorID, req.Text, now)
		if derr != nil {
			return derr
		}
		id, derr := tx.Comments().Create(ctx, tx.DB(), c)
		if derr != nil {
			return derr
		}
		result = &AddCommentResult{
			ID:         id,
			Text:       c.Text(),
			AuthorName: author.Name,
			Created:    c.Created(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
