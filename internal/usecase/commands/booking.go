package commands

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/metrics"
	"shareit/internal/usecase/shared"
)

type CreateBookingRequest struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

type BookingCommands interface {
	// Create runs the precondition chain in a fixed order: the item must
	// exist, be available, and not belong to the booker, then the window
	// is validated. The chain decides which error wins when several
	// preconditions fail at once.
	Create(ctx context.Context, bookerID int64, req CreateBookingRequest) (int64, error)
	// Decide approves or rejects a WAITING booking. Only the item owner
	// may decide; everyone else gets not-found.
	Decide(ctx context.Context, ownerID, bookingID int64, approved bool) error
}

type bookingUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy booking.Policy
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, policy booking.Policy) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk, policy: policy}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, bookerID int64, req CreateBookingRequest) (int64, error) {
	var createdID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, bookerID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrUserNotFound)
			}
			return derr
		}
		itemSnap, derr := tx.Reads().ItemByID(ctx, req.ItemID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrItemNotFound)
			}
			return derr
		}
		if !itemSnap.Available {
			return errs.Wrap(errs.ErrItemUnavailable, "item is not available for booking")
		}
		if itemSnap.OwnerID == bookerID {
			return errs.ErrSelfBooking
		}

		b, derr := booking.New(req.ItemID, bookerID, req.Start, req.End, uc.clock.Now(), uc.policy)
		if derr != nil {
			return derr
		}
		id, derr := tx.Bookings().Create(ctx, tx.DB(), b)
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

func (uc *bookingUseCaseImpl) Decide(ctx context.Context, ownerID, bookingID int64, approved bool) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingByID(ctx, bookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrBookingNotFound)
			}
			return derr
		}
		if snap.ItemOwnerID != ownerID {
			return errs.Wrap(errs.ErrBookingNotFound, "booking is not visible to requester")
		}

		b := booking.Reconstruct(snap.ID, snap.ItemID, snap.BookerID, snap.Start, snap.End, snap.Status)
		if derr = b.Decide(approved); derr != nil {
			return derr
		}
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, b.Status())
	})
	if err != nil {
		return err
	}
	if approved {
		metrics.IncBookingDecision("approved")
	} else {
		metrics.IncBookingDecision("rejected")
	}
	return nil
}
