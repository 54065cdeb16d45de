package queries

import (
	"context"
	"time"

	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
)

type BookingView struct {
	ID          int64     `json:"id"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Status      string    `json:"status"`
	BookerID    int64     `json:"bookerId"`
	ItemID      int64     `json:"itemId"`
	ItemName    string    `json:"itemName"`
	ItemOwnerID int64     `json:"-"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	FindByBooker(ctx context.Context, bookerID int64, state State, now time.Time, page Page) ([]*BookingView, error)
	FindByItemOwner(ctx context.Context, ownerID int64, state State, now time.Time, page Page) ([]*BookingView, error)
}

type BookingQueries interface {
	// GetByID hides bookings from everyone but the booker and the item
	// owner, reporting not-found rather than forbidden.
	GetByID(ctx context.Context, requesterID, bookingID int64) (*BookingView, error)
	ListByBooker(ctx context.Context, bookerID int64, state State, page Page) ([]*BookingView, error)
	ListByOwner(ctx context.Context, ownerID int64, state State, page Page) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo  BookingReadStore
	users UserReadStore
	clock clock.Clock
}

func NewBookingQueries(repo BookingReadStore, users UserReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{repo: repo, users: users, clock: clk}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, requesterID, bookingID int64) (*BookingView, error) {
	bv, err := q.repo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}
	if requesterID != bv.BookerID && requesterID != bv.ItemOwnerID {
		return nil, errs.Wrap(errs.ErrBookingNotFound, "booking is not visible to requester")
	}
	return bv, nil
}

func (q *bookingQueriesImpl) ListByBooker(ctx context.Context, bookerID int64, state State, page Page) ([]*BookingView, error) {
	if err := q.requireUser(ctx, bookerID); err != nil {
		return nil, err
	}
	return q.repo.FindByBooker(ctx, bookerID, state, q.clock.Now(), page)
}

func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, ownerID int64, state State, page Page) ([]*BookingView, error) {
	if err := q.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}
	return q.repo.FindByItemOwner(ctx, ownerID, state, q.clock.Now(), page)
}

func (q *bookingQueriesImpl) requireUser(ctx context.Context, userID int64) error {
	if _, err := q.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrUserNotFound)
		}
		return err
	}
	return nil
}
