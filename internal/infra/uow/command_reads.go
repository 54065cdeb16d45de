package uow

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/sqlc"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/shared"
)

// commandReads serves the write side's precondition lookups. It is bound
// to whatever DBTX created it, so the same implementation works inside a
// transaction and against the pool.
type commandReads struct {
	queries *sqlc.Queries
	db      sqlc.DBTX
}

func newCommandReads(db sqlc.DBTX) shared.CommandReads {
	return &commandReads{queries: sqlc.New(), db: db}
}

func (r *commandReads) UserByID(ctx context.Context, id int64) (*shared.UserSnapshot, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user", err)
	}
	return &shared.UserSnapshot{ID: row.ID, Name: row.Name, Email: row.Email}, nil
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	row, err := r.queries.GetUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user by email", err)
	}
	return &shared.UserSnapshot{ID: row.ID, Name: row.Name, Email: row.Email}, nil
}

func (r *commandReads) ItemByID(ctx context.Context, id int64) (*shared.ItemSnapshot, error) {
	row, err := r.queries.GetItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get item", err)
	}
	return &shared.ItemSnapshot{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Available:   row.Available,
		OwnerID:     row.OwnerID,
		RequestID:   pgconv.Int64PtrFromPgtype(row.RequestID),
	}, nil
}

func (r *commandReads) BookingByID(ctx context.Context, id int64) (*shared.BookingSnapshot, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	return &shared.BookingSnapshot{
		ID:          row.ID,
		Start:       pgconv.TimeFromPgtype(row.StartDate),
		End:         pgconv.TimeFromPgtype(row.EndDate),
		ItemID:      row.ItemID,
		BookerID:    row.BookerID,
		Status:      booking.Status(row.Status),
		ItemOwnerID: row.ItemOwnerID,
	}, nil
}

func (r *commandReads) RequestByID(ctx context.Context, id int64) (*shared.RequestSnapshot, error) {
	row, err := r.queries.GetRequestByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get request", err)
	}
	return &shared.RequestSnapshot{
		ID:          row.ID,
		Description: row.Description,
		UserID:      row.UserID,
		Created:     pgconv.TimeFromPgtype(row.Created),
	}, nil
}

func (r *commandReads) HasPastBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	ok, err := r.queries.HasPastBooking(ctx, r.db, sqlc.HasPastBookingParams{
		BookerID: bookerID,
		ItemID:   itemID,
		Now:      pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check past bookings", err)
	}
	return ok, nil
}
