package readstore

import (
	"context"
	"time"

	"shareit/internal/infra"
	"shareit/internal/infra/sqlc"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetBookingByIDRow, error)
	ListBookingsByBooker(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByBookerParams) ([]sqlc.ListBookingsByBookerRow, error)
	ListBookingsByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByOwnerParams) ([]sqlc.ListBookingsByOwnerRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return &queries.BookingView{
		ID:          row.ID,
		Start:       pgconv.TimeFromPgtype(row.StartDate),
		End:         pgconv.TimeFromPgtype(row.EndDate),
		Status:      row.Status,
		BookerID:    row.BookerID,
		ItemID:      row.ItemID,
		ItemName:    row.ItemName,
		ItemOwnerID: row.ItemOwnerID,
	}, nil
}

func (r *BookingReadStore) FindByBooker(ctx context.Context, bookerID int64, state queries.State, now time.Time, page queries.Page) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByBooker(ctx, r.db, sqlc.ListBookingsByBookerParams{
		BookerID:   bookerID,
		State:      string(state),
		Now:        pgconv.TimeToPgtype(now),
		PageLimit:  page.Limit,
		PageOffset: page.Offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by booker", err)
	}
	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.BookingView{
			ID:       row.ID,
			Start:    pgconv.TimeFromPgtype(row.StartDate),
			End:      pgconv.TimeFromPgtype(row.EndDate),
			Status:   row.Status,
			BookerID: row.BookerID,
			ItemID:   row.ItemID,
			ItemName: row.ItemName,
		})
	}
	return views, nil
}

func (r *BookingReadStore) FindByItemOwner(ctx context.Context, ownerID int64, state queries.State, now time.Time, page queries.Page) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByOwner(ctx, r.db, sqlc.ListBookingsByOwnerParams{
		OwnerID:    ownerID,
		State:      string(state),
		Now:        pgconv.TimeToPgtype(now),
		PageLimit:  page.Limit,
		PageOffset: page.Offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by owner", err)
	}
	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.BookingView{
			ID:       row.ID,
			Start:    pgconv.TimeFromPgtype(row.StartDate),
			End:      pgconv.TimeFromPgtype(row.EndDate),
			Status:   row.Status,
			BookerID: row.BookerID,
			ItemID:   row.ItemID,
			ItemName: row.ItemName,
		})
	}
	return views, nil
}
