package repository

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/sqlc"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/shared"
)

type bookingRepository struct {
	queries *sqlc.Queries
}

func NewBookingRepository() shared.BookingRepository {
	return &bookingRepository{queries: sqlc.New()}
}

func (r *bookingRepository) Create(ctx context.Context, db sqlc.DBTX, b *booking.Booking) (int64, error) {
	row, err := r.queries.CreateBooking(ctx, db, sqlc.CreateBookingParams{
		StartDate: pgconv.TimeToPgtype(b.Period().Start()),
		EndDate:   pgconv.TimeToPgtype(b.Period().End()),
		ItemID:    b.ItemID(),
		BookerID:  b.BookerID(),
		Status:    string(b.Status()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err, classifyFKErr(err))
	}
	return row.ID, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, db sqlc.DBTX, id int64, status booking.Status) error {
	_, err := r.queries.UpdateBookingStatus(ctx, db, sqlc.UpdateBookingStatusParams{
		ID:     id,
		Status: string(status),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	return nil
}
