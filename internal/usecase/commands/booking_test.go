//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func validBookingReq() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ItemID: 5,
		Start:  fixedNow.Add(24 * time.Hour),
		End:    fixedNow.Add(48 * time.Hour),
	}
}

func TestBookingCommands_Create(t *testing.T) {
	ctx := context.Background()

	seed := func(uow *fakeUoW) {
		uow.tx.reads.users[2] = &shared.UserSnapshot{ID: 2, Name: "alice", Email: "alice@example.com"}
		uow.tx.reads.items[5] = &shared.ItemSnapshot{ID: 5, Name: "drill", Available: true, OwnerID: 1}
	}

	t.Run("success", func(t *testing.T) {
		uow := newFakeUoW()
		seed(uow)

		uc := commands.NewBookingUseCase(uow, clock.NewMockClock(fixedNow), booking.Policy{})
		id, err := uc.Create(ctx, 2, validBookingReq())

		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
		require.Len(t, uow.tx.bookings.created, 1)
		assert.Equal(t, booking.StatusWaiting, uow.tx.bookings.created[0].Status())
	})

	t.Run("unknown booker", func(t *testing.T) {
		uow := newFakeUoW()
		seed(uow)

		uc := commands.NewBookingUseCase(uow, clock.NewMockClock(fixedNow), booking.Policy{})
		_, err := uc.Create(ctx, 404, validBookingReq())

		require.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Empty(t, uow.tx.bookings.created)
	})

	t.Run("unknown item", func(t *testing.T) {
		uow := newFakeUoW()
		seed(uow)

		req := validBookingReq()
		req.ItemID = 404

		uc := commands.NewBookingUseCase(uow, clock.NewMockClock(fixedNow), booking.Policy{})
		_, err := uc.Create(ctx, 2, req)

		require.ErrorIs(t, err, errs.ErrItemNotFound)
	})

	t.Run("unavailable item", func(t *testing.T) {
		uow := newFakeUoW()
		seed(uow)
		uow.tx.reads.items[5].Available = false

		uc := commands.NewBookingUseCase(uow, clock.NewMockClock(fixedNow), booking.Policy{})
		_, err := uc.Create(ctx, 2, validBookingReq())

		require.ErrorIs(t, err, errs.ErrItemUnavailable)
	})

	t.Run("owner booking own item", func(t *testing.T) {
		uow := newFakeUoW()
		seed(uow)
		uow.tx.reads.users[1] = &shared.UserSnapshot{ID: 1, Name: "bob", Email: "bob@example.com"}

		uc := commands.NewBookingUseCase(uow, clock.NewMockClock(fixedNow), booking.Policy{})
		_, err := uc.Create(ctx, 1, validBookingReq())

		require.ErrorIs(t, err, errs.ErrSelfBooking)
	})

	t.Run("availability wins over self-booking", func(t *testing.T) {
		uow := newFakeUoW()
		seed(uow)
		uow.tx.reads.users[1] = &shared.UserSnapshot{ID: 1, Name: "bob", Email: "bob@example.com"}
		uow.tx.reads.items[5].Available = false

		uc := commands.NewBookingUseCase(uow, clock.NewMockClock(fixedNow), booking.Policy{})
		_, err := uc.Create(ctx, 1, validBookingReq())

		require.ErrorIs(t, err, errs.ErrItemUnavailable)
	})

	t.Run("end before start", func(t *testing.T) {
		uow := newFakeUoW()
		seed(uow)

		req := validBookingReq()
		req.Start, req.End = req.End, req.Start

		uc := commands.NewBookingUseCase(uow, clock.NewMockClock(fixedNow), booking.Policy{})
		_, err := uc.Create(ctx, 2, req)

		require.ErrorIs(t, err, errs.ErrInvalidDateRange)
	})

	t.Run("past start under strict policy", func(t *testing.T) {
		uow := newFakeUoW()
		seed(uow)

		req := validBookingReq()
		req.Start = fixedNow.Add(-time.Hour)

		uc := commands.NewBookingUseCase(uow, clock.NewMockClock(fixedNow), booking.Policy{RejectPastStart: true})
		_, err := uc.Create(ctx, 2, req)

		require.ErrorIs(t, err, errs.ErrInvalidDateRange)
	})
}

func TestBookingCommands_Decide(t *testing.T) {
	ctx := context.Background()

	seed := func(uow *fakeUoW, status booking.Status) {
		uow.tx.reads.bookings[7] = &shared.BookingSnapshot{
			ID:          7,
			Start:       fixedNow.Add(24 * time.Hour),
			End:         fixedNow.Add(48 * time.Hour),
			ItemID:      5,
			BookerID:    2,
			Status:      status,
			ItemOwnerID: 1,
		}
	}

	t.Run("approve", func(t *testing.T) {
		uow := newFakeUoW()
		seed(uow, booking.StatusWaiting)

		uc := commands.NewBookingUseCase(uow, clock.NewMockClock(fixedNow), booking.Policy{})
		require.NoError(t, uc.Decide(ctx, 1, 7, true))

		require.Len(t, uow.tx.bookings.statusChanges, 1)
		assert.Equal(t, statusChange{id: 7, status: booking.StatusApproved}, uow.tx.bookings.statusChanges[0])
	})

	t.Run("reject", func(t *testing.T) {
		uow := newFakeUoW()
		seed(uow, booking.StatusWaiting)

		uc := commands.NewBookingUseCase(uow, clock.NewMockClock(fixedNow), booking.Policy{})
		require.NoError(t, uc.Decide(ctx, 1, 7, false))

		require.Len(t, uow.tx.bookings.statusChanges, 1)
		assert.Equal(t, booking.StatusRejected, uow.tx.bookings.statusChanges[0].status)
	})

	t.Run("non-owner gets not found", func(t *testing.T) {
		uow := newFakeUoW()
		seed(uow, booking.StatusWaiting)

		uc := commands.NewBookingUseCase(uow, clock.NewMockClock(fixedNow), booking.Policy{})
		err := uc.Decide(ctx, 2, 7, true)

		require.ErrorIs(t, err, errs.ErrBookingNotFound)
		assert.Empty(t, uow.tx.bookings.statusChanges)
	})

	t.Run("missing booking", func(t *testing.T) {
		uow := newFakeUoW()

		uc := commands.NewBookingUseCase(uow, clock.NewMockClock(fixedNow), booking.Policy{})
		err := uc.Decide(ctx, 1, 404, true)

		require.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("already decided", func(t *testing.T) {
		uow := newFakeUoW()
		seed(uow, booking.StatusApproved)

		uc := commands.NewBookingUseCase(uow, clock.NewMockClock(fixedNow), booking.Policy{})
		err := uc.Decide(ctx, 1, 7, false)

		require.ErrorIs(t, err, errs.ErrBookingAlreadyDecided)
		assert.Empty(t, uow.tx.bookings.statusChanges)
	})
}
