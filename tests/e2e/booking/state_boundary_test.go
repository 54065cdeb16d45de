//go:build e2e

package booking_test

import (
	"context"
	"time"

	"shareit/internal/infra/readstore"
	"shareit/internal/infra/sqlc"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/dbtest"

	"github.com/stretchr/testify/require"
)

// =============================================================================
// TestStateBoundaries - inequality directions at the exact instant
// =============================================================================

// The state filter evaluates against a bind parameter, so the read store can
// be driven with a pinned instant: a booking ending exactly now is PAST, one
// starting exactly now is CURRENT.
func (s *BookingSuite) TestStateBoundaries() {
	s.Run("end equal to now is PAST, start equal to now is CURRENT", func() {
		t := s.T()
		ctx := context.Background()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Drill", true)

		pivot := time.Now().UTC().Truncate(time.Second)
		endingNowID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			pivot.Add(-2*time.Hour), pivot, "APPROVED")
		startingNowID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			pivot, pivot.Add(2*time.Hour), "APPROVED")

		store := readstore.NewBookingReadStore(sqlc.New(), s.DB)

		past, err := store.FindByBooker(ctx, bookerID, queries.StatePast, pivot, queries.Page{})
		require.NoError(t, err)
		require.Len(t, past, 1, "booking ending exactly now belongs to PAST")
		require.Equal(t, endingNowID, past[0].ID)

		current, err := store.FindByBooker(ctx, bookerID, queries.StateCurrent, pivot, queries.Page{})
		require.NoError(t, err)
		require.Len(t, current, 1, "booking starting exactly now belongs to CURRENT")
		require.Equal(t, startingNowID, current[0].ID)

		future, err := store.FindByBooker(ctx, bookerID, queries.StateFuture, pivot, queries.Page{})
		require.NoError(t, err)
		require.Empty(t, future, "neither boundary booking is FUTURE")
	})

	s.Run("one instant later the running booking is still CURRENT", func() {
		t := s.T()
		ctx := context.Background()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Drill", true)

		pivot := time.Now().UTC().Truncate(time.Second)
		runningID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			pivot, pivot.Add(2*time.Hour), "APPROVED")

		store := readstore.NewBookingReadStore(sqlc.New(), s.DB)

		current, err := store.FindByBooker(ctx, bookerID, queries.StateCurrent, pivot.Add(time.Second), queries.Page{})
		require.NoError(t, err)
		require.Len(t, current, 1)
		require.Equal(t, runningID, current[0].ID)

		past, err := store.FindByBooker(ctx, bookerID, queries.StatePast, pivot.Add(2*time.Hour), queries.Page{})
		require.NoError(t, err)
		require.Len(t, past, 1, "the instant the booking ends it moves to PAST")
		require.Equal(t, runningID, past[0].ID)
	})
}
