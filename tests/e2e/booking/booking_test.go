//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"shareit/internal/handler/dto/response"
	"shareit/tests/common/builder"
	"shareit/tests/common/dbtest"
	"shareit/tests/common/httptest"
	"shareit/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL      = "/bookings"
	ownerBookingsURL = "/bookings/owner"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// =============================================================================
// TestBookingLifecycle - create, decide and visibility
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: booking goes WAITING then APPROVED", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Drill", true)

		start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
		reqBody := builder.NewBookingBuilder().
			WithItemID(itemID).
			WithWindow(start, start.Add(24*time.Hour)).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, bookerID)
		require.Equal(t, http.StatusCreated, w.Code, "Should create booking successfully")

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "WAITING", created.Status)
		require.Equal(t, bookerID, created.Booker.ID)
		require.Equal(t, itemID, created.Item.ID)
		require.Equal(t, "Drill", created.Item.Name)

		decideURL := fmt.Sprintf("%s/%d?approved=true", bookingsURL, created.ID)
		dw := httptest.PerformRequest(t, s.Router, http.MethodPatch, decideURL, nil, ownerID)
		require.Equal(t, http.StatusOK, dw.Code)

		var decided response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &decided))
		require.Equal(t, "APPROVED", decided.Status)

		// A second decision is rejected whatever the value.
		dw2 := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%d?approved=false", bookingsURL, created.ID), nil, ownerID)
		require.Equal(t, http.StatusBadRequest, dw2.Code, "Second decision should fail")
	})

	s.Run("Error case: booker cannot decide own booking", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Drill", true)

		start := time.Now().Add(24 * time.Hour)
		bookingID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, start, start.Add(24*time.Hour), "WAITING")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%d?approved=true", bookingsURL, bookingID), nil, bookerID)
		require.Equal(t, http.StatusNotFound, w.Code, "Non-owner should get not found")
	})

	s.Run("Error case: stranger cannot fetch booking", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker@example.com")
		strangerID := dbtest.CreateTestUser(t, s.DB, "stranger", "stranger@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Drill", true)

		start := time.Now().Add(24 * time.Hour)
		bookingID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, start, start.Add(24*time.Hour), "WAITING")

		for sharer, wantCode := range map[int64]int{
			bookerID:   http.StatusOK,
			ownerID:    http.StatusOK,
			strangerID: http.StatusNotFound,
		} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet,
				fmt.Sprintf("%s/%d", bookingsURL, bookingID), nil, sharer)
			require.Equal(t, wantCode, w.Code, "sharer %d", sharer)
		}
	})

	s.Run("Error case: owner cannot book own item", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Drill", true)

		start := time.Now().Add(24 * time.Hour)
		reqBody := builder.NewBookingBuilder().
			WithItemID(itemID).
			WithWindow(start, start.Add(24*time.Hour)).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, ownerID)
		require.Equal(t, http.StatusNotFound, w.Code, "Self-booking should be hidden as not found")
	})

	s.Run("Error case: unavailable item cannot be booked", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Drill", false)

		start := time.Now().Add(24 * time.Hour)
		reqBody := builder.NewBookingBuilder().
			WithItemID(itemID).
			WithWindow(start, start.Add(24*time.Hour)).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, bookerID)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestBookingStateFilters - list endpoints with state slices
// =============================================================================

func (s *BookingSuite) TestBookingStateFilters() {
	s.Run("Normal case: state filters slice the booker list", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Drill", true)

		now := time.Now()
		past := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-72*time.Hour), now.Add(-48*time.Hour), "APPROVED")
		current := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-time.Hour), now.Add(time.Hour), "APPROVED")
		future := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(48*time.Hour), now.Add(72*time.Hour), "WAITING")
		rejected := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(96*time.Hour), now.Add(120*time.Hour), "REJECTED")

		fetch := func(state string) []response.BookingResponse {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?state="+state, nil, bookerID)
			require.Equal(t, http.StatusOK, w.Code, "state %s", state)
			var got []response.BookingResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
			return got
		}

		ids := func(list []response.BookingResponse) []int64 {
			out := make([]int64, len(list))
			for i, b := range list {
				out[i] = b.ID
			}
			return out
		}

		require.Len(t, fetch("ALL"), 4)
		require.Equal(t, []int64{past}, ids(fetch("PAST")))
		require.Equal(t, []int64{current}, ids(fetch("CURRENT")))
		require.ElementsMatch(t, []int64{rejected, future}, ids(fetch("FUTURE")))
		require.Equal(t, []int64{future}, ids(fetch("WAITING")))
		require.Equal(t, []int64{rejected}, ids(fetch("REJECTED")))
	})

	s.Run("Normal case: newest start first and offset paging", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Drill", true)

		now := time.Now()
		var ids []int64
		for i := range 3 {
			start := now.Add(time.Duration(24*(i+1)) * time.Hour)
			ids = append(ids, dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, start, start.Add(12*time.Hour), "WAITING"))
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?from=1&size=1", nil, bookerID)
		require.Equal(t, http.StatusOK, w.Code)
		var got []response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Len(t, got, 1)
		// Latest start is ids[2]; offset 1 lands on the middle booking.
		require.Equal(t, ids[1], got[0].ID)
	})

	s.Run("Normal case: owner list covers all own items", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker@example.com")
		drillID := dbtest.CreateTestItem(t, s.DB, ownerID, "Drill", true)
		ladderID := dbtest.CreateTestItem(t, s.DB, ownerID, "Ladder", true)

		now := time.Now()
		dbtest.CreateTestBooking(t, s.DB, drillID, bookerID, now.Add(24*time.Hour), now.Add(48*time.Hour), "WAITING")
		dbtest.CreateTestBooking(t, s.DB, ladderID, bookerID, now.Add(24*time.Hour), now.Add(48*time.Hour), "WAITING")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ownerBookingsURL, nil, ownerID)
		require.Equal(t, http.StatusOK, w.Code)
		var got []response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Len(t, got, 2)
	})

	s.Run("Error case: unknown user and unsupported state", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, 9999)
		require.Equal(t, http.StatusNotFound, w.Code, "Unknown booker should get not found")

		userID := dbtest.CreateTestUser(t, s.DB, "user", "user@example.com")
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?state=SOMETHING", nil, userID)
		require.Equal(t, http.StatusBadRequest, w2.Code)
	})
}

// =============================================================================
// TestCommentGate - comment eligibility after a finished booking
// =============================================================================

func (s *BookingSuite) TestCommentGate() {
	s.Run("Normal case: finished booking unlocks commenting", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Drill", true)

		now := time.Now()
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-48*time.Hour), now.Add(-24*time.Hour), "APPROVED")

		commentURL := fmt.Sprintf("/items/%d/comment", itemID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, commentURL,
			map[string]string{"text": "worked perfectly"}, bookerID)
		require.Equal(t, http.StatusOK, w.Code)

		var comment response.CommentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &comment))
		require.Equal(t, "worked perfectly", comment.Text)
		require.Equal(t, "booker", comment.AuthorName)

		// The comment shows up on the item card for everyone.
		iw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/items/%d", itemID), nil, bookerID)
		require.Equal(t, http.StatusOK, iw.Code)
		var details response.ItemDetailsResponse
		require.NoError(t, httptest.DecodeResponseBody(t, iw.Body, &details))
		require.Len(t, details.Comments, 1)
	})

	s.Run("Error case: no booking means no comment", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		outsiderID := dbtest.CreateTestUser(t, s.DB, "outsider", "outsider@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Drill", true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/items/%d/comment", itemID),
			map[string]string{"text": "never used it"}, outsiderID)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: booking still running means no comment", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Drill", true)

		now := time.Now()
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-time.Hour), now.Add(time.Hour), "APPROVED")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/items/%d/comment", itemID),
			map[string]string{"text": "too early"}, bookerID)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestItemBookingProjection - last/next refs on the item card
// =============================================================================

func (s *BookingSuite) TestItemBookingProjection() {
	s.Run("Normal case: owner sees last and next approved bookings", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Drill", true)

		now := time.Now()
		lastID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-48*time.Hour), now.Add(-24*time.Hour), "APPROVED")
		nextID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(24*time.Hour), now.Add(48*time.Hour), "APPROVED")
		// Rejected bookings never make the projection.
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(72*time.Hour), now.Add(96*time.Hour), "REJECTED")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/items/%d", itemID), nil, ownerID)
		require.Equal(t, http.StatusOK, w.Code)

		var details response.ItemDetailsResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &details))
		require.NotNil(t, details.LastBooking)
		require.NotNil(t, details.NextBooking)
		require.Equal(t, lastID, details.LastBooking.ID)
		require.Equal(t, nextID, details.NextBooking.ID)
		require.Equal(t, bookerID, details.NextBooking.BookerID)
	})

	s.Run("Normal case: non-owner never sees the projection", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Drill", true)

		now := time.Now()
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-48*time.Hour), now.Add(-24*time.Hour), "APPROVED")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/items/%d", itemID), nil, bookerID)
		require.Equal(t, http.StatusOK, w.Code)

		var details response.ItemDetailsResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &details))
		require.Nil(t, details.LastBooking)
		require.Nil(t, details.NextBooking)
	})
}
