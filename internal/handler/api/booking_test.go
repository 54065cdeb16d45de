//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	"shareit/tests/common/httptest"
	"shareit/tests/common/testutil"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	sharer := middleware.RequireSharer()
	s.router.POST("/bookings", sharer, s.handler.Create)
	s.router.GET("/bookings", sharer, s.handler.ListByBooker)
	s.router.GET("/bookings/owner", sharer, s.handler.ListByOwner)
	s.router.GET("/bookings/:id", sharer, s.handler.Get)
	s.router.PATCH("/bookings/:id", sharer, s.handler.Decide)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: returns 201 Created with booking body", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), int64(2), gomock.Any()).Return(view.ID, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(2), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, 2)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(float64(view.ID), body["id"])
		s.Equal("WAITING", body["status"])
	})

	s.Run("error: 400 on missing identity header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, 0)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing itemId", mutate: testutil.Field("itemId", nil)},
			{name: "missing start", mutate: testutil.Field("start", nil)},
			{name: "missing end", mutate: testutil.Field("end", nil)},
			{name: "malformed start", mutate: testutil.Field("start", "not-a-time")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, 2)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: domain errors map to stable statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "unknown item", err: errs.ErrItemNotFound, expectCode: http.StatusNotFound},
			{name: "unknown booker", err: errs.ErrUserNotFound, expectCode: http.StatusNotFound},
			{name: "own item hidden as not found", err: errs.ErrSelfBooking, expectCode: http.StatusNotFound},
			{name: "unavailable item", err: errs.ErrItemUnavailable, expectCode: http.StatusBadRequest},
			{name: "bad window", err: errs.ErrInvalidDateRange, expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), int64(2), gomock.Any()).Return(int64(0), tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, 2)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

// ================================================================================
// TestDecide
// ================================================================================

func (s *BookingHandlerTestSuite) TestDecide() {
	b := builder.NewBookingBuilder()

	s.Run("success: approve returns APPROVED body", func() {
		approved := b.AsApproved().BuildView()
		s.mockCommands.EXPECT().Decide(gomock.Any(), int64(1), approved.ID, true).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1), approved.ID).Return(approved, nil)

		url := fmt.Sprintf("/bookings/%d?approved=true", approved.ID)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, 1)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("APPROVED", body["status"])
	})

	s.Run("success: reject returns REJECTED body", func() {
		rejected := builder.NewBookingBuilder().AsRejected().BuildView()
		s.mockCommands.EXPECT().Decide(gomock.Any(), int64(1), rejected.ID, false).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1), rejected.ID).Return(rejected, nil)

		url := fmt.Sprintf("/bookings/%d?approved=false", rejected.ID)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, 1)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("REJECTED", body["status"])
	})

	s.Run("error: 400 when approved parameter is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/1", nil, 1)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on second decision", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), int64(1), int64(1), true).Return(errs.ErrBookingAlreadyDecided)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/1?approved=true", nil, 1)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 for non-owner", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), int64(99), int64(1), true).Return(errs.ErrBookingNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/1?approved=true", nil, 99)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().BuildView()

	s.Run("success: booker fetches own booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.BookerID, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, fmt.Sprintf("/bookings/%d", view.ID), nil, view.BookerID)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(float64(view.ID), body["id"])
	})

	s.Run("error: 404 for stranger", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(99), view.ID).Return(nil, errs.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, fmt.Sprintf("/bookings/%d", view.ID), nil, 99)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-number", nil, 2)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestListByBooker / TestListByOwner
// ================================================================================

func (s *BookingHandlerTestSuite) TestListByBooker() {
	views := []*queries.BookingView{builder.NewBookingBuilder().BuildView()}

	s.Run("success: default state is ALL", func() {
		s.mockQueries.EXPECT().ListByBooker(gomock.Any(), int64(2), queries.StateAll, queries.Page{}).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, 2)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: state and paging forwarded", func() {
		s.mockQueries.EXPECT().ListByBooker(gomock.Any(), int64(2), queries.StatePast, queries.Page{Limit: 10, Offset: 20}).Return([]*queries.BookingView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=PAST&from=20&size=10", nil, 2)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on unsupported state", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=UNSUPPORTED_STATUS", nil, 2)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on negative from", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?from=-1", nil, 2)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 for unknown booker", func() {
		s.mockQueries.EXPECT().ListByBooker(gomock.Any(), int64(404), queries.StateAll, queries.Page{}).Return(nil, errs.ErrUserNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, 404)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *BookingHandlerTestSuite) TestListByOwner() {
	views := []*queries.BookingView{builder.NewBookingBuilder().BuildView()}

	s.Run("success: owner listing", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), int64(1), queries.StateWaiting, queries.Page{}).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner?state=WAITING", nil, 1)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: 404 for unknown owner", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), int64(404), queries.StateAll, queries.Page{}).Return(nil, errs.ErrUserNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner", nil, 404)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
