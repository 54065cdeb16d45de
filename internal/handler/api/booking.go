package api

import (
	"net/http"
	"strconv"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Request a booking of an available item; it starts WAITING
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	bookerID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoSharer, "Missing sharer id", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), bookerID, commands.CreateBookingRequest{
		ItemID: req.ItemID,
		Start:  req.Start,
		End:    req.End,
	})
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), bookerID, id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Decide booking
// @Description Approve or reject a WAITING booking; owner only
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param id path int true "Booking ID"
// @Param approved query bool true "Approve (true) or reject (false)"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Decide(c *gin.Context) {
	ownerID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoSharer, "Missing sharer id", nil)
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid approved parameter", nil)
		return
	}
	if err := h.cmds.Decide(c.Request.Context(), ownerID, id, approved); err != nil {
		abortDomainErr(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Visible only to the booker and the item owner
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	requesterID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoSharer, "Missing sharer id", nil)
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), requesterID, id)
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Description Bookings made by the acting user, newest start first
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param state query string false "ALL|CURRENT|PAST|FUTURE|WAITING|REJECTED (default ALL)"
// @Param from query int false "Row offset"
// @Param size query int false "Page size (0 = all)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListByBooker(c *gin.Context) {
	bookerID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoSharer, "Missing sharer id", nil)
		return
	}
	state, err := queries.ParseState(c.Query("state"))
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	page, ok := parsePage(c)
	if !ok {
		return
	}
	views, err := h.q.ListByBooker(c.Request.Context(), bookerID, state, page)
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(views))
}

// @Summary List bookings for owned items
// @Description Bookings of the acting user's items, newest start first
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param state query string false "ALL|CURRENT|PAST|FUTURE|WAITING|REJECTED (default ALL)"
// @Param from query int false "Row offset"
// @Param size query int false "Page size (0 = all)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/owner [get]
func (h *BookingHandler) ListByOwner(c *gin.Context) {
	ownerID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoSharer, "Missing sharer id", nil)
		return
	}
	state, err := queries.ParseState(c.Query("state"))
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	page, ok := parsePage(c)
	if !ok {
		return
	}
	views, err := h.q.ListByOwner(c.Request.Context(), ownerID, state, page)
	if err != nil {
		abortDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(views))
}
