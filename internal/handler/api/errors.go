package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
)

// set by the identity middleware; reaching a handler without it means a
// route was wired without RequireSharer
var errNoSharer = errs.New("sharer id not set")

// abortDomainErr translates usecase sentinels into the stable statuses
// the API promises. SelfBooking deliberately lands in the 404 bucket so
// ownership is not disclosed.
func abortDomainErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrUserNotFound),
		errors.Is(err, errs.ErrItemNotFound),
		errors.Is(err, errs.ErrBookingNotFound),
		errors.Is(err, errs.ErrRequestNotFound),
		errors.Is(err, errs.ErrSelfBooking):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, errs.ErrDuplicateEmail):
		httperr.AbortWithError(c, http.StatusConflict, err, "Email already in use", nil)
	case errors.Is(err, errs.ErrItemUnavailable),
		errors.Is(err, errs.ErrInvalidDateRange),
		errors.Is(err, errs.ErrBookingAlreadyDecided),
		errors.Is(err, errs.ErrCommentWithoutBooking),
		errors.Is(err, errs.ErrUnsupportedState),
		errors.Is(err, errs.ErrInvalidInput):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return 0, false
	}
	return id, true
}

// parsePage reads the offset window query parameters; both default to
// the unbounded window when absent.
func parsePage(c *gin.Context) (queries.Page, bool) {
	var from, size int64
	if v := c.Query("from"); v != "" {
		iv, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid from", nil)
			return queries.Page{}, false
		}
		from = iv
	}
	if v := c.Query("size"); v != "" {
		iv, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid size", nil)
			return queries.Page{}, false
		}
		size = iv
	}
	page, err := queries.NewPage(from, size)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pagination", nil)
		return queries.Page{}, false
	}
	return page, true
}
