package middleware

import (
	"net/http"
	"strconv"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// SharerHeader carries the acting user's id. There is no session layer;
// the gateway in front of the service is trusted to set it.
const SharerHeader = "X-Sharer-User-Id"

const sharerIDKey = "sharer_user_id"

// RequireSharer parses the identity header and stores the id in the
// request context. Requests without a parseable id are rejected before
// any handler runs.
func RequireSharer() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SharerHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingSharer, "Missing "+SharerHeader+" header", nil)
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+SharerHeader+" header", nil)
			return
		}
		c.Set(sharerIDKey, id)
		c.Next()
	}
}

func GetSharerID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(sharerIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

var errMissingSharer = errs.New("missing sharer header")
