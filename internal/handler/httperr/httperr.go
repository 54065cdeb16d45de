// Package httperr writes the error envelope every handler responds
// with. Domain sentinels (booking/item/user not found, unsupported
// state, ineligible comment) are mapped to statuses in the api layer;
// this package only shapes the body.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the envelope: {"error":{"message":...}} plus an optional
// detail payload for validation errors.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError records err on the gin context so the error and
// logging middleware see it, then writes the envelope with the given
// status.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
