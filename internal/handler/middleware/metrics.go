package middleware

import (
	"strconv"

	"shareit/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware counts requests per route template so path ids do
// not blow up label cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.IncHTTP(c.Request.Method, route, strconv.Itoa(c.Writer.Status()))
	}
}
