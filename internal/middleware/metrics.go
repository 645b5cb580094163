package middleware

import (
	"strconv"

	"github.com/fmpay/fmpay_backend/internal/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records per-request prometheus counters.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
