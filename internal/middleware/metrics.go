package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/fx_dashboard/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// RequestMetrics records request latency by method, matched route and status.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
