package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"birikim/internal/metrics"
)

// Metrics records request count and latency per matched route. Unmatched
// requests are grouped under a single label to bound cardinality.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
