package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prodigylabs/programs-api/internal/metrics"
)

// Metrics records Prometheus request metrics. The route template
// (c.FullPath) is used as the path label so IDs don't explode cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.ActiveRequests.Inc()

		c.Next()

		metrics.ActiveRequests.Dec()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.RequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.RequestDurationSeconds.WithLabelValues(
			c.Request.Method,
			path,
		).Observe(time.Since(start).Seconds())
	}
}
