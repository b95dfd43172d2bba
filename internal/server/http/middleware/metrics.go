package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/ecopoints/internal/metrics"
)

// Metrics records request counts and latency by route template.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveHTTP(path, c.Writer.Status(), time.Since(start))
	}
}
