package middleware

import (
	"strconv"
	"time"

	"seguros_xpto/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records request count, latency and in-flight requests. The matched
// route template is used as label to keep cardinality low.
func Metrics(rec *metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		rec.HTTPInFlight.Inc()
		defer rec.HTTPInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		labels := prometheus.Labels{
			"method": c.Request.Method,
			"route":  route,
			"status": strconv.Itoa(c.Writer.Status()),
		}
		rec.HTTPRequests.With(labels).Inc()
		rec.HTTPDuration.With(labels).Observe(time.Since(start).Seconds())
	}
}
