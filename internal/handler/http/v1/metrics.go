package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/disaster_response_system/internal/observability"
)

// MetricsMiddleware считает обработанные HTTP-запросы по методу, маршруту и статусу
func MetricsMiddleware(metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
