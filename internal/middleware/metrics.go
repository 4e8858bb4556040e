package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/swasthya-saathi/portal-api/internal/metrics"
)

// Metrics records per-request counters and latency. The matched route
// template is used as the label, not the raw path, to keep cardinality
// bounded.
func Metrics(col *metrics.Collector) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			col.RecordRequest(c.Request().Method, c.Path(), c.Response().Status)
			col.RecordLatency(time.Since(start))
			return err
		}
	}
}
