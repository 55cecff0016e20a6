package middleware

import (
	"net/http"
	"time"

	domainerrors "studio/internal/domain/errors"
	"studio/internal/errors"
	"studio/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency per route template.
type MetricsMiddleware struct {
	recorder metrics.Recorder
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(recorder metrics.Recorder) *MetricsMiddleware {
	return &MetricsMiddleware{recorder: recorder}
}

// Handle observes every request that matched a route.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}

		status := c.Response().Status
		if err != nil {
			// The central error handler has not written yet; use the status it will pick.
			var httpErr *echo.HTTPError
			if appErr, ok := domainerrors.AsAppError(err); ok {
				status = appErr.HTTPCode()
			} else if errors.As(err, &httpErr) {
				status = httpErr.Code
			} else {
				status = http.StatusInternalServerError
			}
		}

		m.recorder.ObserveHTTPRequest(c.Request().Method, route, status, time.Since(start))

		return err
	}
}
