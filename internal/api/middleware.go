package api

import (
	"time"

	"github.com/labstack/echo/v4"
)

// requestLogger logs one line per request.
func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		ctx := c.Request().Context()
		status := c.Response().Status
		args := []any{
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", status,
			"duration", time.Since(start),
		}
		if status >= 500 {
			s.logger.Error(ctx, "request failed", args...)
		} else {
			s.logger.Info(ctx, "request", args...)
		}
		return nil
	}
}
