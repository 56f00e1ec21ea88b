package middleware

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
)

// Logging writes one key=value line per HTTP request.
func Logging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			latency := time.Since(start)

			if err != nil {
				c.Error(err)
			}

			rid := RequestIDFromContext(c)
			log.Printf("request_id=%s method=%s path=%s route=%s ip=%s status=%d latency=%s",
				rid, c.Request().Method, c.Request().URL.Path, c.Path(), c.RealIP(), c.Response().Status, latency)

			return err
		}
	}
}
