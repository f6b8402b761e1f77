package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// TimeoutConfig returns timeout middleware configuration
func TimeoutConfig(timeout time.Duration) echo.MiddlewareFunc {
	return middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	})
}

// SelectiveTimeoutConfig applies a longer timeout to slow endpoints (LLM
// drafting, image generation, document conversion) and the default
// everywhere else.
func SelectiveTimeoutConfig(defaultTimeout, longTimeout time.Duration) echo.MiddlewareFunc {
	slowPrefixes := []string{
		"/api/v1/resume",
		"/api/v1/image/generate",
		"/api/v1/export",
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		defaultHandler := TimeoutConfig(defaultTimeout)(next)
		longHandler := TimeoutConfig(longTimeout)(next)

		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, prefix := range slowPrefixes {
				if strings.HasPrefix(path, prefix) {
					return longHandler(c)
				}
			}
			return defaultHandler(c)
		}
	}
}
