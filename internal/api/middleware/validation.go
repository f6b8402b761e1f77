package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/config"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// Endpoints whose bodies carry documents with embedded image data URIs.
// These share the upload size cap: a resume with a few resolved 500x500
// images is well over the default 1MB.
var largeBodyPrefixes = []string{
	"/api/v1/image/upload",
	"/api/v1/resume/update",
	"/api/v1/resume/resolve",
	"/api/v1/export",
}

// RequestValidation middleware tags every request with an ID and bounds
// body sizes. Content-bearing endpoints get the configured upload cap; all
// other POST bodies are held to 1MB.
func RequestValidation(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			if c.Request().Method == http.MethodPost {
				limit := int64(1024 * 1024)
				for _, prefix := range largeBodyPrefixes {
					if strings.HasPrefix(c.Request().URL.Path, prefix) {
						limit = cfg.Images.MaxUploadSizeBytes
						break
					}
				}

				if c.Request().ContentLength > limit {
					return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Error:     "request_too_large",
						Message:   "Request body too large",
						RequestID: requestID,
						Timestamp: time.Now(),
					})
				}
			}

			return next(c)
		}
	}
}
