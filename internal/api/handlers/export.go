package handlers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/config"
	"resumeforge/internal/export"
	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// ExportHandler handles POST /api/v1/export. The converted file is staged
// under the export temp dir, streamed back as an attachment, and removed
// afterwards.
func ExportHandler(cfg *config.Config, dispatcher *export.Dispatcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestIDFrom(c)
		logger := logging.GetGlobalLogger()

		var req models.ExportRequest
		if err := c.Bind(&req); err != nil {
			return errorResponse(c, requestID, "invalid_request", utils.NewBadRequestError("Invalid request body: "+err.Error()))
		}

		if err := requestValidator.Struct(&req); err != nil {
			return errorResponse(c, requestID, "validation_failed", utils.NewValidationError(err.Error()))
		}

		format, err := export.ParseFormat(req.Format)
		if err != nil {
			return errorResponse(c, requestID, "unsupported_format", utils.NewUnsupportedFormatError(
				fmt.Sprintf("format %q is not supported; use one of %v", req.Format, export.SupportedFormats())))
		}

		filename := utils.SanitizeFilename(utils.GetStringOrDefault(req.Filename, "resume"))
		outputPath := filepath.Join(cfg.Export.TempDir,
			fmt.Sprintf("%s-%s.%s", filename, requestID, format))
		defer os.Remove(outputPath)

		if err := dispatcher.Export(c.Request().Context(), req.Content, req.Format, outputPath); err != nil {
			logger.Error("Document export failed", map[string]interface{}{
				"request_id": requestID,
				"format":     req.Format,
				"error":      err.Error(),
			})

			if errors.Is(err, export.ErrUnsupportedFormat) {
				return errorResponse(c, requestID, "unsupported_format", utils.NewUnsupportedFormatError(err.Error()))
			}
			return errorResponse(c, requestID, "conversion_failed", utils.NewConversionError(err.Error()))
		}

		c.Response().Header().Set(echo.HeaderContentType, format.ContentType())
		return c.Attachment(outputPath, fmt.Sprintf("%s.%s", filename, format))
	}
}
