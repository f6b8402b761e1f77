package handlers

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/images"
	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// ImageUploadHandler handles POST /api/v1/image/upload. The request is
// multipart form data with an "image" file and a "placeholder_id" field.
func ImageUploadHandler(svc *images.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestIDFrom(c)
		logger := logging.GetGlobalLogger()

		placeholderID := c.FormValue("placeholder_id")
		if placeholderID == "" {
			return errorResponse(c, requestID, "validation_failed", utils.NewValidationError("placeholder_id is required"))
		}

		fileHeader, err := c.FormFile("image")
		if err != nil {
			return errorResponse(c, requestID, "validation_failed", utils.NewValidationError("image file is required"))
		}

		file, err := fileHeader.Open()
		if err != nil {
			return errorResponse(c, requestID, "invalid_request", utils.NewBadRequestError("failed to open uploaded file: "+err.Error()))
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return errorResponse(c, requestID, "invalid_request", utils.NewBadRequestError("failed to read uploaded file: "+err.Error()))
		}

		resp, err := svc.Upload(data, placeholderID)
		if err != nil {
			logger.Warn("Image upload rejected", map[string]interface{}{
				"request_id":     requestID,
				"placeholder_id": placeholderID,
				"error":          err.Error(),
			})
			return errorResponse(c, requestID, "invalid_image", utils.NewImageDecodeError(err.Error()))
		}

		return c.JSON(http.StatusOK, resp)
	}
}

// ImageSearchHandler handles POST /api/v1/image/search. Search never fails
// outright: a missing key or empty result substitutes a placeholder image.
func ImageSearchHandler(svc *images.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestIDFrom(c)

		var req models.ImageSearchRequest
		if err := c.Bind(&req); err != nil {
			return errorResponse(c, requestID, "invalid_request", utils.NewBadRequestError("Invalid request body: "+err.Error()))
		}

		if err := requestValidator.Struct(&req); err != nil {
			return errorResponse(c, requestID, "validation_failed", utils.NewValidationError(err.Error()))
		}

		resp := svc.Search(c.Request().Context(), req.Query, req.PlaceholderID)
		return c.JSON(http.StatusOK, resp)
	}
}

// ImageGenerateHandler handles POST /api/v1/image/generate
func ImageGenerateHandler(svc *images.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestIDFrom(c)

		var req models.ImageGenerateRequest
		if err := c.Bind(&req); err != nil {
			return errorResponse(c, requestID, "invalid_request", utils.NewBadRequestError("Invalid request body: "+err.Error()))
		}

		if err := requestValidator.Struct(&req); err != nil {
			return errorResponse(c, requestID, "validation_failed", utils.NewValidationError(err.Error()))
		}

		resp := svc.Generate(c.Request().Context(), req.Prompt, req.PlaceholderID)
		return c.JSON(http.StatusOK, resp)
	}
}
