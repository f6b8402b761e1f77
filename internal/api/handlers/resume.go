package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"resumeforge/internal/composer"
	"resumeforge/internal/logging"
	"resumeforge/internal/placeholder"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

var requestValidator = validator.New()

// CreateResumeHandler handles POST /api/v1/resume
func CreateResumeHandler(comp *composer.Composer) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestIDFrom(c)
		logger := logging.GetGlobalLogger()
		startTime := time.Now()

		var req models.ResumeCreateRequest
		if err := c.Bind(&req); err != nil {
			return errorResponse(c, requestID, "invalid_request", utils.NewBadRequestError("Invalid request body: "+err.Error()))
		}

		if err := requestValidator.Struct(&req); err != nil {
			return errorResponse(c, requestID, "validation_failed", utils.NewValidationError(err.Error()))
		}

		logger.Info("Processing resume creation request", map[string]interface{}{
			"request_id": requestID,
			"name":       req.Name,
			"position":   req.Position,
		})

		result, err := comp.Create(c.Request().Context(), &req)
		if err != nil {
			logger.Error("Resume creation failed", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return errorResponse(c, requestID, "generation_failed", utils.NewLLMError(err.Error()))
		}

		return c.JSON(http.StatusOK, resumeResponse(result, requestID, startTime))
	}
}

// UpdateResumeHandler handles POST /api/v1/resume/update
func UpdateResumeHandler(comp *composer.Composer) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestIDFrom(c)
		logger := logging.GetGlobalLogger()
		startTime := time.Now()

		var req models.ResumeUpdateRequest
		if err := c.Bind(&req); err != nil {
			return errorResponse(c, requestID, "invalid_request", utils.NewBadRequestError("Invalid request body: "+err.Error()))
		}

		if err := requestValidator.Struct(&req); err != nil {
			return errorResponse(c, requestID, "validation_failed", utils.NewValidationError(err.Error()))
		}

		logger.Info("Processing resume update request", map[string]interface{}{
			"request_id":     requestID,
			"name":           req.Name,
			"content_length": len(req.ExistingContent),
		})

		result, err := comp.Update(c.Request().Context(), &req)
		if err != nil {
			logger.Error("Resume update failed", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return errorResponse(c, requestID, "generation_failed", utils.NewLLMError(err.Error()))
		}

		return c.JSON(http.StatusOK, resumeResponse(result, requestID, startTime))
	}
}

// ResolveResumeHandler handles POST /api/v1/resume/resolve. It substitutes
// resolved image references into the document's placeholders; unmatched
// placeholders pass through untouched.
func ResolveResumeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestIDFrom(c)
		logger := logging.GetGlobalLogger()

		var req models.ResolveRequest
		if err := c.Bind(&req); err != nil {
			return errorResponse(c, requestID, "invalid_request", utils.NewBadRequestError("Invalid request body: "+err.Error()))
		}

		if err := requestValidator.Struct(&req); err != nil {
			return errorResponse(c, requestID, "validation_failed", utils.NewValidationError(err.Error()))
		}

		before := placeholder.Extract(req.Content).Len()
		resolved := placeholder.Resolve(req.Content, req.Images)
		after := placeholder.Extract(resolved).Len()

		logger.Info("Placeholders resolved", map[string]interface{}{
			"request_id": requestID,
			"resolved":   before - after,
			"remaining":  after,
		})

		return c.JSON(http.StatusOK, models.ResolveResponse{
			Content:  resolved,
			Resolved: before - after,
		})
	}
}

func resumeResponse(result *composer.Result, requestID string, startTime time.Time) models.ResumeResponse {
	return models.ResumeResponse{
		Content:        result.Content,
		Placeholders:   result.Placeholders,
		ProcessingTime: time.Since(startTime),
		RequestID:      requestID,
	}
}

func requestIDFrom(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}

// errorResponse maps a CustomError from the taxonomy onto the uniform
// error body; the error's own code decides the HTTP status.
func errorResponse(c echo.Context, requestID, code string, cerr *utils.CustomError) error {
	return c.JSON(cerr.Code, models.ErrorResponse{
		Error:     code,
		Message:   cerr.Error(),
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}
