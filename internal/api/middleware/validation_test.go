package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/config"
)

func middlewareConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Images.MaxUploadSizeBytes = 10 * 1024 * 1024
	return cfg
}

func runValidation(t *testing.T, path string, contentLength int64) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.ContentLength = contentLength
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestValidation(middlewareConfig())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec
}

func TestRequestValidationCapsDefaultEndpointsAt1MB(t *testing.T) {
	rec := runValidation(t, "/api/v1/image/search", 2*1024*1024)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRequestValidationAllowsLargeExportBodies(t *testing.T) {
	// A document with a few resolved image data URIs exceeds 1MB and must
	// still flow through export.
	rec := runValidation(t, "/api/v1/export", 1536*1024)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestValidationAllowsLargeResolveAndUpdateBodies(t *testing.T) {
	for _, path := range []string{"/api/v1/resume/resolve", "/api/v1/resume/update"} {
		rec := runValidation(t, path, 3*1024*1024)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRequestValidationStillCapsContentEndpointsAtUploadLimit(t *testing.T) {
	rec := runValidation(t, "/api/v1/export", 11*1024*1024)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRequestValidationSetsRequestID(t *testing.T) {
	rec := runValidation(t, "/api/v1/image/search", 100)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
