package utils

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *CustomError
		code int
	}{
		{"bad request", NewBadRequestError("malformed body"), http.StatusBadRequest},
		{"validation", NewValidationError("name is required"), http.StatusBadRequest},
		{"llm", NewLLMError("upstream timeout"), http.StatusBadGateway},
		{"unsupported format", NewUnsupportedFormatError("format \"xls\""), http.StatusBadRequest},
		{"conversion", NewConversionError("pandoc exited 1"), http.StatusInternalServerError},
		{"image decode", NewImageDecodeError("not a PNG"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestCustomErrorMessageIncludesDetail(t *testing.T) {
	err := NewLLMError("connection refused")
	assert.Equal(t, "Resume generation failed: connection refused", err.Error())
}

func TestCustomErrorMessageWithoutDetail(t *testing.T) {
	err := NewBadRequestError("Invalid request body")
	assert.Equal(t, "Invalid request body", err.Error())
}
