package models

import (
	"time"

	"resumeforge/internal/placeholder"
)

// ResumeResponse represents the result of resume generation. Placeholders
// serialize in document order.
type ResumeResponse struct {
	Content        string           `json:"content"`
	Placeholders   *placeholder.Map `json:"placeholders"`
	ProcessingTime time.Duration    `json:"processing_time"`
	RequestID      string           `json:"request_id"`
}

// ImageResponse carries a resolved image back to the caller. ImageData is
// either a data URI or a remote URL, ready to substitute into the document.
type ImageResponse struct {
	ImageData     string `json:"image_data"`
	PlaceholderID string `json:"placeholder_id"`
	Source        string `json:"source"`
	Attribution   string `json:"attribution,omitempty"`
}

// ResolveResponse returns the document with placeholders substituted
type ResolveResponse struct {
	Content  string `json:"content"`
	Resolved int    `json:"resolved"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
