package models

// ResumeCreateRequest represents a request to generate a new resume
type ResumeCreateRequest struct {
	Name     string            `json:"name" validate:"required,min=1,max=200"`
	Position string            `json:"position" validate:"required,min=1,max=200"`
	Fields   map[string]string `json:"fields,omitempty"`
}

// ResumeUpdateRequest represents a request to rework an existing resume
type ResumeUpdateRequest struct {
	Name            string            `json:"name" validate:"required,min=1,max=200"`
	Position        string            `json:"position" validate:"required,min=1,max=200"`
	Fields          map[string]string `json:"fields,omitempty"`
	ExistingContent string            `json:"existing_content" validate:"required"`
	Instructions    string            `json:"instructions,omitempty"`
}

// ImageSearchRequest asks for a stock photo matching a description
type ImageSearchRequest struct {
	Query         string `json:"query" validate:"required,min=1,max=500"`
	PlaceholderID string `json:"placeholder_id" validate:"required,min=1,max=100"`
}

// ImageGenerateRequest asks for an AI-generated image from a text prompt
type ImageGenerateRequest struct {
	Prompt        string `json:"prompt" validate:"required,min=1,max=1000"`
	PlaceholderID string `json:"placeholder_id" validate:"required,min=1,max=100"`
}

// ResolveRequest substitutes resolved images into a document's placeholders
type ResolveRequest struct {
	Content string            `json:"content" validate:"required"`
	Images  map[string]string `json:"images" validate:"required"`
}

// ExportRequest converts a document into a downloadable file format
type ExportRequest struct {
	Content  string `json:"content" validate:"required"`
	Format   string `json:"format" validate:"required,oneof=pdf docx pptx md html"`
	Filename string `json:"filename,omitempty" validate:"omitempty,max=200"`
}
