package llm

import (
	"context"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateResume sends a fully built prompt to the model and returns the
	// raw text of the first completion
	GenerateResume(ctx context.Context, prompt string) (string, error)

	// IsHealthy checks if the LLM provider is healthy and available
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the LLM provider
	GetProviderName() string
}

// Generator is the narrow surface the document composer depends on
type Generator interface {
	GenerateResume(ctx context.Context, prompt string) (string, error)
}
