// Package composer orchestrates resume drafting: it builds the prompt,
// calls the model, strips code fences, and indexes image placeholders.
package composer

import (
	"context"
	"fmt"

	"resumeforge/internal/llm"
	"resumeforge/internal/llm/processors"
	"resumeforge/internal/llm/prompts"
	"resumeforge/internal/logging"
	"resumeforge/internal/logging/types"
	"resumeforge/internal/placeholder"
	"resumeforge/pkg/models"
)

// Result is a drafted document with its placeholder index
type Result struct {
	Content      string
	Placeholders *placeholder.Map
}

// Composer turns structured candidate data into resume markup
type Composer struct {
	generator llm.Generator
	logger    types.Logger
}

// New creates a composer backed by the given generator
func New(generator llm.Generator) *Composer {
	return &Composer{
		generator: generator,
		logger:    logging.GetGlobalLogger(),
	}
}

// Create drafts a fresh resume from structured candidate data
func (c *Composer) Create(ctx context.Context, req *models.ResumeCreateRequest) (*Result, error) {
	prompt := prompts.BuildCreatePrompt(req.Name, req.Position, req.Fields)
	return c.generate(ctx, prompt)
}

// Update reworks an existing resume, preserving its placeholders
func (c *Composer) Update(ctx context.Context, req *models.ResumeUpdateRequest) (*Result, error) {
	prompt := prompts.BuildUpdatePrompt(req.Name, req.Position, req.Fields, req.ExistingContent, req.Instructions)
	return c.generate(ctx, prompt)
}

func (c *Composer) generate(ctx context.Context, prompt string) (*Result, error) {
	raw, err := c.generator.GenerateResume(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("resume generation failed: %w", err)
	}

	content := processors.ExtractHTML(raw)
	if content == "" {
		return nil, fmt.Errorf("resume generation returned empty content")
	}

	placeholders := placeholder.Extract(content)
	if dups := placeholders.Duplicates(); len(dups) > 0 {
		c.logger.Warn("Model emitted duplicate placeholder ids; keeping first occurrence of each", map[string]interface{}{
			"duplicates": dups,
		})
	}

	c.logger.Info("Resume drafted", map[string]interface{}{
		"content_length": len(content),
		"placeholders":   placeholders.Len(),
	})

	return &Result{
		Content:      content,
		Placeholders: placeholders,
	}, nil
}
