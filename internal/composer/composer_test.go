package composer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/pkg/models"
)

type stubGenerator struct {
	response string
	err      error
	prompt   string
}

func (s *stubGenerator) GenerateResume(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

func TestCreateExtractsPlaceholders(t *testing.T) {
	gen := &stubGenerator{
		response: "```html\n<div><img src=\"image:profile_photo\" alt=\"Headshot of Jane\"><h1>Jane Doe</h1></div>\n```",
	}

	result, err := New(gen).Create(context.Background(), &models.ResumeCreateRequest{
		Name:     "Jane Doe",
		Position: "Software Engineer",
	})

	require.NoError(t, err)
	assert.Equal(t, `<div><img src="image:profile_photo" alt="Headshot of Jane"><h1>Jane Doe</h1></div>`, result.Content)
	require.Equal(t, 1, result.Placeholders.Len())
	desc, ok := result.Placeholders.Get("profile_photo")
	require.True(t, ok)
	assert.Equal(t, "Headshot of Jane", desc)
}

func TestCreatePromptCarriesCandidateFields(t *testing.T) {
	gen := &stubGenerator{response: "<div><h1>Jane</h1></div>"}

	_, err := New(gen).Create(context.Background(), &models.ResumeCreateRequest{
		Name:     "Jane Doe",
		Position: "Software Engineer",
		Fields:   map[string]string{"skills": "Go, SQL", "education": "BSc"},
	})

	require.NoError(t, err)
	assert.Contains(t, gen.prompt, "Name: Jane Doe")
	assert.Contains(t, gen.prompt, "Position: Software Engineer")
	assert.Contains(t, gen.prompt, "skills: Go, SQL")
	// Fields render in sorted key order.
	assert.Less(t, strings.Index(gen.prompt, "education:"), strings.Index(gen.prompt, "skills:"))
}

func TestUpdateEmbedsExistingContent(t *testing.T) {
	gen := &stubGenerator{response: "<div><h1>Jane</h1><p>Staff Engineer</p></div>"}

	result, err := New(gen).Update(context.Background(), &models.ResumeUpdateRequest{
		Name:            "Jane Doe",
		Position:        "Staff Engineer",
		ExistingContent: `<div><h1>Jane</h1><p>Senior Engineer</p></div>`,
		Instructions:    "Promote the title to Staff Engineer",
	})

	require.NoError(t, err)
	assert.Contains(t, gen.prompt, "<p>Senior Engineer</p>")
	assert.Contains(t, gen.prompt, "Promote the title to Staff Engineer")
	assert.Equal(t, "<div><h1>Jane</h1><p>Staff Engineer</p></div>", result.Content)
}

func TestGenerateWrapsProviderError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("api unreachable")}

	_, err := New(gen).Create(context.Background(), &models.ResumeCreateRequest{
		Name:     "Jane Doe",
		Position: "Engineer",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "api unreachable")
}

func TestGenerateRejectsEmptyCompletion(t *testing.T) {
	gen := &stubGenerator{response: "   \n"}

	_, err := New(gen).Create(context.Background(), &models.ResumeCreateRequest{
		Name:     "Jane Doe",
		Position: "Engineer",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty content")
}

func TestGenerateDeduplicatesPlaceholderIDs(t *testing.T) {
	gen := &stubGenerator{
		response: `<div><img src="image:pic" alt="first"><img src="image:pic" alt="second"></div>`,
	}

	result, err := New(gen).Create(context.Background(), &models.ResumeCreateRequest{
		Name:     "Jane Doe",
		Position: "Engineer",
	})

	require.NoError(t, err)
	require.Equal(t, 1, result.Placeholders.Len())
	desc, _ := result.Placeholders.Get("pic")
	assert.Equal(t, "first", desc)
	assert.Equal(t, []string{"pic"}, result.Placeholders.Duplicates())
}
