package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractHTMLFencedBlock(t *testing.T) {
	raw := "Here is your resume:\n```html\n<div class=\"resume\"><h1>Jane</h1></div>\n```\nLet me know if you need changes."
	assert.Equal(t, `<div class="resume"><h1>Jane</h1></div>`, ExtractHTML(raw))
}

func TestExtractHTMLGenericFence(t *testing.T) {
	raw := "```\n<p>Hello</p>\n```"
	assert.Equal(t, "<p>Hello</p>", ExtractHTML(raw))
}

func TestExtractHTMLGenericFenceWithLanguageTag(t *testing.T) {
	raw := "```html\n<p>Hello</p>\n```"
	assert.Equal(t, "<p>Hello</p>", ExtractHTML(raw))
}

func TestExtractHTMLNoFence(t *testing.T) {
	raw := "  <div><h1>Plain</h1></div>\n"
	assert.Equal(t, "<div><h1>Plain</h1></div>", ExtractHTML(raw))
}

func TestExtractHTMLPreservesInnerBackticks(t *testing.T) {
	raw := "```html\n<p>Use `go build` daily</p>\n```"
	assert.Equal(t, "<p>Use `go build` daily</p>", ExtractHTML(raw))
}

func TestExtractHTMLEmptyInput(t *testing.T) {
	assert.Equal(t, "", ExtractHTML(""))
	assert.Equal(t, "", ExtractHTML("   \n  "))
}
