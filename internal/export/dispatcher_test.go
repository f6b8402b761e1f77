package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Export.TempDir = t.TempDir()
	cfg.Export.PandocPath = "pandoc"
	cfg.Export.Timeout = 30 * time.Second
	return cfg
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"pdf", "docx", "pptx", "md", "html"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, Format(s), f)
	}

	_, err := ParseFormat("odt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExportMarkdownWritesContentVerbatim(t *testing.T) {
	d := NewDispatcher(testConfig(t), nil)
	out := filepath.Join(t.TempDir(), "resume.md")

	require.NoError(t, d.Export(context.Background(), "# Title", "md", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "# Title", string(data))
}

func TestExportHTMLWrapsFragmentInPrintShell(t *testing.T) {
	d := NewDispatcher(testConfig(t), nil)
	out := filepath.Join(t.TempDir(), "resume.html")

	fragment := `<div class="resume"><h1>Jane Doe</h1></div>`
	require.NoError(t, d.Export(context.Background(), fragment, "html", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	html := string(data)
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "@page { size: A4;")
	assert.Contains(t, html, fragment)
}

func TestExportHTMLDoesNotNestFullDocuments(t *testing.T) {
	d := NewDispatcher(testConfig(t), nil)
	out := filepath.Join(t.TempDir(), "resume.html")

	full := "<!DOCTYPE html><html><head><title>x</title></head><body><div><h1>Jane</h1></div></body></html>"
	require.NoError(t, d.Export(context.Background(), full, "html", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "<!DOCTYPE html>"))
	assert.Contains(t, string(data), "<h1>Jane</h1>")
}

func TestExportUnsupportedFormatBeforeFilesystemWork(t *testing.T) {
	d := NewDispatcher(testConfig(t), nil)
	dir := filepath.Join(t.TempDir(), "never-created")
	out := filepath.Join(dir, "resume.odt")

	err := d.Export(context.Background(), "content", "odt", out)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExportCreatesMissingOutputDirectories(t *testing.T) {
	d := NewDispatcher(testConfig(t), nil)
	out := filepath.Join(t.TempDir(), "a", "b", "resume.md")

	require.NoError(t, d.Export(context.Background(), "# Deep", "md", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "# Deep", string(data))
}

func TestExportPDFWithoutRendererFails(t *testing.T) {
	d := NewDispatcher(testConfig(t), nil)
	out := filepath.Join(t.TempDir(), "resume.pdf")

	err := d.Export(context.Background(), "<p>x</p>", "pdf", out)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConversion)
}

func TestContentTypes(t *testing.T) {
	assert.Equal(t, "application/pdf", FormatPDF.ContentType())
	assert.Equal(t, "text/markdown; charset=utf-8", FormatMD.ContentType())
	assert.Contains(t, FormatDOCX.ContentType(), "wordprocessingml")
	assert.Contains(t, FormatPPTX.ContentType(), "presentationml")
	assert.Contains(t, FormatHTML.ContentType(), "text/html")
}
