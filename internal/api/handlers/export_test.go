package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/config"
	"resumeforge/internal/export"
	"resumeforge/pkg/models"
)

func exportTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Export.TempDir = t.TempDir()
	cfg.Export.PandocPath = "pandoc"
	cfg.Export.Timeout = 30 * time.Second
	return cfg
}

func TestExportHandlerStreamsMarkdownAttachment(t *testing.T) {
	cfg := exportTestConfig(t)
	dispatcher := export.NewDispatcher(cfg, nil)

	c, rec := postJSON(t, `{"content":"# Title","format":"md","filename":"jane-resume"}`)
	require.NoError(t, ExportHandler(cfg, dispatcher)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, rec.Header().Get("Content-Disposition"), `jane-resume.md`)
	assert.Equal(t, "# Title", rec.Body.String())
}

func TestExportHandlerWrapsHTML(t *testing.T) {
	cfg := exportTestConfig(t)
	dispatcher := export.NewDispatcher(cfg, nil)

	c, rec := postJSON(t, `{"content":"<h1>Jane</h1>","format":"html"}`)
	require.NoError(t, ExportHandler(cfg, dispatcher)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")
	assert.Contains(t, rec.Body.String(), "<h1>Jane</h1>")
}

func TestExportHandlerRejectsUnsupportedFormat(t *testing.T) {
	cfg := exportTestConfig(t)
	dispatcher := export.NewDispatcher(cfg, nil)

	c, rec := postJSON(t, `{"content":"# Title","format":"odt"}`)
	require.NoError(t, ExportHandler(cfg, dispatcher)(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_failed", resp.Error)
}

func TestExportHandlerRequiresContent(t *testing.T) {
	cfg := exportTestConfig(t)
	dispatcher := export.NewDispatcher(cfg, nil)

	c, rec := postJSON(t, `{"format":"md"}`)
	require.NoError(t, ExportHandler(cfg, dispatcher)(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
