package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/internal/logging/types"
)

// Dispatcher routes export requests to the right conversion backend
type Dispatcher struct {
	config *config.Config
	logger types.Logger
	pdf    *PDFRenderer
}

// NewDispatcher creates an export dispatcher. The PDF renderer may be nil
// when PDF export is not needed (tests, tooling).
func NewDispatcher(cfg *config.Config, pdf *PDFRenderer) *Dispatcher {
	return &Dispatcher{
		config: cfg,
		logger: logging.GetGlobalLogger(),
		pdf:    pdf,
	}
}

// Export converts content to the requested format and writes it to
// outputPath. The format is validated before any filesystem work; md is
// written verbatim, html gains the print shell, and the binary formats go
// through their converters with temp files cleaned up on every path.
func (d *Dispatcher) Export(ctx context.Context, content, format, outputPath string) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: failed to create output directory: %v", ErrConversion, err)
		}
	}

	switch f {
	case FormatMD:
		if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
			return fmt.Errorf("%w: failed to write markdown: %v", ErrConversion, err)
		}
	case FormatHTML:
		if err := os.WriteFile(outputPath, []byte(wrapDocument(content)), 0644); err != nil {
			return fmt.Errorf("%w: failed to write html: %v", ErrConversion, err)
		}
	case FormatPDF:
		if err := d.exportPDF(ctx, content, outputPath); err != nil {
			return err
		}
	case FormatDOCX, FormatPPTX:
		if err := d.exportPandoc(ctx, content, outputPath, f); err != nil {
			return err
		}
	}

	d.logger.Info("Document exported", map[string]interface{}{
		"format": string(f),
		"output": outputPath,
	})
	return nil
}

func (d *Dispatcher) exportPDF(ctx context.Context, content, outputPath string) error {
	if d.pdf == nil {
		return fmt.Errorf("%w: pdf renderer not configured", ErrConversion)
	}

	htmlPath, cleanup, err := d.stageHTML(content)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(ctx, d.config.Export.Timeout)
	defer cancel()

	pdfBytes, err := d.pdf.Render(ctx, "file://"+htmlPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, pdfBytes, 0644); err != nil {
		return fmt.Errorf("%w: failed to write pdf: %v", ErrConversion, err)
	}
	return nil
}

func (d *Dispatcher) exportPandoc(ctx context.Context, content, outputPath string, f Format) error {
	htmlPath, cleanup, err := d.stageHTML(content)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(ctx, d.config.Export.Timeout)
	defer cancel()

	if err := runPandoc(ctx, d.config.Export.PandocPath, htmlPath, outputPath, f); err != nil {
		return fmt.Errorf("%w: %v", ErrConversion, err)
	}
	return nil
}

// stageHTML writes the wrapped document to a temp file for converters that
// read from disk. The returned cleanup always removes it.
func (d *Dispatcher) stageHTML(content string) (string, func(), error) {
	tmp, err := os.CreateTemp(d.config.Export.TempDir, "resume-export-*.html")
	if err != nil {
		return "", nil, fmt.Errorf("%w: failed to create temp file: %v", ErrConversion, err)
	}

	path := tmp.Name()
	cleanup := func() { _ = os.Remove(path) }

	if _, err := tmp.WriteString(wrapDocument(content)); err != nil {
		tmp.Close()
		cleanup()
		return "", nil, fmt.Errorf("%w: failed to write temp html: %v", ErrConversion, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("%w: failed to close temp html: %v", ErrConversion, err)
	}

	return path, cleanup, nil
}
