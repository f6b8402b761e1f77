package export

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/internal/logging/types"
)

// A4 paper dimensions in inches, as expected by the print protocol
const (
	paperWidthA4  = 8.27
	paperHeightA4 = 11.69
)

// PDFRenderer prints HTML documents to PDF through a headless Chrome
// instance. The browser launches lazily on first use and is reused across
// renders.
type PDFRenderer struct {
	config   *config.Config
	logger   types.Logger
	mu       sync.Mutex
	launcher *launcher.Launcher
	browser  *rod.Browser
}

// NewPDFRenderer creates a PDF renderer. No browser is launched until the
// first render request.
func NewPDFRenderer(cfg *config.Config) *PDFRenderer {
	return &PDFRenderer{
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Render loads the given URL (typically a file:// path to a prepared HTML
// document) and returns the printed PDF bytes.
func (r *PDFRenderer) Render(ctx context.Context, url string) ([]byte, error) {
	browser, err := r.connect()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConversion, err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open page: %v", ErrConversion, err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: page load failed: %v", ErrConversion, err)
	}

	paperWidth := paperWidthA4
	paperHeight := paperHeightA4
	printBackground := true

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: printBackground,
		PaperWidth:      &paperWidth,
		PaperHeight:     &paperHeight,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: print to pdf failed: %v", ErrConversion, err)
	}

	pdf, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read pdf stream: %v", ErrConversion, err)
	}

	r.logger.Info("PDF rendered", map[string]interface{}{
		"bytes": len(pdf),
	})

	return pdf, nil
}

// connect launches and connects the headless browser on first use
func (r *PDFRenderer) connect() (*rod.Browser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser != nil {
		return r.browser, nil
	}

	l := launcher.New().
		Headless(true).
		NoSandbox(true).
		Set("disable-gpu").
		Set("disable-dev-shm-usage")

	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	r.launcher = l
	r.browser = browser
	r.logger.Info("Headless browser started for PDF rendering")
	return browser, nil
}

// Close shuts down the browser if one was launched
func (r *PDFRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser == nil {
		return nil
	}

	err := r.browser.Close()
	r.launcher.Cleanup()
	r.browser = nil
	r.launcher = nil
	return err
}
