// Package export converts resume documents into downloadable files. The
// canonical input is HTML; pdf goes through headless Chrome, docx and pptx
// through pandoc, and md/html are written directly.
package export

import (
	"errors"
	"fmt"
)

// Sentinel errors to allow precise mapping in handlers
var (
	ErrUnsupportedFormat = errors.New("unsupported_format")
	ErrConversion        = errors.New("conversion_error")
)

// Format is a supported export target
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatPPTX Format = "pptx"
	FormatMD   Format = "md"
	FormatHTML Format = "html"
)

// ParseFormat validates a format string. It is checked before any
// filesystem work so a bad format never leaves artifacts behind.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPDF, FormatDOCX, FormatPPTX, FormatMD, FormatHTML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// SupportedFormats lists the accepted export targets
func SupportedFormats() []string {
	return []string{"pdf", "docx", "pptx", "md", "html"}
}

// ContentType returns the MIME type for a format
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatPPTX:
		return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	case FormatMD:
		return "text/markdown; charset=utf-8"
	default:
		return "text/html; charset=utf-8"
	}
}
