// Package extract decodes binary resume containers into plain text. It is
// the only component that knows about file formats; the analysis core works
// on decoded text exclusively.
package extract

import (
	"context"
	"path/filepath"
	"strings"
)

// Extractor dispatches on file extension to a per-format decoder. It
// implements the analysis.TextExtractor port.
type Extractor struct{}

// New creates the document extractor
func New() *Extractor {
	return &Extractor{}
}

// Supports reports whether the filename carries a decodable extension
func (e *Extractor) Supports(filename string) bool {
	switch ext(filename) {
	case ".pdf", ".docx", ".txt", ".md", ".text":
		return true
	}
	return false
}

// Extract decodes the file contents into plain text
func (e *Extractor) Extract(ctx context.Context, data []byte, filename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch ext(filename) {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDOCX(data)
	case ".txt", ".md", ".text":
		return extractPlainText(data), nil
	}
	return "", &UnsupportedFormatError{Filename: filename}
}

// UnsupportedFormatError signals an extension no decoder handles
type UnsupportedFormatError struct {
	Filename string
}

func (e *UnsupportedFormatError) Error() string {
	return "unsupported file format: " + e.Filename
}

func ext(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
