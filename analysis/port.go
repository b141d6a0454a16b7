package analysis

import (
	"context"
	"io"
)

// TextExtractor decodes a binary resume container into plain Unicode text.
// Implementations live outside the core (internal/extract); the core only
// ever sees the decoded blob.
type TextExtractor interface {
	// Extract decodes the file contents into plain text
	Extract(ctx context.Context, data []byte, filename string) (string, error)

	// Supports reports whether the extractor can decode the given filename
	Supports(filename string) bool
}

// Renderer writes a finished analysis to an output stream in one
// presentation format (text, json, html). Renderers are read-only consumers
// of the sealed profile.
type Renderer interface {
	// Render writes the report for the given profile and ATS analysis
	Render(w io.Writer, profile *Profile, ats *ATSReport) error

	// Extension returns the file extension for this format (without dot)
	Extension() string
}
