package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupports(t *testing.T) {
	e := New()

	tests := []struct {
		filename string
		want     bool
	}{
		{"resume.pdf", true},
		{"resume.PDF", true},
		{"resume.docx", true},
		{"resume.txt", true},
		{"resume.md", true},
		{"resume.text", true},
		{"resume.doc", false},
		{"resume.png", false},
		{"resume", false},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, e.Supports(tt.filename), "filename %q", tt.filename)
	}
}

func TestExtract_PlainText(t *testing.T) {
	e := New()

	text, err := e.Extract(context.Background(), []byte("John Smith\njohn@example.com"), "resume.txt")
	require.NoError(t, err)
	assert.Equal(t, "John Smith\njohn@example.com", text)
}

func TestExtract_PlainTextStripsBOM(t *testing.T) {
	e := New()

	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Jane Doe")...)
	text, err := e.Extract(context.Background(), data, "resume.txt")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", text)
}

func TestExtract_UnsupportedExtension(t *testing.T) {
	e := New()

	_, err := e.Extract(context.Background(), []byte("x"), "resume.doc")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported file format")
}

func TestExtract_MalformedPDF(t *testing.T) {
	e := New()

	_, err := e.Extract(context.Background(), []byte("not a pdf"), "resume.pdf")
	assert.Error(t, err)
}

func TestExtract_CancelledContext(t *testing.T) {
	e := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Extract(ctx, []byte("text"), "resume.txt")
	assert.ErrorIs(t, err, context.Canceled)
}
