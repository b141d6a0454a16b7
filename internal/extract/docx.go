package extract

import (
	"bytes"
	"fmt"
	"html"
	"regexp"

	"github.com/nguyenthenguyen/docx"
)

var (
	docxParaRe  = regexp.MustCompile(`</w:p>`)
	docxBreakRe = regexp.MustCompile(`<w:(?:br|tab)[^>]*/?>`)
	docxTagRe   = regexp.MustCompile(`<[^>]+>`)
)

// extractDOCX decodes a .docx container. The library exposes the raw
// document XML, so paragraph and break markers are turned into newlines
// before stripping the remaining markup.
func extractDOCX(data []byte) (string, error) {
	reader, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer reader.Close()

	content := reader.Editable().GetContent()

	content = docxParaRe.ReplaceAllString(content, "\n")
	content = docxBreakRe.ReplaceAllString(content, "\n")
	content = docxTagRe.ReplaceAllString(content, "")

	return html.UnescapeString(content), nil
}
