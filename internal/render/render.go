// Package render writes finished analyses to an output stream. Each renderer
// is a read-only consumer of the sealed profile and the ATS report.
package render

import (
	"fmt"
	"sort"

	"github.com/Abraxas-365/sift/analysis"
)

// For returns the renderer for a format name: text, json or html
func For(format string) (analysis.Renderer, error) {
	switch format {
	case "text":
		return &TextRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	case "html":
		return &HTMLRenderer{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (expected text, json or html)", format)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
