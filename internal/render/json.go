package render

import (
	"encoding/json"
	"io"

	"github.com/Abraxas-365/sift/analysis"
)

// JSONRenderer writes the combined profile and ATS report as indented JSON
type JSONRenderer struct{}

func (r *JSONRenderer) Extension() string { return "json" }

func (r *JSONRenderer) Render(w io.Writer, profile *analysis.Profile, ats *analysis.ATSReport) error {
	payload := analysis.AnalyzeResponse{Profile: profile.Response()}
	if ats != nil {
		payload.ATS = *ats
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
