// Package extract turns raw resume text into structured profile fields.
// Every extractor is a best-effort pattern chain: strategies are tried in a
// fixed order, the first match wins, and a miss leaves the field unset
// rather than failing the pipeline.
package extract

import (
	"github.com/Abraxas-365/sift/analysis"
	"github.com/Abraxas-365/sift/analysis/segment"
	"github.com/Abraxas-365/sift/analysis/vocabulary"
)

// Extractor runs the full extraction pass over one resume text
type Extractor struct {
	vocab *vocabulary.Store
	seg   *segment.Segmenter
}

// New creates an Extractor bound to a vocabulary
func New(vocab *vocabulary.Store) *Extractor {
	return &Extractor{
		vocab: vocab,
		seg:   segment.NewSegmenter(vocab.SectionHeaders, vocab.CommonHeaders),
	}
}

// Apply runs every extractor against the text and records the results on the
// builder. Order matters only for readability; extractors are independent.
func (e *Extractor) Apply(text string, b *analysis.Builder) {
	e.Contact(text, b)
	e.Summary(text, b)
	e.Skills(text, b)
	e.Experience(text, b)
	e.Education(text, b)
	e.Projects(text, b)
	e.Certifications(text, b)
	e.Languages(text, b)
}
