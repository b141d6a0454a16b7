package analysissrv

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Abraxas-365/sift/analysis"
	"github.com/Abraxas-365/sift/analysis/extract"
	"github.com/Abraxas-365/sift/analysis/score"
	"github.com/Abraxas-365/sift/analysis/vocabulary"
	"github.com/Abraxas-365/sift/pkg/kernel"
	"github.com/Abraxas-365/sift/pkg/logx"
	"github.com/Abraxas-365/sift/pkg/textx"
)

const DefaultFilename = "resume.txt"

// Service runs the full analysis pipeline: segmentation, extraction,
// scoring and the ATS report. One Service is safe for concurrent use; each
// analysis works on its own builder and reads only the shared vocabulary.
type Service struct {
	vocab     *vocabulary.Store
	extractor *extract.Extractor
	engine    *score.Engine
	decoder   analysis.TextExtractor
}

// Result bundles everything one analysis produces
type Result struct {
	Profile *analysis.Profile
	ATS     *analysis.ATSReport
}

// NewService creates the analysis service. The decoder may be nil when the
// caller only ever submits plain text.
func NewService(vocab *vocabulary.Store, decoder analysis.TextExtractor) *Service {
	return &Service{
		vocab:     vocab,
		extractor: extract.New(vocab),
		engine:    score.NewEngine(vocab),
		decoder:   decoder,
	}
}

// AnalyzeText analyzes one decoded resume text. Extraction never fails:
// empty or unrecognizable input yields a low-information profile with zero
// scores and generic recommendations, not an error.
func (s *Service) AnalyzeText(ctx context.Context, text, filename string) (*Result, error) {
	if filename == "" {
		filename = DefaultFilename
	}
	logx.Infof("Analyzing resume text: %s (%d bytes)", filename, len(text))

	cleaned := textx.Clean(text)

	b := analysis.NewBuilder(kernel.NewAnalysisID(uuid.NewString()), cleaned, filename)
	s.extractor.Apply(cleaned, b)
	s.engine.Apply(b)

	profile := b.Seal()
	ats := s.engine.ATS(profile)

	logx.Infof("Analysis complete: %s overall=%.1f ats=%.1f", filename, profile.Scores.Overall, ats.ATSScore)
	return &Result{Profile: profile, ATS: ats}, nil
}

// AnalyzeDocument decodes a binary resume container and analyzes the
// extracted text
func (s *Service) AnalyzeDocument(ctx context.Context, data []byte, filename string) (*Result, error) {
	if s.decoder == nil || !s.decoder.Supports(filename) {
		return nil, analysis.ErrInvalidFileFormat().WithDetail("filename", filename)
	}

	text, err := s.decoder.Extract(ctx, data, filename)
	if err != nil {
		return nil, analysis.ErrRegistry.NewWithCause(analysis.CodeExtractionFailed, err).
			WithDetail("filename", filename)
	}
	if strings.TrimSpace(text) == "" {
		logx.Warnf("Decoded %s but found no text content", filename)
	}

	return s.AnalyzeText(ctx, text, filename)
}
