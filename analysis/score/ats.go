package score

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/Abraxas-365/sift/analysis"
	"github.com/Abraxas-365/sift/pkg/textx"
)

// Weights for the ATS overall score. Must sum to 1.0.
const (
	atsWeightKeyword      = 0.25
	atsWeightFormat       = 0.20
	atsWeightStructure    = 0.20
	atsWeightContent      = 0.20
	atsWeightCompleteness = 0.15
)

const (
	preferredWordsMin = 300
	preferredWordsMax = 700
	maxWords          = 1000
)

var (
	quantifierRe = regexp.MustCompile(`\b\d+%|\b\d+\+|\b\d+[km]?\+|\b\d+[km]?\b`)

	atsDateRes = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{4}\b`),
		regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}\b`),
		regexp.MustCompile(`\b\d{1,2}/\d{4}\b`),
	}

	atsSectionHeaders = []string{"experience", "education", "skills", "summary", "objective"}
)

// ATS runs the full compatibility analysis over a scored profile
func (e *Engine) ATS(p *analysis.Profile) *analysis.ATSReport {
	detailed := analysis.ATSDetailedScores{
		Keyword:      e.atsKeywordScore(p),
		Format:       e.atsFormatScore(p),
		Structure:    e.atsStructureScore(p),
		Content:      e.atsContentScore(p),
		Completeness: e.atsCompletenessScore(p),
	}

	report := &analysis.ATSReport{
		ATSScore: detailed.Keyword*atsWeightKeyword +
			detailed.Format*atsWeightFormat +
			detailed.Structure*atsWeightStructure +
			detailed.Content*atsWeightContent +
			detailed.Completeness*atsWeightCompleteness,
		DetailedScores:  detailed,
		KeywordDensity:  e.keywordDensity(p),
		Compliance:      e.formatCompliance(p),
		RedFlags:        e.redFlags(p),
		MissingElements: e.missingElements(p),
	}
	report.Recommendations = atsRecommendations(report)

	return report
}

// atsKeywordScore rewards vocabulary coverage: technical keywords carry
// half the weight, soft skills and industry terms the rest. Matching is
// plain substring on the lowered text.
func (e *Engine) atsKeywordScore(p *analysis.Profile) float64 {
	if p.RawText == "" {
		return 0.0
	}
	lower := strings.ToLower(p.RawText)

	score := categoryCoverage(lower, e.vocab.ATSKeywords["technical"], 5.0) +
		categoryCoverage(lower, e.vocab.ATSKeywords["soft"], 3.0) +
		categoryCoverage(lower, e.vocab.ATSKeywords["industry"], 2.0)

	return math.Min(10.0, score)
}

func categoryCoverage(lowerText string, keywords []string, maxPoints float64) float64 {
	if len(keywords) == 0 {
		return 0.0
	}
	found := 0
	for _, kw := range keywords {
		if strings.Contains(lowerText, kw) {
			found++
		}
	}
	return math.Min(maxPoints, (float64(found)/float64(len(keywords)))*maxPoints)
}

// atsFormatScore checks machine-readability cues: parseable text, word
// count in the preferred band, recognizable section headers, bullets and
// date tokens.
func (e *Engine) atsFormatScore(p *analysis.Profile) float64 {
	score := 2.0 // the text was decoded, so the container format is fine

	if p.RawText != "" {
		wordCount := textx.CalculateStats(p.RawText).WordCount
		switch {
		case wordCount >= preferredWordsMin && wordCount <= preferredWordsMax:
			score += 3.0
		case wordCount >= 200 && wordCount < preferredWordsMin:
			score += 2.0
		case wordCount > preferredWordsMax && wordCount <= maxWords:
			score += 2.0
		default:
			score += 1.0
		}
	}

	lower := strings.ToLower(p.RawText)
	found := 0
	for _, header := range atsSectionHeaders {
		if strings.Contains(lower, header) {
			found++
		}
	}
	score += math.Min(3.0, (float64(found)/float64(len(atsSectionHeaders)))*3.0)

	if p.RawText != "" {
		if strings.ContainsAny(p.RawText, "•-*") {
			score += 1.0
		}
		for _, re := range atsDateRes {
			if re.MatchString(p.RawText) {
				score += 1.0
				break
			}
		}
	}

	return math.Min(10.0, score)
}

// atsStructureScore checks the skeleton: essential sections present,
// multiple dated positions, uniformly identified entries and enough
// content lines to read as a document.
func (e *Engine) atsStructureScore(p *analysis.Profile) float64 {
	score := 0.0

	sectionsFound := 0
	if p.Name != "" || p.Email != "" {
		sectionsFound++
	}
	if len(p.Experience) > 0 {
		sectionsFound++
	}
	if len(p.Education) > 0 {
		sectionsFound++
	}
	if len(p.Skills) > 0 {
		sectionsFound++
	}
	score += (float64(sectionsFound) / 4.0) * 4.0

	if len(p.Experience) > 1 {
		score += 2.0
	}

	if len(p.Experience) > 0 {
		uniform := true
		for _, exp := range p.Experience {
			if exp.Company == "" || exp.Title == "" {
				uniform = false
				break
			}
		}
		if uniform {
			score += 2.0
		}
	}

	if p.RawText != "" {
		contentLines := 0
		for _, line := range strings.Split(p.RawText, "\n") {
			if strings.TrimSpace(line) != "" {
				contentLines++
			}
		}
		if contentLines > 10 {
			score += 2.0
		}
	}

	return math.Min(10.0, score)
}

// atsContentScore rewards substance: quantified achievements, action
// verbs, a real summary and enough skills.
func (e *Engine) atsContentScore(p *analysis.Profile) float64 {
	score := 0.0

	if p.RawText != "" {
		quantifiers := quantifierRe.FindAllString(p.RawText, -1)
		if len(quantifiers) >= 3 {
			score += 3.0
		} else if len(quantifiers) >= 1 {
			score += 1.5
		}

		lower := strings.ToLower(p.RawText)
		found := 0
		for _, verb := range e.vocab.ActionVerbs {
			if strings.Contains(lower, verb) {
				found++
			}
		}
		if len(e.vocab.ActionVerbs) > 0 {
			score += math.Min(3.0, (float64(found)/float64(len(e.vocab.ActionVerbs)))*3.0)
		}
	}

	if len(p.Summary) > 50 {
		score += 2.0
	}

	if len(p.Skills) >= 5 {
		score += 2.0
	}

	return math.Min(10.0, score)
}

// atsCompletenessScore measures how fully each record is populated
func (e *Engine) atsCompletenessScore(p *analysis.Profile) float64 {
	score := 0.0

	contactFields := []string{p.Name, p.Email, p.Phone, p.Location}
	filled := 0
	for _, f := range contactFields {
		if f != "" {
			filled++
		}
	}
	score += (float64(filled) / float64(len(contactFields))) * 2.0

	if len(p.Experience) > 0 {
		completeness := 0.0
		for _, exp := range p.Experience {
			completeness += filledFraction(exp.Company, exp.Title, exp.StartDate, exp.EndDate)
		}
		score += (completeness / float64(len(p.Experience))) * 3.0
	}

	if len(p.Education) > 0 {
		completeness := 0.0
		for _, edu := range p.Education {
			completeness += filledFraction(edu.Institution, edu.Degree, edu.StartDate, edu.EndDate)
		}
		score += (completeness / float64(len(p.Education))) * 2.0
	}

	if len(p.Skills) >= 5 {
		score += 2.0
	} else if len(p.Skills) > 0 {
		score += 1.0
	}

	if len(p.Summary) > 100 {
		score += 1.0
	}

	return math.Min(10.0, score)
}

func filledFraction(fields ...string) float64 {
	filled := 0
	for _, f := range fields {
		if f != "" {
			filled++
		}
	}
	return float64(filled) / float64(len(fields))
}

// keywordDensity reports occurrence counts per matched vocabulary keyword,
// as a percentage of whitespace-separated tokens
func (e *Engine) keywordDensity(p *analysis.Profile) analysis.KeywordDensityReport {
	report := analysis.KeywordDensityReport{
		Technical: []analysis.KeywordDensity{},
		Soft:      []analysis.KeywordDensity{},
		Industry:  []analysis.KeywordDensity{},
	}
	if p.RawText == "" {
		return report
	}

	lower := strings.ToLower(p.RawText)
	wordCount := len(strings.Fields(lower))

	report.Technical = densityFor(lower, wordCount, e.vocab.ATSKeywords["technical"])
	report.Soft = densityFor(lower, wordCount, e.vocab.ATSKeywords["soft"])
	report.Industry = densityFor(lower, wordCount, e.vocab.ATSKeywords["industry"])
	return report
}

func densityFor(lowerText string, wordCount int, keywords []string) []analysis.KeywordDensity {
	out := []analysis.KeywordDensity{}
	for _, kw := range keywords {
		if !strings.Contains(lowerText, kw) {
			continue
		}
		count := strings.Count(lowerText, kw)
		density := 0.0
		if wordCount > 0 {
			density = math.Round((float64(count)/float64(wordCount))*100*100) / 100
		}
		out = append(out, analysis.KeywordDensity{
			Keyword:        kw,
			Count:          count,
			DensityPercent: density,
		})
	}
	return out
}

// formatCompliance reports coarse pass/fail flags about the input shape
func (e *Engine) formatCompliance(p *analysis.Profile) analysis.FormatCompliance {
	compliance := analysis.FormatCompliance{
		FileFormat:            true,
		FileSize:              true,
		TextLength:            "good",
		FontUsage:             "unknown",
		FormattingConsistency: "good",
	}

	if p.RawText != "" {
		wordCount := textx.CalculateStats(p.RawText).WordCount
		switch {
		case wordCount < preferredWordsMin:
			compliance.TextLength = "too_short"
		case wordCount > maxWords:
			compliance.TextLength = "too_long"
		default:
			compliance.TextLength = "good"
		}
	}

	return compliance
}

// redFlags lists vocabulary phrases present in the text that are known to
// hurt automated screening
func (e *Engine) redFlags(p *analysis.Profile) []string {
	flags := []string{}
	if p.RawText == "" {
		return flags
	}

	lower := strings.ToLower(p.RawText)
	for _, flag := range e.vocab.RedFlags {
		if strings.Contains(lower, flag) {
			flags = append(flags, fmt.Sprintf("Contains '%s' which may hurt ATS performance", flag))
		}
	}
	return flags
}

// missingElements lists profile gaps that lower screening performance
func (e *Engine) missingElements(p *analysis.Profile) []string {
	missing := []string{}

	if p.Name == "" {
		missing = append(missing, "Name")
	}
	if p.Email == "" {
		missing = append(missing, "Email address")
	}
	if p.Phone == "" {
		missing = append(missing, "Phone number")
	}
	if p.Location == "" {
		missing = append(missing, "Location")
	}
	if p.Summary == "" {
		missing = append(missing, "Professional summary")
	}
	if len(p.Skills) < 5 {
		missing = append(missing, "Sufficient skills (aim for 5+ relevant skills)")
	}
	if len(p.Experience) == 0 {
		missing = append(missing, "Work experience")
	}
	if len(p.Education) == 0 {
		missing = append(missing, "Education section")
	}

	return missing
}

// atsRecommendations turns low component scores and findings into advice,
// capped at eight entries in generation order
func atsRecommendations(report *analysis.ATSReport) []string {
	var recs []string

	if report.DetailedScores.Keyword < 6 {
		recs = append(recs,
			"Add more relevant keywords from job descriptions in your field",
			"Include both technical and soft skills keywords")
	}
	if report.DetailedScores.Format < 7 {
		recs = append(recs,
			"Use standard section headers (Experience, Education, Skills)",
			"Ensure consistent formatting throughout the document")
	}
	if report.DetailedScores.Structure < 7 {
		recs = append(recs,
			"Organize experience in reverse chronological order",
			"Use bullet points for better readability")
	}
	if report.DetailedScores.Content < 6 {
		recs = append(recs,
			"Quantify your achievements with specific numbers and percentages",
			"Use strong action verbs to describe your accomplishments")
	}
	if report.DetailedScores.Completeness < 7 {
		recs = append(recs,
			"Ensure all contact information is complete and professional",
			"Add detailed descriptions for each work experience")
	}
	if len(report.RedFlags) > 0 {
		recs = append(recs,
			"Remove any personal information not relevant to the job",
			"Avoid using 'References available upon request'")
	}
	if len(report.MissingElements) > 0 {
		head := report.MissingElements
		if len(head) > 3 {
			head = head[:3]
		}
		recs = append(recs, "Add missing elements: "+strings.Join(head, ", "))
	}

	if len(recs) > 8 {
		recs = recs[:8]
	}
	if recs == nil {
		recs = []string{}
	}
	return recs
}
