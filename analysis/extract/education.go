package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Abraxas-365/sift/analysis"
	"github.com/Abraxas-365/sift/analysis/segment"
)

var (
	fieldInDegreeRes = []*regexp.Regexp{
		regexp.MustCompile(`in\s+([A-Za-z\s]+)`),
		regexp.MustCompile(`of\s+([A-Za-z\s]+)`),
	}

	fieldIndicators = []string{"Major:", "Field:", "Concentration:", "Specialization:"}

	gpaRes = []*regexp.Regexp{
		regexp.MustCompile(`GPA:\s*(\d+\.\d+)`),
		regexp.MustCompile(`GPA\s+of\s+(\d+\.\d+)`),
		regexp.MustCompile(`(\d+\.\d+)\s+GPA`),
	}
)

// Education extracts education entries. Entries that never resolve an
// institution are dropped.
func (e *Extractor) Education(text string, b *analysis.Builder) {
	body, ok := e.seg.Section(text, "education")
	if !ok {
		return
	}

	for _, entry := range segment.SplitEntries(body) {
		institution, degree := e.institutionAndDegree(entry)
		if institution == "" {
			continue
		}

		start, end := extractDates(entry)

		b.AddEducation(analysis.EducationRecord{
			Institution: institution,
			Degree:      degree,
			Field:       fieldOfStudy(entry, degree),
			StartDate:   start,
			EndDate:     end,
			GPA:         extractGPA(entry),
			Location:    extractEntryLocation(entry),
			Description: educationDescription(entry),
		})
	}
}

// institutionAndDegree mirrors companyAndTitle for education entries, with
// one extra strategy: when the separators resolve nothing, any line
// containing a degree keyword is taken as the degree.
func (e *Extractor) institutionAndDegree(entry string) (string, string) {
	lines := strings.Split(entry, "\n")
	var institution, degree string

	for _, line := range headLines(lines, 3) {
		if left, right, ok := splitDash(line); ok {
			institution, degree = left, right
			break
		}
		if left, right, ok := splitAt(line); ok {
			degree, institution = left, right
			break
		}
		if left, right, ok := splitComma(line); ok {
			degree, institution = left, right
			break
		}
	}

	if institution == "" || degree == "" {
		first := strings.TrimSpace(lines[0])
		switch {
		case institution == "" && degree == "":
			institution = first
		case institution == "":
			if len(lines) > 1 {
				institution = strings.TrimSpace(lines[1])
			}
		case degree == "":
			if len(lines) > 1 {
				degree = strings.TrimSpace(lines[1])
			}
		}
	}

	if degree == "" {
		for _, line := range lines {
			if containsAnyKeyword(line, e.vocab.DegreeKeywords) {
				degree = strings.TrimSpace(line)
				break
			}
		}
	}

	return institution, degree
}

// fieldOfStudy looks for the field inside the degree ("Bachelor of Science
// in Computer Science"), then for labeled lines deeper in the entry.
func fieldOfStudy(entry, degree string) string {
	for _, re := range fieldInDegreeRes {
		if m := re.FindStringSubmatch(degree); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	lines := strings.Split(entry, "\n")
	start := 3
	if len(lines) < start {
		start = len(lines)
	}

	for _, raw := range lines[start:] {
		line := strings.TrimSpace(raw)
		for _, indicator := range fieldIndicators {
			if idx := strings.Index(line, indicator); idx != -1 {
				return strings.TrimSpace(line[idx+len(indicator):])
			}
		}
	}
	return ""
}

func extractGPA(entry string) *float64 {
	for _, re := range gpaRes {
		m := re.FindStringSubmatch(entry)
		if m == nil {
			continue
		}
		gpa, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return &gpa
	}
	return nil
}

// educationDescription collects the free-prose lines of an entry, skipping
// the leading identification lines, bullets and labeled GPA/field lines
func educationDescription(entry string) string {
	lines := strings.Split(entry, "\n")
	start := 3
	if len(lines) < start {
		start = len(lines)
	}

	skipLabels := append([]string{"GPA:"}, fieldIndicators...)

	var descriptionLines []string
	for _, raw := range lines[start:] {
		line := strings.TrimSpace(raw)
		if line == "" || isBulletLine(line) {
			continue
		}
		if containsAnyKeyword(line, skipLabels) {
			continue
		}
		descriptionLines = append(descriptionLines, line)
	}
	return strings.Join(descriptionLines, " ")
}

func containsAnyKeyword(line string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}
