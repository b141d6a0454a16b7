package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Abraxas-365/sift/analysis"
	"github.com/Abraxas-365/sift/pkg/textx"
)

var (
	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),
		regexp.MustCompile(`\(\d{3}\)[-. ]?\d{3}[-.]?\d{4}`),
		regexp.MustCompile(`\+\d{1,3}[-. ]?\d{3}[-. ]?\d{3}[-. ]?\d{4}\b`),
	}

	linkedinRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`),
		regexp.MustCompile(`(?i)linkedin\.com/profile/[\w-]+`),
	}

	websiteRes = []*regexp.Regexp{
		regexp.MustCompile(`https?://(?:www\.)?[\w-]+\.[\w.-]+(?:/[\w.-]*)*/?`),
		regexp.MustCompile(`www\.[\w-]+\.[\w.-]+(?:/[\w.-]*)*/?`),
	}

	contactLocationRes = []*regexp.Regexp{
		// City, State (e.g. New York, NY)
		regexp.MustCompile(`\b[A-Z][a-z]+(?:\s[A-Z][a-z]+)*,\s[A-Z]{2}\b`),
		// City Zip (e.g. New York 10001)
		regexp.MustCompile(`\b[A-Z][a-z]+(?:\s[A-Z][a-z]+)*\s\d{5}\b`),
	}

	// Sites that show up in resume links but are never a personal portfolio
	jobSites = []string{"linkedin", "indeed", "monster", "careerbuilder", "glassdoor"}

	nameStopWords = []string{"resume", "cv", "curriculum"}
)

// Contact extracts name, email, phone, LinkedIn, website and location from
// the whole text. The name heuristic trusts document position: the first
// short line near the top that is not a document label.
func (e *Extractor) Contact(text string, b *analysis.Builder) {
	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines) && i < 5; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || utf8.RuneCountInString(line) >= 50 {
			continue
		}
		if containsAnyFold(line, nameStopWords) {
			continue
		}
		b.SetName(line)
		break
	}

	if emails := textx.FindEmails(text); len(emails) > 0 {
		b.SetEmail(emails[0])
	}

	for _, re := range phoneRes {
		if m := re.FindString(text); m != "" {
			b.SetPhone(m)
			break
		}
	}

	for _, re := range linkedinRes {
		if m := re.FindString(text); m != "" {
			b.SetLinkedIn(m)
			break
		}
	}

	for _, re := range websiteRes {
		found := false
		for _, m := range re.FindAllString(text, -1) {
			if containsAnyFold(m, jobSites) {
				continue
			}
			b.SetWebsite(m)
			found = true
			break
		}
		if found {
			break
		}
	}

	for _, re := range contactLocationRes {
		if m := re.FindString(text); m != "" {
			b.SetLocation(m)
			break
		}
	}
}

// Summary extracts the professional summary section, flattened to a single
// line. Without a terminating header the section is capped at five lines.
func (e *Extractor) Summary(text string, b *analysis.Builder) {
	body, ok := e.seg.SectionCapped(text, "summary", 5)
	if !ok {
		return
	}
	b.SetSummary(flatten(body))
}

// flatten joins a multi-line body into one whitespace-normalized line
func flatten(body string) string {
	return strings.Join(strings.Fields(body), " ")
}

func containsAnyFold(s string, terms []string) bool {
	lower := strings.ToLower(s)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
