package extract

import (
	"strings"

	"github.com/Abraxas-365/sift/analysis"
	"github.com/Abraxas-365/sift/analysis/segment"
	"github.com/Abraxas-365/sift/pkg/textx"
)

// Projects extracts project entries: first line is the name, bullets and
// prose become the description, and known skills mentioned in the entry are
// attached as technologies.
func (e *Extractor) Projects(text string, b *analysis.Builder) {
	body, ok := e.seg.Section(text, "projects")
	if !ok {
		return
	}

	for _, entry := range segment.SplitEntries(body) {
		lines := strings.Split(entry, "\n")
		name := stripBullet(strings.TrimSpace(lines[0]))
		if name == "" {
			continue
		}

		var descriptionLines []string
		for _, raw := range lines[1:] {
			line := strings.TrimSpace(raw)
			if line == "" {
				continue
			}
			descriptionLines = append(descriptionLines, stripBullet(line))
		}

		start, end := extractDates(entry)
		var url string
		if urls := textx.FindURLs(entry); len(urls) > 0 {
			url = urls[0]
		}

		b.AddProject(analysis.ProjectRecord{
			Name:         name,
			Description:  strings.Join(descriptionLines, " "),
			Technologies: e.technologiesIn(entry),
			StartDate:    start,
			EndDate:      end,
			URL:          url,
		})
	}
}

func (e *Extractor) technologiesIn(entry string) []string {
	var techs []string
	seen := make(map[string]struct{})
	for _, skills := range e.vocab.Skills {
		for _, skill := range skills {
			if _, ok := seen[skill]; ok {
				continue
			}
			if textx.ContainsWord(entry, skill) {
				seen[skill] = struct{}{}
				techs = append(techs, skill)
			}
		}
	}
	return techs
}

// Certifications extracts certification entries, one per non-empty line.
// A trailing "Issuer" after a comma or dash and a year-like date are pulled
// out when present.
func (e *Extractor) Certifications(text string, b *analysis.Builder) {
	body, ok := e.seg.Section(text, "certifications")
	if !ok {
		return
	}

	for _, raw := range strings.Split(body, "\n") {
		line := stripBullet(strings.TrimSpace(raw))
		if line == "" {
			continue
		}

		rec := analysis.CertificationRecord{Name: line}
		if left, right, ok := splitDash(line); ok {
			rec.Name, rec.Issuer = left, right
		} else if left, right, ok := splitComma(line); ok {
			rec.Name, rec.Issuer = left, right
		}
		if start, _ := extractDates(line); start != "" {
			rec.Date = start
		}
		b.AddCertification(rec)
	}
}

// Proficiency separators tried in order on each language line
var proficiencySeparators = []string{" - ", ":", "("}

// Languages extracts language proficiencies, one per line or comma token.
// "English - Fluent", "English: Fluent" and "English (Fluent)" all resolve
// to the same record.
func (e *Extractor) Languages(text string, b *analysis.Builder) {
	body, ok := e.seg.Section(text, "languages")
	if !ok {
		return
	}

	var tokens []string
	for _, raw := range strings.Split(body, "\n") {
		line := stripBullet(strings.TrimSpace(raw))
		if line == "" {
			continue
		}
		if strings.Contains(line, ",") && !strings.Contains(line, "(") {
			for _, t := range strings.Split(line, ",") {
				tokens = append(tokens, strings.TrimSpace(t))
			}
		} else {
			tokens = append(tokens, line)
		}
	}

	for _, token := range tokens {
		if token == "" {
			continue
		}
		rec := analysis.LanguageRecord{Language: token}
		for _, sep := range proficiencySeparators {
			idx := strings.Index(token, sep)
			if idx == -1 {
				continue
			}
			rec.Language = strings.TrimSpace(token[:idx])
			rec.Proficiency = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(token[idx+len(sep):]), ")"))
			break
		}
		b.AddLanguage(rec)
	}
}
