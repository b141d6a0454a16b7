package extract

import (
	"strings"

	"github.com/Abraxas-365/sift/analysis"
	"github.com/Abraxas-365/sift/analysis/segment"
)

// Experience extracts work-experience entries. Entries that never resolve a
// company name are dropped; every other field is optional.
func (e *Extractor) Experience(text string, b *analysis.Builder) {
	body, ok := e.seg.Section(text, "experience")
	if !ok {
		return
	}

	for _, entry := range segment.SplitEntries(body) {
		company, title := companyAndTitle(entry)
		if company == "" {
			continue
		}

		start, end := extractDates(entry)
		description, responsibilities := descriptionAndResponsibilities(entry)

		b.AddExperience(analysis.ExperienceRecord{
			Company:          company,
			Title:            title,
			StartDate:        start,
			EndDate:          end,
			Location:         extractEntryLocation(entry),
			Description:      description,
			Responsibilities: responsibilities,
		})
	}
}

// companyAndTitle resolves the organization and role from the first lines of
// an entry. Separator strategies run first (dash, "at", comma); positional
// fallbacks fill whatever is still missing.
func companyAndTitle(entry string) (string, string) {
	lines := strings.Split(entry, "\n")
	var company, title string

	for _, line := range headLines(lines, 3) {
		if left, right, ok := splitDash(line); ok {
			company, title = left, right
			break
		}
		if left, right, ok := splitAt(line); ok {
			title, company = left, right
			break
		}
		if left, right, ok := splitComma(line); ok {
			title, company = left, right
			break
		}
	}

	if company == "" || title == "" {
		first := strings.TrimSpace(lines[0])
		switch {
		case company == "" && title == "":
			company = first
		case company == "":
			if len(lines) > 1 {
				company = strings.TrimSpace(lines[1])
			}
		case title == "":
			if len(lines) > 1 {
				title = strings.TrimSpace(lines[1])
			}
		}
	}

	return company, title
}

// descriptionAndResponsibilities separates bullet lines from free prose in
// the body of an entry. The first three non-bullet lines are assumed to
// carry the company, title and dates and are skipped; bullets always count
// as responsibilities, wherever they appear.
func descriptionAndResponsibilities(entry string) (string, []string) {
	var descriptionLines []string
	var responsibilities []string

	for i, raw := range strings.Split(entry, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if isBulletLine(line) {
			if r := stripBullet(line); r != "" {
				responsibilities = append(responsibilities, r)
			}
			continue
		}
		if i >= 3 {
			descriptionLines = append(descriptionLines, line)
		}
	}

	return strings.Join(descriptionLines, " "), responsibilities
}
