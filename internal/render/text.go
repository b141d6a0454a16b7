package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/Abraxas-365/sift/analysis"
)

// TextRenderer writes a plain-text report: contact block, extracted sections,
// general scores and the ATS summary.
type TextRenderer struct{}

func (r *TextRenderer) Extension() string { return "txt" }

func (r *TextRenderer) Render(w io.Writer, p *analysis.Profile, ats *analysis.ATSReport) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Resume Analysis: %s\n", p.Filename)
	fmt.Fprintf(&b, "Analyzed on: %s\n\n", p.AnalyzedAt.Format("2006-01-02 15:04:05"))

	heading(&b, "PERSONAL INFORMATION")
	field(&b, "Name", p.Name)
	field(&b, "Email", p.Email)
	field(&b, "Phone", p.Phone)
	field(&b, "Location", p.Location)
	field(&b, "LinkedIn", p.LinkedIn)
	field(&b, "Website", p.Website)
	b.WriteString("\n")

	if p.Summary != "" {
		heading(&b, "SUMMARY")
		b.WriteString(p.Summary + "\n\n")
	}

	if len(p.Skills) > 0 {
		heading(&b, "SKILLS")
		b.WriteString(strings.Join(p.Skills, ", ") + "\n\n")
	}

	if len(p.Education) > 0 {
		heading(&b, "EDUCATION")
		for _, edu := range p.Education {
			line := edu.Institution
			if edu.Degree != "" {
				line += " - " + edu.Degree
			}
			if edu.Field != "" {
				line += ", " + edu.Field
			}
			b.WriteString(line + "\n")
			dateLine(&b, edu.StartDate, edu.EndDate)
			field(&b, "Location", edu.Location)
			if edu.GPA != nil {
				fmt.Fprintf(&b, "GPA: %g\n", *edu.GPA)
			}
			if edu.Description != "" {
				b.WriteString(edu.Description + "\n")
			}
			b.WriteString("\n")
		}
	}

	if len(p.Experience) > 0 {
		heading(&b, "EXPERIENCE")
		for _, exp := range p.Experience {
			line := exp.Company
			if exp.Title != "" {
				line += " - " + exp.Title
			}
			b.WriteString(line + "\n")
			dateLine(&b, exp.StartDate, exp.EndDate)
			field(&b, "Location", exp.Location)
			if exp.Description != "" {
				b.WriteString(exp.Description + "\n")
			}
			if len(exp.Responsibilities) > 0 {
				b.WriteString("Responsibilities:\n")
				for _, resp := range exp.Responsibilities {
					b.WriteString("- " + resp + "\n")
				}
			}
			b.WriteString("\n")
		}
	}

	if len(p.Projects) > 0 {
		heading(&b, "PROJECTS")
		for _, proj := range p.Projects {
			b.WriteString(proj.Name + "\n")
			dateLine(&b, proj.StartDate, proj.EndDate)
			if proj.Description != "" {
				b.WriteString(proj.Description + "\n")
			}
			if len(proj.Technologies) > 0 {
				b.WriteString("Technologies: " + strings.Join(proj.Technologies, ", ") + "\n")
			}
			field(&b, "URL", proj.URL)
			b.WriteString("\n")
		}
	}

	heading(&b, "ANALYSIS")
	fmt.Fprintf(&b, "Overall Score: %.2f/10.0\n", p.Scores.Overall)
	if len(p.Scores.SkillCategories) > 0 {
		b.WriteString("\nSkill Scores:\n")
		for _, name := range sortedKeys(p.Scores.SkillCategories) {
			fmt.Fprintf(&b, "- %s: %.2f/10.0\n", name, p.Scores.SkillCategories[name])
		}
	}
	fmt.Fprintf(&b, "\nExperience Score: %.2f/10.0\n", p.Scores.Experience)
	fmt.Fprintf(&b, "Education Score: %.2f/10.0\n", p.Scores.Education)

	if len(p.Recommendations) > 0 {
		b.WriteString("\nRecommendations:\n")
		for i, rec := range p.Recommendations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
		}
	}

	if ats != nil {
		b.WriteString("\n")
		heading(&b, "ATS COMPATIBILITY")
		fmt.Fprintf(&b, "ATS Score: %.2f/10.0\n", ats.ATSScore)
		fmt.Fprintf(&b, "- Keyword: %.2f\n", ats.DetailedScores.Keyword)
		fmt.Fprintf(&b, "- Format: %.2f\n", ats.DetailedScores.Format)
		fmt.Fprintf(&b, "- Structure: %.2f\n", ats.DetailedScores.Structure)
		fmt.Fprintf(&b, "- Content: %.2f\n", ats.DetailedScores.Content)
		fmt.Fprintf(&b, "- Completeness: %.2f\n", ats.DetailedScores.Completeness)

		if len(ats.RedFlags) > 0 {
			b.WriteString("\nRed Flags:\n")
			for _, flag := range ats.RedFlags {
				b.WriteString("- " + flag + "\n")
			}
		}
		if len(ats.MissingElements) > 0 {
			b.WriteString("\nMissing Elements:\n")
			for _, el := range ats.MissingElements {
				b.WriteString("- " + el + "\n")
			}
		}
		if len(ats.Recommendations) > 0 {
			b.WriteString("\nATS Recommendations:\n")
			for i, rec := range ats.Recommendations {
				fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func heading(b *strings.Builder, title string) {
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
}

func field(b *strings.Builder, label, value string) {
	if value != "" {
		b.WriteString(label + ": " + value + "\n")
	}
}

func dateLine(b *strings.Builder, start, end string) {
	var dates []string
	if start != "" {
		dates = append(dates, start)
	}
	if end != "" {
		dates = append(dates, end)
	}
	if len(dates) > 0 {
		b.WriteString(strings.Join(dates, " - ") + "\n")
	}
}
