// Package score computes the quality and ATS-compatibility scores for an
// analyzed profile. Every component score is a sum of discrete point
// buckets clamped to [0,10]; the thresholds are fixed constants chosen for
// stable, explainable output, not tunables.
package score

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Abraxas-365/sift/analysis"
	"github.com/Abraxas-365/sift/analysis/vocabulary"
	"github.com/Abraxas-365/sift/pkg/textx"
)

// Weights for the general overall score. Must sum to 1.0.
const (
	weightSkills     = 0.3
	weightExperience = 0.4
	weightEducation  = 0.2
	weightFormat     = 0.1
)

// Date layouts tried in order when computing tenure from date ranges
var dateLayouts = []string{"Jan 2006", "January 2006", "1/2006", "1-2006", "2006"}

// Engine scores sealed extraction results. It reads only the injected
// vocabulary and never mutates the profile it is given.
type Engine struct {
	vocab *vocabulary.Store
	now   func() time.Time
}

// NewEngine creates a scoring engine bound to a vocabulary
func NewEngine(vocab *vocabulary.Store) *Engine {
	return &Engine{vocab: vocab, now: time.Now}
}

// Apply computes all general scores and recommendations over the profile
// built so far and records them on the builder.
func (e *Engine) Apply(b *analysis.Builder) {
	p := b.Snapshot()

	categories, skillRecs := e.SkillCategoryScores(p.Skills)

	scores := analysis.ScoreSet{
		Skills:          e.ScoreSkills(p, categories),
		Experience:      e.ScoreExperience(p),
		Education:       e.ScoreEducation(p),
		Format:          e.ScoreFormat(p),
		SkillCategories: categories,
	}
	scores.Overall = round1(scores.Skills*weightSkills +
		scores.Experience*weightExperience +
		scores.Education*weightEducation +
		scores.Format*weightFormat)

	b.SetScores(scores)

	for _, rec := range e.Recommendations(p) {
		b.AddRecommendation(rec)
	}
	for _, rec := range skillRecs {
		b.AddRecommendation(rec)
	}
	for _, rec := range entityRecommendations(p, scores.Overall) {
		b.AddRecommendation(rec)
	}
}

// SkillCategoryScores buckets the extracted skills into the vocabulary's
// weighted scoring categories. Each category counts skills whose name
// mentions one of its keywords, normalized against a ten-skill benchmark,
// then scaled by the category weight. The returned recommendations reflect
// the aggregate and the technical/soft balance.
func (e *Engine) SkillCategoryScores(skills []string) (map[string]float64, []string) {
	const maxSkills = 10.0

	categories := make(map[string]float64, len(e.vocab.ScoringCategories))
	for _, cat := range e.vocab.ScoringCategories {
		count := 0.0
		for _, skill := range skills {
			lower := strings.ToLower(skill)
			for _, kw := range cat.Keywords {
				if strings.Contains(lower, kw) {
					count++
					break
				}
			}
		}
		normalized := math.Min(10.0, (count/maxSkills)*10.0)
		categories[cat.Name] = normalized * cat.Weight
	}

	overall := 0.0
	for _, v := range categories {
		overall += v
	}

	var recs []string
	if overall < 3.0 {
		recs = append(recs, "Consider adding more specific skills to your resume, especially technical skills.")
	} else if overall < 6.0 {
		recs = append(recs, "Your skills section is good, but could be improved by adding more specialized skills relevant to your target role.")
	}

	technical, hasTech := categories["technical"]
	soft, hasSoft := categories["soft"]
	if hasTech && hasSoft {
		if technical > 3*soft {
			recs = append(recs, "Consider adding more soft skills to balance your technical expertise.")
		} else if soft > 3*technical {
			recs = append(recs, "Consider adding more technical skills to complement your soft skills.")
		}
	}

	return categories, recs
}

// ScoreSkills scores the skills list: points for volume plus the average
// relevance of the category scores.
func (e *Engine) ScoreSkills(p *analysis.Profile, categories map[string]float64) float64 {
	if len(p.Skills) == 0 {
		return 0.0
	}

	score := 0.0
	switch n := len(p.Skills); {
	case n >= 15:
		score += 5.0
	case n >= 10:
		score += 4.0
	case n >= 7:
		score += 3.0
	case n >= 5:
		score += 2.0
	case n >= 3:
		score += 1.0
	}

	if len(categories) > 0 {
		sum := 0.0
		for _, v := range categories {
			sum += v
		}
		score += math.Min(5.0, sum/float64(len(categories)))
	} else {
		score += 2.5
	}

	return math.Min(10.0, score)
}

// ScoreExperience scores the experience records: points for entry count,
// cumulative tenure, narrative detail and field completeness.
func (e *Engine) ScoreExperience(p *analysis.Profile) float64 {
	if len(p.Experience) == 0 {
		return 0.0
	}

	score := 0.0
	switch n := len(p.Experience); {
	case n >= 4:
		score += 3.0
	case n >= 3:
		score += 2.5
	case n >= 2:
		score += 2.0
	default:
		score += 1.0
	}

	switch months := e.totalTenureMonths(p.Experience); {
	case months >= 60:
		score += 3.0
	case months >= 36:
		score += 2.5
	case months >= 24:
		score += 2.0
	case months >= 12:
		score += 1.5
	case months > 0:
		score += 1.0
	}

	hasResponsibilities := false
	hasDescriptions := false
	hasAllTitles := true
	hasAllCompanies := true
	for _, exp := range p.Experience {
		if len(exp.Responsibilities) > 0 {
			hasResponsibilities = true
		}
		if exp.Description != "" {
			hasDescriptions = true
		}
		if exp.Title == "" {
			hasAllTitles = false
		}
		if exp.Company == "" {
			hasAllCompanies = false
		}
	}

	if hasResponsibilities && hasDescriptions {
		score += 2.0
	} else if hasResponsibilities || hasDescriptions {
		score += 1.0
	}

	if hasAllTitles && hasAllCompanies {
		score += 2.0
	} else if hasAllTitles || hasAllCompanies {
		score += 1.0
	}

	return math.Min(10.0, score)
}

// totalTenureMonths sums the duration of every experience record. Ranges
// with a missing or unparsable date contribute a fixed assumed 12 months;
// open-ended ranges run until now.
func (e *Engine) totalTenureMonths(records []analysis.ExperienceRecord) int {
	total := 0
	for _, exp := range records {
		switch {
		case exp.StartDate != "" && exp.EndDate != "" && !strings.EqualFold(exp.EndDate, "present"):
			start, okStart := parseDate(exp.StartDate)
			end, okEnd := parseDate(exp.EndDate)
			if !okStart || !okEnd {
				total += 12
				continue
			}
			total += monthsBetween(start, end)
		case exp.StartDate != "" && strings.EqualFold(exp.EndDate, "present"):
			start, ok := parseDate(exp.StartDate)
			if !ok {
				total += 12
				continue
			}
			total += monthsBetween(start, e.now())
		default:
			total += 12
		}
	}
	return total
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func monthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}
	return months
}

// ScoreEducation scores the education records: points for entry count, the
// highest degree level and per-entry completeness.
func (e *Engine) ScoreEducation(p *analysis.Profile) float64 {
	if len(p.Education) == 0 {
		return 0.0
	}

	score := 0.0
	switch n := len(p.Education); {
	case n >= 3:
		score += 3.0
	case n >= 2:
		score += 2.0
	default:
		score += 1.0
	}

	highest := 0.0
	for _, edu := range p.Education {
		highest = math.Max(highest, degreeLevel(edu.Degree))
	}
	score += highest

	completeness := 0.0
	for _, edu := range p.Education {
		entry := 0.0
		if edu.Institution != "" {
			entry += 0.5
		}
		if edu.Field != "" {
			entry += 0.5
		}
		if edu.StartDate != "" || edu.EndDate != "" {
			entry += 0.5
		}
		if edu.GPA != nil {
			entry += 0.5
		}
		if edu.Location != "" {
			entry += 0.5
		}
		if edu.Description != "" {
			entry += 0.5
		}
		completeness += math.Min(3.0, entry)
	}
	score += math.Min(3.0, completeness/float64(len(p.Education)))

	return math.Min(10.0, score)
}

// degreeLevel maps a degree string to a point value for its academic level
func degreeLevel(degree string) float64 {
	lower := strings.ToLower(degree)
	switch {
	case strings.Contains(lower, "phd") || strings.Contains(lower, "ph.d") ||
		strings.Contains(lower, "doctor"):
		return 4.0
	case strings.Contains(lower, "master") || strings.Contains(lower, "mba") ||
		strings.Contains(lower, "m.s") || strings.Contains(lower, "m.a") ||
		containsWordFold(lower, "ms") || containsWordFold(lower, "ma"):
		return 3.0
	case strings.Contains(lower, "bachelor") || strings.Contains(lower, "b.s") ||
		strings.Contains(lower, "b.a") ||
		containsWordFold(lower, "bs") || containsWordFold(lower, "ba"):
		return 2.0
	case strings.Contains(lower, "associate") || strings.Contains(lower, "certificate") ||
		strings.Contains(lower, "diploma"):
		return 1.0
	default:
		return 0.5
	}
}

func containsWordFold(text, term string) bool {
	return textx.ContainsWord(text, term)
}

// ScoreFormat scores the document shape: contact block, summary, word
// count and lexical diversity, starting from a middle baseline. Empty
// input has no format to speak of and scores zero outright.
func (e *Engine) ScoreFormat(p *analysis.Profile) float64 {
	if strings.TrimSpace(p.RawText) == "" {
		return 0.0
	}

	score := 5.0

	contact := 0.0
	if p.Name != "" {
		contact += 0.5
	}
	if p.Email != "" {
		contact += 0.5
	}
	if p.Phone != "" {
		contact += 0.5
	}
	if p.Location != "" {
		contact += 0.5
	}
	score += math.Min(2.0, contact)

	if p.Summary != "" {
		score += 1.0
	}

	if p.RawText != "" {
		stats := textx.CalculateStats(p.RawText)

		if stats.WordCount >= 300 && stats.WordCount <= 700 {
			score += 1.0
		} else if (stats.WordCount >= 200 && stats.WordCount < 300) ||
			(stats.WordCount > 700 && stats.WordCount <= 1000) {
			score += 0.5
		}

		if stats.LexicalDiversity >= 0.4 && stats.LexicalDiversity <= 0.7 {
			score += 1.0
		} else if (stats.LexicalDiversity >= 0.3 && stats.LexicalDiversity < 0.4) ||
			(stats.LexicalDiversity > 0.7 && stats.LexicalDiversity <= 0.8) {
			score += 0.5
		}
	}

	return math.Min(10.0, score)
}

// generalRecommendations is the top-up pool used when the specific findings
// produce fewer than three recommendations
var generalRecommendations = []string{
	"Quantify your achievements with specific numbers and metrics where possible.",
	"Tailor your resume for each job application to highlight relevant skills and experience.",
	"Use action verbs to describe your responsibilities and achievements.",
	"Proofread your resume for spelling and grammar errors.",
	"Consider adding a LinkedIn profile or personal website to your contact information.",
	"Organize your resume in reverse chronological order (most recent experience first).",
}

// Recommendations derives improvement advice from the profile's gaps,
// topping up from a general pool so the list never has fewer than three
// entries.
func (e *Engine) Recommendations(p *analysis.Profile) []string {
	var recs []string

	if len(p.Skills) < 5 {
		recs = append(recs, "Add more skills to your resume, aim for at least 5-10 relevant skills.")
	}

	if len(p.Experience) == 0 {
		recs = append(recs, "Add work experience to your resume, even if it's internships or volunteer work.")
	} else {
		for _, exp := range p.Experience {
			if len(exp.Responsibilities) == 0 && exp.Description == "" {
				recs = append(recs, "Add detailed responsibilities or descriptions to your work experience.")
				break
			}
		}
	}

	if len(p.Education) == 0 {
		recs = append(recs, "Add your educational background to your resume.")
	}

	var missingContact []string
	if p.Name == "" {
		missingContact = append(missingContact, "name")
	}
	if p.Email == "" {
		missingContact = append(missingContact, "email")
	}
	if p.Phone == "" {
		missingContact = append(missingContact, "phone number")
	}
	if len(missingContact) > 0 {
		recs = append(recs, fmt.Sprintf("Add your %s to your contact information.", strings.Join(missingContact, ", ")))
	}

	if p.Summary == "" {
		recs = append(recs, "Add a professional summary to highlight your key qualifications and career objectives.")
	}

	if p.RawText != "" {
		stats := textx.CalculateStats(p.RawText)
		if stats.WordCount > 1000 {
			recs = append(recs, "Your resume is quite long. Consider condensing it to 1-2 pages (300-700 words).")
		} else if stats.WordCount < 200 {
			recs = append(recs, "Your resume is quite short. Consider adding more details about your experience and skills.")
		}
	}

	if len(recs) < 3 {
		for _, rec := range generalRecommendations {
			if !containsString(recs, rec) {
				recs = append(recs, rec)
				if len(recs) >= 3 {
					break
				}
			}
		}
	}

	return recs
}

// entityRecommendations produces advice parameterized by the specific
// company or institution that is missing detail
func entityRecommendations(p *analysis.Profile, overall float64) []string {
	var recs []string

	if len(p.Experience) == 1 {
		recs = append(recs, "Consider adding more work experiences to demonstrate your career progression.")
	}
	for _, exp := range p.Experience {
		if len(exp.Responsibilities) == 0 {
			recs = append(recs, fmt.Sprintf("Add bullet points describing your responsibilities and achievements at %s.", exp.Company))
		} else if len(exp.Responsibilities) < 3 {
			recs = append(recs, fmt.Sprintf("Add more bullet points for your role at %s to highlight your achievements.", exp.Company))
		}
		if exp.StartDate == "" || exp.EndDate == "" {
			recs = append(recs, fmt.Sprintf("Add specific dates for your position at %s.", exp.Company))
		}
	}

	for _, edu := range p.Education {
		if edu.Field == "" {
			recs = append(recs, fmt.Sprintf("Specify your field of study at %s.", edu.Institution))
		}
		if edu.StartDate == "" || edu.EndDate == "" {
			recs = append(recs, fmt.Sprintf("Add specific dates for your education at %s.", edu.Institution))
		}
		if edu.GPA == nil && degreeLevel(edu.Degree) >= 2.0 {
			recs = append(recs, fmt.Sprintf("Consider adding your GPA for your %s if it's above 3.0.", edu.Degree))
		}
	}

	switch {
	case overall < 5.0:
		recs = append(recs, "Your resume needs significant improvement. Focus on adding more detailed work experiences and skills.")
	case overall < 7.0:
		recs = append(recs, "Your resume is good but could be improved. Consider adding more specific achievements and quantifiable results.")
	default:
		recs = append(recs, "Your resume is strong. Consider tailoring it further for specific job applications.")
	}

	return recs
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
