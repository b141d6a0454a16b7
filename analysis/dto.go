package analysis

import (
	"time"

	"github.com/Abraxas-365/sift/pkg/kernel"
)

// ============================================================================
// Request DTOs
// ============================================================================

// AnalyzeTextRequest - Analyze raw resume text handed over the boundary
type AnalyzeTextRequest struct {
	Text     string `json:"text" validate:"required"`
	Filename string `json:"filename"` // Label only; defaults to "resume.txt"
}

// ============================================================================
// Response DTOs
// ============================================================================

// ContactInfo - Contact block of the profile response
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// AnalysisResult - Score and recommendation block of the profile response
type AnalysisResult struct {
	SkillScores     map[string]float64 `json:"skill_scores"`
	ExperienceScore float64            `json:"experience_score"`
	EducationScore  float64            `json:"education_score"`
	OverallScore    float64            `json:"overall_score"`
	Recommendations []string           `json:"recommendations"`
}

// ProfileResponse - The profile exposed to presentation/serialization
// collaborators as a key/value structure
type ProfileResponse struct {
	ID             kernel.AnalysisID     `json:"id"`
	Filename       string                `json:"filename"`
	AnalyzedAt     string                `json:"analyzed_at"`
	Contact        ContactInfo           `json:"contact"`
	Summary        string                `json:"summary,omitempty"`
	Skills         []string              `json:"skills"`
	Education      []EducationRecord     `json:"education"`
	Experience     []ExperienceRecord    `json:"experience"`
	Projects       []ProjectRecord       `json:"projects"`
	Certifications []CertificationRecord `json:"certifications"`
	Languages      []LanguageRecord      `json:"languages"`
	Analysis       AnalysisResult        `json:"analysis"`
}

// Response converts a sealed Profile into its external key/value shape
func (p *Profile) Response() ProfileResponse {
	skillScores := p.Scores.SkillCategories
	if skillScores == nil {
		skillScores = map[string]float64{}
	}
	return ProfileResponse{
		ID:         p.ID,
		Filename:   p.Filename,
		AnalyzedAt: p.AnalyzedAt.Format(time.RFC3339),
		Contact: ContactInfo{
			Name:     p.Name,
			Email:    p.Email,
			Phone:    p.Phone,
			Location: p.Location,
			LinkedIn: p.LinkedIn,
			Website:  p.Website,
		},
		Summary:        p.Summary,
		Skills:         p.Skills,
		Education:      p.Education,
		Experience:     p.Experience,
		Projects:       p.Projects,
		Certifications: p.Certifications,
		Languages:      p.Languages,
		Analysis: AnalysisResult{
			SkillScores:     skillScores,
			ExperienceScore: p.Scores.Experience,
			EducationScore:  p.Scores.Education,
			OverallScore:    p.Scores.Overall,
			Recommendations: p.Recommendations,
		},
	}
}

// ============================================================================
// ATS report DTOs
// ============================================================================

// ATSDetailedScores - The five ATS component scores, each in [0,10]
type ATSDetailedScores struct {
	Keyword      float64 `json:"keyword_score"`
	Format       float64 `json:"format_score"`
	Structure    float64 `json:"structure_score"`
	Content      float64 `json:"content_score"`
	Completeness float64 `json:"completeness_score"`
}

// KeywordDensity - Occurrence stats for one matched vocabulary keyword
type KeywordDensity struct {
	Keyword        string  `json:"keyword"`
	Count          int     `json:"count"`
	DensityPercent float64 `json:"density_percent"`
}

// KeywordDensityReport - Matched keywords grouped by vocabulary category
type KeywordDensityReport struct {
	Technical []KeywordDensity `json:"technical_keywords"`
	Soft      []KeywordDensity `json:"soft_skills_keywords"`
	Industry  []KeywordDensity `json:"industry_keywords"`
}

// FormatCompliance - Coarse flags about machine-readability of the input
type FormatCompliance struct {
	FileFormat            bool   `json:"file_format"`
	FileSize              bool   `json:"file_size"`
	TextLength            string `json:"text_length"` // good | too_short | too_long
	FontUsage             string `json:"font_usage"`
	FormattingConsistency string `json:"formatting_consistency"`
}

// ATSReport - Full ATS compatibility analysis for one resume
type ATSReport struct {
	ATSScore        float64              `json:"ats_score"`
	DetailedScores  ATSDetailedScores    `json:"detailed_scores"`
	KeywordDensity  KeywordDensityReport `json:"keyword_density"`
	Compliance      FormatCompliance     `json:"format_compliance"`
	RedFlags        []string             `json:"red_flags"`
	MissingElements []string             `json:"missing_elements"`
	Recommendations []string             `json:"recommendations"`
}

// AnalyzeResponse - Combined payload returned by the API
type AnalyzeResponse struct {
	Profile ProfileResponse `json:"profile"`
	ATS     ATSReport       `json:"ats"`
}
