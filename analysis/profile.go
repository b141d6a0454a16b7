package analysis

import (
	"sort"
	"time"

	"github.com/Abraxas-365/sift/pkg/kernel"
)

// Profile represents a fully analyzed resume: the structured fields extracted
// from the raw text plus the scores and recommendations computed over them.
// A Profile is built incrementally through a Builder and is immutable once
// sealed; consumers (renderers, API handlers) read it as a snapshot.
type Profile struct {
	ID         kernel.AnalysisID `json:"id"`
	RawText    string            `json:"-"`
	Filename   string            `json:"filename"`
	AnalyzedAt time.Time         `json:"analyzed_at"`

	// Contact information
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`

	// Sections
	Summary        string                `json:"summary,omitempty"`
	Skills         []string              `json:"skills"`
	Experience     []ExperienceRecord    `json:"experience"`
	Education      []EducationRecord     `json:"education"`
	Projects       []ProjectRecord       `json:"projects"`
	Certifications []CertificationRecord `json:"certifications"`
	Languages      []LanguageRecord      `json:"languages"`

	// Analysis results
	Scores          ScoreSet `json:"scores"`
	Recommendations []string `json:"recommendations"`
}

// ExperienceRecord is one work-experience entry. It is only ever created with
// a resolved company name; every other field may legitimately be empty.
type ExperienceRecord struct {
	Company          string   `json:"company"`
	Title            string   `json:"title,omitempty"`
	StartDate        string   `json:"start_date,omitempty"`
	EndDate          string   `json:"end_date,omitempty"`
	Location         string   `json:"location,omitempty"`
	Description      string   `json:"description,omitempty"`
	Responsibilities []string `json:"responsibilities"`
}

// EducationRecord is one education entry, keyed on a resolved institution
type EducationRecord struct {
	Institution string   `json:"institution"`
	Degree      string   `json:"degree,omitempty"`
	Field       string   `json:"field,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	GPA         *float64 `json:"gpa,omitempty"`
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description,omitempty"`
}

// ProjectRecord is a pass-through container for project entries
type ProjectRecord struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// CertificationRecord is a pass-through container for certification entries
type CertificationRecord struct {
	Name           string `json:"name"`
	Issuer         string `json:"issuer,omitempty"`
	Date           string `json:"date,omitempty"`
	ExpirationDate string `json:"expiration_date,omitempty"`
	URL            string `json:"url,omitempty"`
}

// LanguageRecord is a language proficiency entry
type LanguageRecord struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency,omitempty"`
}

// ScoreSet holds the general component scores. Every field is bounded to
// [0,10]; Overall is the fixed weighted sum of the other four.
type ScoreSet struct {
	Skills          float64            `json:"skills_score"`
	Experience      float64            `json:"experience_score"`
	Education       float64            `json:"education_score"`
	Format          float64            `json:"format_score"`
	Overall         float64            `json:"overall_score"`
	SkillCategories map[string]float64 `json:"skill_scores,omitempty"`
}

// Builder accumulates extraction results into a Profile. Scalar fields are
// write-once (later writers never clobber an already-set value), collections
// are append-only, and Seal returns the finished immutable Profile.
type Builder struct {
	profile Profile
	skills  map[string]struct{}
	recs    map[string]struct{}
	sealed  bool
}

// NewBuilder starts a Profile for one input text
func NewBuilder(id kernel.AnalysisID, rawText, filename string) *Builder {
	return &Builder{
		profile: Profile{
			ID:         id,
			RawText:    rawText,
			Filename:   filename,
			AnalyzedAt: time.Now(),
		},
		skills: make(map[string]struct{}),
		recs:   make(map[string]struct{}),
	}
}

func setOnce(dst *string, v string) {
	if *dst == "" && v != "" {
		*dst = v
	}
}

func (b *Builder) SetName(v string)     { setOnce(&b.profile.Name, v) }
func (b *Builder) SetEmail(v string)    { setOnce(&b.profile.Email, v) }
func (b *Builder) SetPhone(v string)    { setOnce(&b.profile.Phone, v) }
func (b *Builder) SetLocation(v string) { setOnce(&b.profile.Location, v) }
func (b *Builder) SetLinkedIn(v string) { setOnce(&b.profile.LinkedIn, v) }
func (b *Builder) SetWebsite(v string)  { setOnce(&b.profile.Website, v) }
func (b *Builder) SetSummary(v string)  { setOnce(&b.profile.Summary, v) }

// AddSkill records a skill, deduplicating on exact (case-sensitive) identity
func (b *Builder) AddSkill(skill string) {
	if skill == "" {
		return
	}
	if _, ok := b.skills[skill]; ok {
		return
	}
	b.skills[skill] = struct{}{}
	b.profile.Skills = append(b.profile.Skills, skill)
}

// AddExperience appends a work-experience record. Records without a company
// name are dropped: the extractor never fabricates an organization.
func (b *Builder) AddExperience(rec ExperienceRecord) {
	if rec.Company == "" {
		return
	}
	if rec.Responsibilities == nil {
		rec.Responsibilities = []string{}
	}
	b.profile.Experience = append(b.profile.Experience, rec)
}

// AddEducation appends an education record, keyed on a resolved institution
func (b *Builder) AddEducation(rec EducationRecord) {
	if rec.Institution == "" {
		return
	}
	b.profile.Education = append(b.profile.Education, rec)
}

func (b *Builder) AddProject(rec ProjectRecord) {
	if rec.Name == "" {
		return
	}
	if rec.Technologies == nil {
		rec.Technologies = []string{}
	}
	b.profile.Projects = append(b.profile.Projects, rec)
}

func (b *Builder) AddCertification(rec CertificationRecord) {
	if rec.Name == "" {
		return
	}
	b.profile.Certifications = append(b.profile.Certifications, rec)
}

func (b *Builder) AddLanguage(rec LanguageRecord) {
	if rec.Language == "" {
		return
	}
	b.profile.Languages = append(b.profile.Languages, rec)
}

// AddRecommendation appends a recommendation, skipping exact duplicates and
// preserving generation order
func (b *Builder) AddRecommendation(rec string) {
	if rec == "" {
		return
	}
	if _, ok := b.recs[rec]; ok {
		return
	}
	b.recs[rec] = struct{}{}
	b.profile.Recommendations = append(b.profile.Recommendations, rec)
}

// SetScores records the computed score set
func (b *Builder) SetScores(scores ScoreSet) {
	b.profile.Scores = scores
}

// Snapshot returns a read-only view of the profile as built so far. The
// scoring stage reads extraction results through this before SetScores.
func (b *Builder) Snapshot() *Profile {
	p := b.profile
	return &p
}

// Seal finishes the build: skills are sorted, nil collections become empty,
// and the returned Profile must not be mutated further.
func (b *Builder) Seal() *Profile {
	if b.sealed {
		p := b.profile
		return &p
	}
	b.sealed = true

	sort.Strings(b.profile.Skills)
	if b.profile.Skills == nil {
		b.profile.Skills = []string{}
	}
	if b.profile.Experience == nil {
		b.profile.Experience = []ExperienceRecord{}
	}
	if b.profile.Education == nil {
		b.profile.Education = []EducationRecord{}
	}
	if b.profile.Projects == nil {
		b.profile.Projects = []ProjectRecord{}
	}
	if b.profile.Certifications == nil {
		b.profile.Certifications = []CertificationRecord{}
	}
	if b.profile.Languages == nil {
		b.profile.Languages = []LanguageRecord{}
	}
	if b.profile.Recommendations == nil {
		b.profile.Recommendations = []string{}
	}

	p := b.profile
	return &p
}
