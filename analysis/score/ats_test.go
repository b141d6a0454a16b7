package score

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abraxas-365/sift/analysis"
)

func atsProfile() *analysis.Profile {
	return &analysis.Profile{
		RawText: "Jane Doe\njane@example.com\n" +
			"EXPERIENCE\nAcme Corp - Engineer\n2019 - 2021\n" +
			"- improved throughput by 40%\n" +
			"EDUCATION\nState University - BSc\n" +
			"SKILLS\npython, sql, docker, leadership, communication\n",
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "555-123-4567",
		Skills:  []string{"Python", "SQL", "Docker", "Leadership", "Communication"},
		Summary: "Backend engineer focused on reliable data infrastructure at scale.",
		Experience: []analysis.ExperienceRecord{{
			Company: "Acme Corp", Title: "Engineer", StartDate: "2019", EndDate: "2021",
		}},
		Education: []analysis.EducationRecord{{
			Institution: "State University", Degree: "BSc",
		}},
	}
}

func TestATS_WeightedSumInvariant(t *testing.T) {
	report := newEngine().ATS(atsProfile())

	d := report.DetailedScores
	expected := d.Keyword*0.25 + d.Format*0.20 + d.Structure*0.20 + d.Content*0.20 + d.Completeness*0.15
	assert.InDelta(t, expected, report.ATSScore, 0.0001)

	for _, s := range []float64{d.Keyword, d.Format, d.Structure, d.Content, d.Completeness, report.ATSScore} {
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 10.0)
	}
}

func TestATS_RedFlags(t *testing.T) {
	p := atsProfile()
	p.RawText += "\nReferences available upon request\n"

	report := newEngine().ATS(p)

	assert.Contains(t, report.RedFlags, "Contains 'references available upon request' which may hurt ATS performance")
	assert.Contains(t, report.Recommendations, "Avoid using 'References available upon request'")
}

func TestATS_MissingElements(t *testing.T) {
	report := newEngine().ATS(&analysis.Profile{})

	assert.Contains(t, report.MissingElements, "Name")
	assert.Contains(t, report.MissingElements, "Email address")
	assert.Contains(t, report.MissingElements, "Work experience")
	assert.Contains(t, report.MissingElements, "Education section")
}

func TestATS_MissingElementsRecommendation(t *testing.T) {
	// A profile strong enough that only the keyword advice fires ahead of
	// the missing-elements line, so the cap cannot swallow it.
	p := &analysis.Profile{
		RawText: "Jane Doe\njane@example.com\nSUMMARY\nexperience education skills summary objective\n" +
			"• achieved developed implemented managed led created designed\n" +
			"improved results by 40% and 30% across 10+ deployments since 2019\n" +
			strings.Repeat("delivered measurable outcomes across production systems ", 60),
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "555-123-4567",
		Skills:  []string{"Python", "SQL", "Docker", "Leadership", "Communication"},
		Summary: strings.Repeat("Backend engineer building reliable data infrastructure. ", 3),
		Experience: []analysis.ExperienceRecord{
			{Company: "Acme Corp", Title: "Engineer", StartDate: "2019", EndDate: "2021"},
			{Company: "Globex Inc", Title: "Senior Engineer", StartDate: "2021", EndDate: "Present"},
		},
		Education: []analysis.EducationRecord{{
			Institution: "State University", Degree: "BSc", StartDate: "2012", EndDate: "2016",
		}},
	}

	report := newEngine().ATS(p)

	assert.Equal(t, []string{"Location"}, report.MissingElements)

	var missingRec string
	for _, rec := range report.Recommendations {
		if strings.HasPrefix(rec, "Add missing elements: ") {
			missingRec = rec
		}
	}
	require.NotEmpty(t, missingRec)
	assert.Equal(t, "Add missing elements: Location", missingRec)
}

func TestATS_RecommendationsCappedAtEight(t *testing.T) {
	p := &analysis.Profile{RawText: "objective\nhobbies\n"}
	report := newEngine().ATS(p)

	assert.LessOrEqual(t, len(report.Recommendations), 8)
	assert.NotEmpty(t, report.Recommendations)
}

func TestATS_KeywordDensity(t *testing.T) {
	p := &analysis.Profile{RawText: "python python sql"}
	report := newEngine().ATS(p)

	var python, sql *analysis.KeywordDensity
	for i := range report.KeywordDensity.Technical {
		switch report.KeywordDensity.Technical[i].Keyword {
		case "python":
			python = &report.KeywordDensity.Technical[i]
		case "sql":
			sql = &report.KeywordDensity.Technical[i]
		}
	}

	require.NotNil(t, python)
	assert.Equal(t, 2, python.Count)
	assert.InDelta(t, 66.67, python.DensityPercent, 0.001)

	require.NotNil(t, sql)
	assert.Equal(t, 1, sql.Count)
	assert.InDelta(t, 33.33, sql.DensityPercent, 0.001)
}

func TestATS_StructureScore(t *testing.T) {
	p := atsProfile()
	report := newEngine().ATS(p)

	// All four essential sections are present (4.0), one experience entry
	// (no multi-entry bonus), uniform company/title (2.0), and the raw
	// text has ten or fewer content lines.
	assert.InDelta(t, 6.0, report.DetailedScores.Structure, 0.001)
}

func TestATS_EmptyText(t *testing.T) {
	report := newEngine().ATS(&analysis.Profile{})

	assert.Zero(t, report.DetailedScores.Keyword)
	assert.Empty(t, report.KeywordDensity.Technical)
	assert.Empty(t, report.RedFlags)
}
