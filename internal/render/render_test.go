package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abraxas-365/sift/analysis"
	"github.com/Abraxas-365/sift/pkg/kernel"
)

func sampleProfile() *analysis.Profile {
	gpa := 3.8
	return &analysis.Profile{
		ID:         kernel.NewAnalysisID("render-test"),
		Filename:   "resume.txt",
		AnalyzedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Name:       "John Smith",
		Email:      "john@example.com",
		Skills:     []string{"Leadership", "Python", "SQL"},
		Summary:    "Backend engineer.",
		Experience: []analysis.ExperienceRecord{{
			Company:          "Acme Corp",
			Title:            "Engineer",
			StartDate:        "2020",
			EndDate:          "Present",
			Responsibilities: []string{"Built things"},
		}},
		Education: []analysis.EducationRecord{{
			Institution: "State University",
			Degree:      "Bachelor of Science",
			Field:       "Computer Science",
			GPA:         &gpa,
		}},
		Scores: analysis.ScoreSet{
			Skills: 6.0, Experience: 7.0, Education: 5.0, Format: 8.0, Overall: 6.4,
			SkillCategories: map[string]float64{"technical": 1.8, "soft": 0.4},
		},
		Recommendations: []string{"Add more technical skills relevant to your target role"},
	}
}

func sampleATS() *analysis.ATSReport {
	return &analysis.ATSReport{
		ATSScore: 5.5,
		DetailedScores: analysis.ATSDetailedScores{
			Keyword: 4.0, Format: 6.0, Structure: 6.0, Content: 5.0, Completeness: 7.0,
		},
		RedFlags:        []string{"Contains 'hobbies' which may hurt ATS performance"},
		Recommendations: []string{"Include more relevant keywords from the job description"},
	}
}

func TestFor(t *testing.T) {
	for format, ext := range map[string]string{"text": "txt", "json": "json", "html": "html"} {
		r, err := For(format)
		require.NoError(t, err)
		assert.Equal(t, ext, r.Extension())
	}

	_, err := For("pdf")
	assert.Error(t, err)
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TextRenderer{}).Render(&buf, sampleProfile(), sampleATS()))
	out := buf.String()

	assert.Contains(t, out, "Resume Analysis: resume.txt")
	assert.Contains(t, out, "Name: John Smith")
	assert.Contains(t, out, "Leadership, Python, SQL")
	assert.Contains(t, out, "Acme Corp - Engineer")
	assert.Contains(t, out, "2020 - Present")
	assert.Contains(t, out, "- Built things")
	assert.Contains(t, out, "State University - Bachelor of Science, Computer Science")
	assert.Contains(t, out, "GPA: 3.8")
	assert.Contains(t, out, "Overall Score: 6.40/10.0")
	assert.Contains(t, out, "ATS Score: 5.50/10.0")
	assert.Contains(t, out, "1. Add more technical skills relevant to your target role")
}

func TestTextRenderer_NilATS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TextRenderer{}).Render(&buf, sampleProfile(), nil))

	assert.NotContains(t, buf.String(), "ATS COMPATIBILITY")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONRenderer{}).Render(&buf, sampleProfile(), sampleATS()))

	var payload analysis.AnalyzeResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))

	assert.Equal(t, "John Smith", payload.Profile.Contact.Name)
	assert.Equal(t, []string{"Leadership", "Python", "SQL"}, payload.Profile.Skills)
	assert.InDelta(t, 6.4, payload.Profile.Analysis.OverallScore, 0.0001)
	assert.InDelta(t, 5.5, payload.ATS.ATSScore, 0.0001)
}

func TestHTMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&HTMLRenderer{}).Render(&buf, sampleProfile(), sampleATS()))
	out := buf.String()

	assert.Contains(t, out, "<title>Resume Analysis: resume.txt</title>")
	assert.Contains(t, out, "6.4/10")
	assert.Contains(t, out, "Engineer at Acme Corp")
	assert.Contains(t, out, `<span class="skill-tag">Python</span>`)
	assert.Contains(t, out, "ATS Compatibility")
}

func TestHTMLRenderer_EscapesContent(t *testing.T) {
	p := sampleProfile()
	p.Name = `<script>alert("x")</script>`

	var buf bytes.Buffer
	require.NoError(t, (&HTMLRenderer{}).Render(&buf, p, nil))

	assert.NotContains(t, buf.String(), "<script>alert")
}

func TestHTMLRenderer_ScoreColor(t *testing.T) {
	tests := []struct {
		overall float64
		color   string
	}{
		{8.0, "#28a745"},
		{5.5, "#ffc107"},
		{3.0, "#dc3545"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.color, string(scoreColor(tt.overall)))
	}
}

func TestTextRenderer_MinimalProfile(t *testing.T) {
	p := &analysis.Profile{Filename: "empty.txt", AnalyzedAt: time.Now()}

	var buf bytes.Buffer
	require.NoError(t, (&TextRenderer{}).Render(&buf, p, nil))
	out := buf.String()

	assert.Contains(t, out, "PERSONAL INFORMATION")
	assert.False(t, strings.Contains(out, "SKILLS\n"))
	assert.Contains(t, out, "Overall Score: 0.00/10.0")
}
