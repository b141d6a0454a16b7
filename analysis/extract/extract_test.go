package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abraxas-365/sift/analysis"
	"github.com/Abraxas-365/sift/analysis/vocabulary"
	"github.com/Abraxas-365/sift/pkg/kernel"
)

const sampleResume = `John Smith
john.smith@example.com
555-123-4567
linkedin.com/in/johnsmith
New York, NY

SUMMARY
Seasoned software engineer with eight years building backend services.

SKILLS
Python, SQL, Leadership, Kubernetes

EXPERIENCE
Acme Corp - Software Engineer
Jan 2020 - Present
- Built data pipelines in Python
- Led a team of four engineers

EDUCATION
State University - Bachelor of Science in Computer Science
Attended 2012 - 2016, GPA: 3.8
`

func testBuilder(text string) *analysis.Builder {
	return analysis.NewBuilder(kernel.NewAnalysisID("test-analysis"), text, "resume.txt")
}

func TestContact(t *testing.T) {
	b := testBuilder(sampleResume)
	New(vocabulary.Default()).Contact(sampleResume, b)
	p := b.Seal()

	assert.Equal(t, "John Smith", p.Name)
	assert.Equal(t, "john.smith@example.com", p.Email)
	assert.Equal(t, "555-123-4567", p.Phone)
	assert.Equal(t, "linkedin.com/in/johnsmith", p.LinkedIn)
	assert.Equal(t, "New York, NY", p.Location)
}

func TestContact_ParenthesizedPhone(t *testing.T) {
	b := testBuilder("")
	New(vocabulary.Default()).Contact("Jane Doe\n(555) 123-4567\n", b)

	assert.Equal(t, "(555) 123-4567", b.Seal().Phone)
}

func TestContact_NameSkipsDocumentLabel(t *testing.T) {
	b := testBuilder("")
	New(vocabulary.Default()).Contact("Curriculum Vitae\nJane Doe\n", b)

	assert.Equal(t, "Jane Doe", b.Seal().Name)
}

func TestContact_WebsiteFiltersJobSites(t *testing.T) {
	text := "Jane Doe\nhttps://www.linkedin.com/in/janedoe\nhttps://janedoe.dev/portfolio\n"
	b := testBuilder(text)
	New(vocabulary.Default()).Contact(text, b)

	assert.Equal(t, "https://janedoe.dev/portfolio", b.Seal().Website)
}

func TestSummary(t *testing.T) {
	b := testBuilder(sampleResume)
	New(vocabulary.Default()).Summary(sampleResume, b)

	assert.Equal(t, "Seasoned software engineer with eight years building backend services.", b.Seal().Summary)
}

func TestSkills_UnionOfVocabularyAndSection(t *testing.T) {
	b := testBuilder(sampleResume)
	New(vocabulary.Default()).Skills(sampleResume, b)
	p := b.Seal()

	assert.Contains(t, p.Skills, "Python")
	assert.Contains(t, p.Skills, "SQL")
	assert.Contains(t, p.Skills, "Kubernetes")
	assert.Contains(t, p.Skills, "Leadership")
}

func TestSkills_SectionTokenLengthBounds(t *testing.T) {
	text := "SKILLS\nGo, X, a fragment of prose far too long to plausibly be the name of one skill\n"
	b := testBuilder(text)
	New(vocabulary.Default()).Skills(text, b)
	p := b.Seal()

	assert.Contains(t, p.Skills, "Go")
	assert.NotContains(t, p.Skills, "X")
}

func TestExperience(t *testing.T) {
	b := testBuilder(sampleResume)
	New(vocabulary.Default()).Experience(sampleResume, b)
	p := b.Seal()

	require.Len(t, p.Experience, 1)
	exp := p.Experience[0]
	assert.Equal(t, "Acme Corp", exp.Company)
	assert.Equal(t, "Software Engineer", exp.Title)
	assert.Equal(t, "2020", exp.StartDate)
	assert.Equal(t, "Present", exp.EndDate)
	assert.Equal(t, []string{"Built data pipelines in Python", "Led a team of four engineers"}, exp.Responsibilities)
}

func TestExperience_TitleAtCompany(t *testing.T) {
	text := "EXPERIENCE\nSenior Engineer at Globex Inc\nemployed 2018 - 2020\n"
	b := testBuilder(text)
	New(vocabulary.Default()).Experience(text, b)
	p := b.Seal()

	require.Len(t, p.Experience, 1)
	assert.Equal(t, "Globex Inc", p.Experience[0].Company)
	assert.Equal(t, "Senior Engineer", p.Experience[0].Title)
	assert.Equal(t, "2018", p.Experience[0].StartDate)
	assert.Equal(t, "2020", p.Experience[0].EndDate)
}

func TestExperience_CurrentNormalizedToPresent(t *testing.T) {
	text := "EXPERIENCE\nGlobex Inc - Engineer\nsince 2019 - current\n"
	b := testBuilder(text)
	New(vocabulary.Default()).Experience(text, b)
	p := b.Seal()

	require.Len(t, p.Experience, 1)
	assert.Equal(t, "Present", p.Experience[0].EndDate)
}

func TestExperience_MonthDateRange(t *testing.T) {
	text := "EXPERIENCE\nGlobex Inc - Engineer\nJan 2020 - Jan 2022\n"
	b := testBuilder(text)
	New(vocabulary.Default()).Experience(text, b)
	p := b.Seal()

	require.Len(t, p.Experience, 1)
	assert.Equal(t, "Jan 2020", p.Experience[0].StartDate)
	assert.Equal(t, "Jan 2022", p.Experience[0].EndDate)
}

func TestExperience_MissingSection(t *testing.T) {
	b := testBuilder("no sections here")
	New(vocabulary.Default()).Experience("no sections here", b)

	assert.Empty(t, b.Seal().Experience)
}

func TestEducation(t *testing.T) {
	b := testBuilder(sampleResume)
	New(vocabulary.Default()).Education(sampleResume, b)
	p := b.Seal()

	require.Len(t, p.Education, 1)
	edu := p.Education[0]
	assert.Equal(t, "State University", edu.Institution)
	assert.Equal(t, "Bachelor of Science in Computer Science", edu.Degree)
	assert.Equal(t, "Computer Science", edu.Field)
	assert.Equal(t, "2012", edu.StartDate)
	assert.Equal(t, "2016", edu.EndDate)
	require.NotNil(t, edu.GPA)
	assert.InDelta(t, 3.8, *edu.GPA, 0.001)
}

func TestEducation_DegreeKeywordFallback(t *testing.T) {
	text := "EDUCATION\nuniversity of somewhere\nearned an MBA there\n"
	b := testBuilder(text)
	New(vocabulary.Default()).Education(text, b)
	p := b.Seal()

	require.Len(t, p.Education, 1)
	assert.Equal(t, "university of somewhere", p.Education[0].Institution)
	assert.Equal(t, "earned an MBA there", p.Education[0].Degree)
}

func TestEducation_FieldFromLabeledLine(t *testing.T) {
	text := "EDUCATION\nsome school\nno degree wording here\nanother filler line\nfourth line, Major: Applied Mathematics\n"
	b := testBuilder(text)
	New(vocabulary.Default()).Education(text, b)
	p := b.Seal()

	require.Len(t, p.Education, 1)
	assert.Equal(t, "Applied Mathematics", p.Education[0].Field)
}

func TestCertifications(t *testing.T) {
	text := "CERTIFICATIONS\n- AWS Certified Solutions Architect - Amazon Web Services\n- CKA\n"
	b := testBuilder(text)
	New(vocabulary.Default()).Certifications(text, b)
	p := b.Seal()

	require.Len(t, p.Certifications, 2)
	assert.Equal(t, "AWS Certified Solutions Architect", p.Certifications[0].Name)
	assert.Equal(t, "Amazon Web Services", p.Certifications[0].Issuer)
	assert.Equal(t, "CKA", p.Certifications[1].Name)
}

func TestLanguages(t *testing.T) {
	text := "LANGUAGES\nEnglish - Native\nSpanish (Professional)\n"
	b := testBuilder(text)
	New(vocabulary.Default()).Languages(text, b)
	p := b.Seal()

	require.Len(t, p.Languages, 2)
	assert.Equal(t, "English", p.Languages[0].Language)
	assert.Equal(t, "Native", p.Languages[0].Proficiency)
	assert.Equal(t, "Spanish", p.Languages[1].Language)
	assert.Equal(t, "Professional", p.Languages[1].Proficiency)
}

func TestProjects(t *testing.T) {
	text := "PROJECTS\nlog pipeline tool\n- streaming ingest built with Go and Kafka\nhttps://github.com/janedoe/pipeline\n"
	b := testBuilder(text)
	New(vocabulary.Default()).Projects(text, b)
	p := b.Seal()

	require.Len(t, p.Projects, 1)
	proj := p.Projects[0]
	assert.Equal(t, "log pipeline tool", proj.Name)
	assert.Contains(t, proj.Description, "streaming ingest")
	assert.Contains(t, proj.Technologies, "Go")
	assert.Equal(t, "https://github.com/janedoe/pipeline", proj.URL)
}
