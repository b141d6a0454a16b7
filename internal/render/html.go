package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/Abraxas-365/sift/analysis"
)

// HTMLRenderer writes a standalone HTML report with score-colored headline
// numbers
type HTMLRenderer struct{}

func (r *HTMLRenderer) Extension() string { return "html" }

type htmlSkillScore struct {
	Name  string
	Score float64
}

type htmlReport struct {
	Profile     *analysis.Profile
	ATS         *analysis.ATSReport
	ScoreColor  template.CSS
	AnalyzedAt  string
	SkillScores []htmlSkillScore
}

func (r *HTMLRenderer) Render(w io.Writer, p *analysis.Profile, ats *analysis.ATSReport) error {
	report := htmlReport{
		Profile:    p,
		ATS:        ats,
		ScoreColor: scoreColor(p.Scores.Overall),
		AnalyzedAt: p.AnalyzedAt.Format("2006-01-02 15:04:05"),
	}
	for _, name := range sortedKeys(p.Scores.SkillCategories) {
		report.SkillScores = append(report.SkillScores, htmlSkillScore{
			Name:  name,
			Score: p.Scores.SkillCategories[name],
		})
	}
	return reportTemplate.Execute(w, report)
}

func scoreColor(overall float64) template.CSS {
	switch {
	case overall >= 7.0:
		return "#28a745"
	case overall >= 5.0:
		return "#ffc107"
	}
	return "#dc3545"
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"score": func(v float64) string { return fmt.Sprintf("%.1f", v) },
}).Parse(reportHTML))

const reportHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Resume Analysis: {{.Profile.Filename}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
        }
        h1, h2, h3 { color: #2c3e50; }
        .section {
            margin-bottom: 30px;
            border-bottom: 1px solid #eee;
            padding-bottom: 20px;
        }
        .score {
            font-size: 24px;
            font-weight: bold;
            color: {{.ScoreColor}};
        }
        .recommendations {
            background-color: #f8f9fa;
            padding: 15px;
            border-radius: 5px;
            border-left: 5px solid #007bff;
        }
        .skill-tag {
            display: inline-block;
            background-color: #e9ecef;
            padding: 5px 10px;
            margin: 5px;
            border-radius: 15px;
            font-size: 14px;
        }
        .experience-item, .education-item {
            margin-bottom: 15px;
            padding-left: 10px;
            border-left: 3px solid #007bff;
        }
    </style>
</head>
<body>
    <h1>Resume Analysis: {{.Profile.Filename}}</h1>
    <p>Analyzed on: {{.AnalyzedAt}}</p>

    <div class="section">
        <h2>Overall Score</h2>
        <p class="score">{{score .Profile.Scores.Overall}}/10</p>
        <p>This score is based on an evaluation of your skills, experience, and education.</p>
    </div>

    <div class="section">
        <h2>Personal Information</h2>
        {{if or .Profile.Name .Profile.Email .Profile.Phone .Profile.Location .Profile.LinkedIn .Profile.Website}}
        <p>
            {{with .Profile.Name}}<strong>Name:</strong> {{.}}<br>{{end}}
            {{with .Profile.Email}}<strong>Email:</strong> {{.}}<br>{{end}}
            {{with .Profile.Phone}}<strong>Phone:</strong> {{.}}<br>{{end}}
            {{with .Profile.Location}}<strong>Location:</strong> {{.}}<br>{{end}}
            {{with .Profile.LinkedIn}}<strong>LinkedIn:</strong> <a href="https://{{.}}">{{.}}</a><br>{{end}}
            {{with .Profile.Website}}<strong>Website:</strong> <a href="{{.}}">{{.}}</a>{{end}}
        </p>
        {{else}}<p>No personal information found.</p>{{end}}
    </div>

    {{with .Profile.Summary}}
    <div class="section">
        <h2>Summary</h2>
        <p>{{.}}</p>
    </div>
    {{end}}

    <div class="section">
        <h2>Skills</h2>
        <div>
            {{range .Profile.Skills}}<span class="skill-tag">{{.}}</span>{{else}}<p>No skills found.</p>{{end}}
        </div>
        <p>Skill Score: <strong>{{score .Profile.Scores.Skills}}/10</strong></p>
    </div>

    <div class="section">
        <h2>Experience</h2>
        {{range .Profile.Experience}}
        <div class="experience-item">
            <h3>{{.Title}} at {{.Company}}</h3>
            {{if or .StartDate .EndDate}}<p>{{.StartDate}}{{if and .StartDate .EndDate}} - {{end}}{{.EndDate}}</p>{{end}}
            {{with .Location}}<p>{{.}}</p>{{end}}
            {{with .Description}}<p>{{.}}</p>{{end}}
            {{if .Responsibilities}}
            <ul>
                {{range .Responsibilities}}<li>{{.}}</li>{{end}}
            </ul>
            {{end}}
        </div>
        {{else}}<p>No work experience found.</p>{{end}}
        <p>Experience Score: <strong>{{score .Profile.Scores.Experience}}/10</strong></p>
    </div>

    <div class="section">
        <h2>Education</h2>
        {{range .Profile.Education}}
        <div class="education-item">
            <h3>{{.Institution}}</h3>
            <p>{{.Degree}}{{with .Field}}, {{.}}{{end}}</p>
            {{if or .StartDate .EndDate}}<p>{{.StartDate}}{{if and .StartDate .EndDate}} - {{end}}{{.EndDate}}</p>{{end}}
            {{with .Location}}<p>{{.}}</p>{{end}}
            {{with .GPA}}<p>GPA: {{.}}</p>{{end}}
            {{with .Description}}<p>{{.}}</p>{{end}}
        </div>
        {{else}}<p>No education information found.</p>{{end}}
        <p>Education Score: <strong>{{score .Profile.Scores.Education}}/10</strong></p>
    </div>

    {{if .SkillScores}}
    <div class="section">
        <h2>Skill Category Scores</h2>
        <ul>
            {{range .SkillScores}}<li>{{.Name}}: {{score .Score}}/10</li>{{end}}
        </ul>
    </div>
    {{end}}

    {{with .ATS}}
    <div class="section">
        <h2>ATS Compatibility</h2>
        <p class="score">{{score .ATSScore}}/10</p>
        <ul>
            <li>Keyword: {{score .DetailedScores.Keyword}}</li>
            <li>Format: {{score .DetailedScores.Format}}</li>
            <li>Structure: {{score .DetailedScores.Structure}}</li>
            <li>Content: {{score .DetailedScores.Content}}</li>
            <li>Completeness: {{score .DetailedScores.Completeness}}</li>
        </ul>
        {{if .RedFlags}}
        <h3>Red Flags</h3>
        <ul>
            {{range .RedFlags}}<li>{{.}}</li>{{end}}
        </ul>
        {{end}}
        {{if .Recommendations}}
        <h3>ATS Recommendations</h3>
        <ul>
            {{range .Recommendations}}<li>{{.}}</li>{{end}}
        </ul>
        {{end}}
    </div>
    {{end}}

    <div class="section recommendations">
        <h2>Recommendations</h2>
        <ul>
            {{range .Profile.Recommendations}}<li>{{.}}</li>{{else}}<li>No specific recommendations.</li>{{end}}
        </ul>
    </div>

    <footer>
        <p>Generated by sift</p>
    </footer>
</body>
</html>
`
