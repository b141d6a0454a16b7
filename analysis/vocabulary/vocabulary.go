// Package vocabulary holds the static keyword tables the extractors and
// scorers match against. A Store is loaded once at startup and treated as
// read-only from then on; every component receives it as an injected
// dependency rather than reaching for package globals.
package vocabulary

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScoringCategory groups skill keywords for the weighted category scores
type ScoringCategory struct {
	Name     string   `yaml:"name"`
	Weight   float64  `yaml:"weight"`
	Keywords []string `yaml:"keywords"`
}

// Store is the full keyword vocabulary. Fields are populated at construction
// and must not be mutated afterwards.
type Store struct {
	// Skills maps a category name to its skill terms; matching is
	// case-insensitive but output preserves this casing
	Skills map[string][]string `yaml:"skills"`

	// ATSKeywords holds the keyword sets the ATS analyzer scans for,
	// keyed by "technical", "soft" and "industry"
	ATSKeywords map[string][]string `yaml:"ats_keywords"`

	// RedFlags are phrases known to hurt automated screening
	RedFlags []string `yaml:"red_flags"`

	// ActionVerbs signal achievement-oriented content
	ActionVerbs []string `yaml:"action_verbs"`

	// DegreeKeywords identify degree lines in education entries
	DegreeKeywords []string `yaml:"degree_keywords"`

	// SectionHeaders maps a canonical section name to its header synonyms
	SectionHeaders map[string][]string `yaml:"section_headers"`

	// CommonHeaders is the closed set of bare header names that terminate
	// any section during segmentation
	CommonHeaders []string `yaml:"common_headers"`

	// ScoringCategories drive the per-category skill scores
	ScoringCategories []ScoringCategory `yaml:"scoring_categories"`
}

// Default returns the built-in vocabulary
func Default() *Store {
	return &Store{
		Skills:            defaultSkills(),
		ATSKeywords:       defaultATSKeywords(),
		RedFlags:          defaultRedFlags(),
		ActionVerbs:       defaultActionVerbs(),
		DegreeKeywords:    defaultDegreeKeywords(),
		SectionHeaders:    defaultSectionHeaders(),
		CommonHeaders:     defaultCommonHeaders(),
		ScoringCategories: defaultScoringCategories(),
	}
}

// Load reads a YAML override file on top of the defaults. Only the keys
// present in the file replace their default table; everything else keeps the
// built-in values.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary file: %w", err)
	}

	var override Store
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse vocabulary file: %w", err)
	}

	store := Default()
	if len(override.Skills) > 0 {
		store.Skills = override.Skills
	}
	if len(override.ATSKeywords) > 0 {
		store.ATSKeywords = override.ATSKeywords
	}
	if len(override.RedFlags) > 0 {
		store.RedFlags = override.RedFlags
	}
	if len(override.ActionVerbs) > 0 {
		store.ActionVerbs = override.ActionVerbs
	}
	if len(override.DegreeKeywords) > 0 {
		store.DegreeKeywords = override.DegreeKeywords
	}
	if len(override.SectionHeaders) > 0 {
		store.SectionHeaders = override.SectionHeaders
	}
	if len(override.CommonHeaders) > 0 {
		store.CommonHeaders = override.CommonHeaders
	}
	if len(override.ScoringCategories) > 0 {
		store.ScoringCategories = override.ScoringCategories
	}
	return store, nil
}

// HeadersFor returns the header synonyms for a canonical section name
func (s *Store) HeadersFor(section string) []string {
	return s.SectionHeaders[section]
}

func defaultSkills() map[string][]string {
	return map[string][]string{
		"programming_languages": {
			"Python", "Java", "JavaScript", "C++", "C#", "Ruby", "PHP", "Swift",
			"Kotlin", "Go", "Rust", "TypeScript", "Scala", "Perl", "R", "MATLAB",
			"Bash", "PowerShell", "SQL", "HTML", "CSS", "C", "Objective-C", "Dart",
			"Groovy", "VBA", "Lua", "Haskell", "Clojure", "F#", "COBOL", "Fortran",
		},
		"frameworks_libraries": {
			"React", "Angular", "Vue.js", "Django", "Flask", "Spring", "ASP.NET",
			"Express.js", "Node.js", "jQuery", "Bootstrap", "TensorFlow", "PyTorch",
			"Keras", "Pandas", "NumPy", "Scikit-learn", "Laravel", "Ruby on Rails",
			"Symfony", "Flutter", "React Native", "Xamarin", "Unity", "Unreal Engine",
			"Next.js", "Gatsby", "Redux", "Vuex", "MobX", "RxJS", "D3.js", "Three.js",
		},
		"databases": {
			"MySQL", "PostgreSQL", "MongoDB", "SQLite", "Oracle", "SQL Server",
			"Redis", "Cassandra", "Elasticsearch", "DynamoDB", "Firebase", "Neo4j",
			"MariaDB", "CouchDB", "Firestore", "Realm", "InfluxDB", "Couchbase",
		},
		"cloud_platforms": {
			"AWS", "Azure", "Google Cloud", "Heroku", "DigitalOcean", "Linode",
			"IBM Cloud", "Oracle Cloud", "Alibaba Cloud", "Salesforce", "Netlify",
			"Vercel", "Firebase", "AWS Lambda", "EC2", "S3", "RDS", "DynamoDB",
			"CloudFront", "Route 53", "IAM", "Azure Functions", "App Service",
			"Google App Engine", "Google Kubernetes Engine", "Cloud Functions",
		},
		"devops_tools": {
			"Docker", "Kubernetes", "Jenkins", "GitLab CI", "GitHub Actions",
			"Travis CI", "CircleCI", "Ansible", "Terraform", "Puppet", "Chef",
			"Vagrant", "Prometheus", "Grafana", "ELK Stack", "Nagios", "Zabbix",
			"New Relic", "Datadog", "Splunk", "Sentry", "Airflow", "Argo CD",
		},
		"version_control": {
			"Git", "SVN", "Mercurial", "GitHub", "GitLab", "Bitbucket", "Azure DevOps",
		},
		"methodologies": {
			"Agile", "Scrum", "Kanban", "Waterfall", "Lean", "XP", "TDD", "BDD",
			"DevOps", "CI/CD", "Microservices", "Serverless", "Domain-Driven Design",
		},
		"soft_skills": {
			"Communication", "Teamwork", "Problem Solving", "Critical Thinking",
			"Time Management", "Leadership", "Adaptability", "Creativity", "Collaboration",
			"Emotional Intelligence", "Conflict Resolution", "Decision Making",
			"Negotiation", "Presentation", "Public Speaking", "Mentoring", "Coaching",
		},
		"data_science": {
			"Machine Learning", "Deep Learning", "Natural Language Processing",
			"Computer Vision", "Data Mining", "Data Analysis", "Data Visualization",
			"Statistical Analysis", "A/B Testing", "Regression", "Classification",
			"Clustering", "Dimensionality Reduction", "Feature Engineering",
			"Reinforcement Learning", "Time Series Analysis", "Bayesian Methods",
		},
		"design": {
			"UI/UX", "Photoshop", "Illustrator", "Sketch", "Figma", "InDesign",
			"After Effects", "Premiere Pro", "Blender", "3D Modeling", "Animation",
			"Wireframing", "Prototyping", "User Research", "Usability Testing",
			"Responsive Design", "Graphic Design", "Typography", "Color Theory",
		},
		"project_management": {
			"JIRA", "Trello", "Asana", "Monday.com", "ClickUp", "Basecamp",
			"Microsoft Project", "Smartsheet", "Notion", "Confluence", "Slack",
			"Microsoft Teams", "Zoom", "Google Meet", "Risk Management",
			"Budgeting", "Resource Allocation", "Stakeholder Management",
		},
		"mobile_development": {
			"iOS", "Android", "Swift", "Kotlin", "Objective-C", "Java",
			"React Native", "Flutter", "Xamarin", "Ionic", "Cordova", "PhoneGap",
			"SwiftUI", "Jetpack Compose", "ARKit", "ARCore", "Core ML", "TensorFlow Lite",
		},
		"testing": {
			"Unit Testing", "Integration Testing", "Functional Testing", "End-to-End Testing",
			"Regression Testing", "Performance Testing", "Load Testing", "Stress Testing",
			"Security Testing", "Penetration Testing", "JUnit", "pytest", "Mocha", "Jest",
			"Selenium", "Cypress", "Appium", "TestNG", "Jasmine", "Karma", "Postman",
		},
		"security": {
			"Cybersecurity", "Network Security", "Application Security", "Cloud Security",
			"Encryption", "Authentication", "Authorization", "OAuth", "JWT", "SAML",
			"SSO", "Firewall", "VPN", "Intrusion Detection", "Penetration Testing",
			"Vulnerability Assessment", "Security Auditing", "Compliance", "GDPR", "HIPAA",
		},
	}
}

func defaultATSKeywords() map[string][]string {
	return map[string][]string{
		"technical": {
			"python", "javascript", "java", "c++", "sql", "html", "css", "react", "angular", "vue",
			"node.js", "django", "flask", "spring", "aws", "azure", "gcp", "docker", "kubernetes",
			"git", "jenkins", "ci/cd", "agile", "scrum", "api", "rest", "graphql", "microservices",
			"machine learning", "ai", "data science", "analytics", "database", "postgresql", "mongodb",
			"redis", "elasticsearch", "kafka", "rabbitmq", "terraform", "ansible", "linux", "unix",
		},
		"soft": {
			"leadership", "communication", "teamwork", "collaboration", "problem solving",
			"critical thinking", "adaptability", "time management", "project management",
			"mentoring", "training", "presentation", "negotiation", "customer service",
			"analytical", "creative", "innovative", "detail oriented", "self motivated",
		},
		"industry": {
			"fintech", "healthcare", "e-commerce", "saas", "startup", "enterprise",
			"cybersecurity", "devops", "cloud computing", "mobile development",
			"web development", "full stack", "frontend", "backend", "database administration",
		},
	}
}

func defaultRedFlags() []string {
	return []string{
		"objective", "references available upon request", "hobbies", "personal interests",
		"marital status", "age", "date of birth", "photo", "picture",
	}
}

func defaultActionVerbs() []string {
	return []string{
		"achieved", "developed", "implemented", "managed", "led", "created", "designed",
		"improved", "increased", "reduced", "optimized", "delivered", "executed",
		"coordinated", "facilitated", "established", "built", "launched", "streamlined",
	}
}

func defaultDegreeKeywords() []string {
	return []string{
		"Bachelor", "Master", "PhD", "Doctorate", "Associate", "BS", "BA", "MS", "MA",
		"BSc", "MSc", "BBA", "MBA", "B.S.", "M.S.", "B.A.", "M.A.", "Ph.D.", "B.Tech",
		"M.Tech", "B.E.", "M.E.", "Certificate", "Diploma",
	}
}

func defaultSectionHeaders() map[string][]string {
	return map[string][]string{
		"summary": {
			"summary", "professional summary", "profile", "professional profile",
			"objective", "career objective", "about me", "career summary",
		},
		"skills": {
			"skills", "technical skills", "core skills", "key skills",
			"professional skills", "competencies", "areas of expertise",
		},
		"experience": {
			"experience", "work experience", "employment history", "professional experience",
			"career history", "work history",
		},
		"education": {
			"education", "academic background", "educational background", "academic history",
			"educational history", "academic qualifications", "educational qualifications",
		},
		"projects": {
			"projects", "personal projects", "professional projects", "key projects",
		},
		"certifications": {
			"certifications", "certificates", "professional certifications", "credentials",
		},
		"languages": {
			"languages", "language proficiencies",
		},
	}
}

func defaultCommonHeaders() []string {
	return []string{
		"skills", "education", "experience", "projects",
		"certifications", "summary", "objective", "profile",
		"work experience", "employment", "languages",
	}
}

func defaultScoringCategories() []ScoringCategory {
	return []ScoringCategory{
		{
			Name:   "technical",
			Weight: 0.6,
			Keywords: []string{
				"programming", "language", "framework", "library", "database",
				"cloud", "devops", "version control", "testing", "security",
			},
		},
		{
			Name:   "soft",
			Weight: 0.2,
			Keywords: []string{
				"communication", "teamwork", "problem solving", "critical thinking",
				"time management", "leadership", "adaptability", "creativity",
			},
		},
		{
			Name:   "domain",
			Weight: 0.2,
			Keywords: []string{
				"industry", "domain", "sector", "field", "business", "finance",
				"healthcare", "education", "retail", "manufacturing", "technology",
			},
		},
	}
}
