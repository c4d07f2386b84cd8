// Package taxonomy provides the canonical skill vocabulary, alias resolution,
// and the string-similarity primitives used by the matching engine.
package taxonomy

import (
	"regexp"
	"strings"
)

// maxSkillNameLength is the longest skill name accepted as valid.
const maxSkillNameLength = 100

// canonicalSkills maps each canonical display name to the alias spellings that
// resolve to it. The table is read-only after package initialization.
var canonicalSkills = map[string][]string{
	// Languages
	"Go":         {"golang", "go lang"},
	"JavaScript": {"js", "ecmascript", "es6"},
	"TypeScript": {"ts"},
	"Python":     {"python3", "python 3"},
	"Java":       {},
	"C#":         {"csharp", "c sharp", "c-sharp"},
	"C++":        {"cpp", "cplusplus", "c plus plus"},
	"Ruby":       {},
	"PHP":        {},
	"Swift":      {},
	"Kotlin":     {},
	"Rust":       {},
	"Scala":      {},
	"SQL":        {},
	"HTML":       {"html5"},
	"CSS":        {"css3"},
	"Bash":       {"shell scripting", "shell"},

	// Frontend
	"React":        {"reactjs", "react.js"},
	"Angular":      {"angularjs", "angular.js"},
	"Vue":          {"vuejs", "vue.js"},
	"Next.js":      {"nextjs", "next js"},
	"Svelte":       {"sveltejs"},
	"Redux":        {},
	"jQuery":       {},
	"Tailwind CSS": {"tailwind", "tailwindcss"},
	"Bootstrap":    {},
	"Sass":         {"scss"},
	"Webpack":      {},
	"Vite":         {},

	// Backend
	"Node.js":  {"nodejs", "node js", "node"},
	"Express":  {"expressjs", "express.js"},
	"Django":   {},
	"Flask":    {},
	"FastAPI":  {},
	"Spring":   {"spring boot", "springboot"},
	"Rails":    {"ruby on rails", "ror"},
	"Laravel":  {},
	".NET":     {"dotnet", "dot net", "asp.net", "aspnet"},
	"GraphQL":  {},
	"REST":     {"rest api", "rest apis", "restful", "restful api", "restful apis"},
	"gRPC":     {},
	"WebSocket": {"websockets"},

	// Databases
	"PostgreSQL":    {"postgres", "psql"},
	"MySQL":         {},
	"MongoDB":       {"mongo"},
	"Redis":         {},
	"SQLite":        {},
	"Elasticsearch": {"elastic search"},
	"Cassandra":     {},
	"DynamoDB":      {"dynamo db"},
	"SQL Server":    {"mssql", "microsoft sql server"},
	"Oracle":        {"oracle db"},
	"Prisma":        {},

	// Cloud
	"AWS":          {"amazon web services"},
	"Azure":        {"microsoft azure"},
	"Google Cloud": {"gcp", "google cloud platform"},
	"Firebase":     {},
	"Heroku":       {},
	"Vercel":       {},
	"Netlify":      {},
	"Supabase":     {},

	// DevOps
	"Docker":         {"docker compose", "docker-compose"},
	"Kubernetes":     {"k8s", "k8"},
	"Terraform":      {},
	"Ansible":        {},
	"Jenkins":        {},
	"Git":            {},
	"GitHub Actions": {"github workflows"},
	"GitLab CI":      {"gitlab ci/cd"},
	"CI/CD":          {"cicd", "ci cd", "continuous integration"},
	"Linux":          {},
	"Nginx":          {},
	"Prometheus":     {},
	"Grafana":        {},

	// Testing
	"Jest":       {"jestjs"},
	"Cypress":    {},
	"Selenium":   {},
	"Playwright": {},
	"Mocha":      {},
	"JUnit":      {},
	"pytest":     {"py.test"},
	"TDD":        {"test driven development", "test-driven development"},

	// Mobile
	"React Native": {"reactnative"},
	"Flutter":      {},
	"iOS":          {},
	"Android":      {},

	// Data / ML
	"TensorFlow":       {"tensor flow"},
	"PyTorch":          {},
	"Pandas":           {},
	"NumPy":            {},
	"scikit-learn":     {"sklearn", "scikit learn"},
	"Spark":            {"apache spark", "pyspark"},
	"Kafka":            {"apache kafka"},
	"RabbitMQ":         {},
	"Machine Learning": {"ml"},
	"Deep Learning":    {},
	"NLP":              {"natural language processing"},

	// Design
	"Figma":     {},
	"Sketch":    {},
	"Photoshop": {"adobe photoshop"},
	"UI/UX":     {"ui ux", "ux/ui"},

	// Methodologies & architecture
	"Agile":         {"agile methodologies"},
	"Scrum":         {},
	"Kanban":        {},
	"Microservices": {"microservice", "micro services", "microservice architecture"},
}

// aliasIndex maps every alias and canonical name to its canonical form. Keys
// are stored cleaned and lowercased so that lookups against cleaned input
// still reach names whose spelling carries stripped characters ("UI/UX",
// "GitLab CI/CD"). Built once below; never mutated afterwards.
var aliasIndex = buildAliasIndex()

func buildAliasIndex() map[string]string {
	index := make(map[string]string, len(canonicalSkills)*2)
	for canonical, aliases := range canonicalSkills {
		index[strings.ToLower(Clean(canonical))] = canonical
		for _, alias := range aliases {
			index[strings.ToLower(Clean(alias))] = canonical
		}
	}
	return index
}

var (
	invalidCharPattern = regexp.MustCompile(`[^A-Za-z0-9 .#+\-]`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
	numericPattern     = regexp.MustCompile(`^[0-9]+$`)
)

// Clean trims the input, strips characters outside the skill-name alphabet
// (letters, digits, space, '.', '#', '+', '-'), and collapses internal whitespace.
func Clean(s string) string {
	s = invalidCharPattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// IsValidSkillName reports whether s is usable as a skill name: non-empty after
// trimming, at most 100 characters, and not purely numeric.
func IsValidSkillName(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || len(trimmed) > maxSkillNameLength {
		return false
	}
	return !numericPattern.MatchString(trimmed)
}

// Normalize resolves a skill name to its canonical form via the alias table.
// Unknown names are returned cleaned but otherwise unchanged. Normalize never
// fails and is idempotent.
func Normalize(name string) string {
	cleaned := Clean(name)
	if cleaned == "" {
		return ""
	}
	if canonical, ok := aliasIndex[strings.ToLower(cleaned)]; ok {
		return canonical
	}
	return cleaned
}

// Canonical resolves a skill name through the alias table and reports whether
// the name belongs to the known vocabulary.
func Canonical(name string) (string, bool) {
	cleaned := Clean(name)
	if cleaned == "" {
		return "", false
	}
	canonical, ok := aliasIndex[strings.ToLower(cleaned)]
	if !ok {
		return cleaned, false
	}
	return canonical, true
}
