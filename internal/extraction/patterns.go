// Package extraction mines technical skill mentions out of unstructured job
// description text.
package extraction

import "regexp"

// skillPatterns is the fixed battery of technology-name patterns applied to the
// full description text. Grouped by technology family; all case-insensitive and
// word-bounded. Multi-word and punctuated names are listed before their short
// forms so the longest spelling wins within a pattern.
var skillPatterns = []*regexp.Regexp{
	// Languages
	regexp.MustCompile(`(?i)\b(golang|javascript|typescript|python|java|ruby|php|swift|kotlin|rust|scala|html5?|css3?|sql|bash)\b`),

	// Frontend frameworks and tooling
	regexp.MustCompile(`(?i)\b(react(?:\.js|js| native)?|angular(?:\.js|js)?|vue(?:\.js|js)?|next\.?js|svelte|redux|jquery|tailwind(?: css)?|bootstrap|sass|scss|webpack|vite)\b`),

	// Backend frameworks and APIs
	regexp.MustCompile(`(?i)\b(node(?:\.js|js)?|express(?:\.js|js)?|django|flask|fastapi|spring(?: boot)?|ruby on rails|rails|laravel|dotnet|asp\.net|graphql|grpc|rest(?:ful)?(?: apis?)?|websockets?)\b`),

	// Databases
	regexp.MustCompile(`(?i)\b(postgres(?:ql)?|mysql|mongodb|mongo|redis|sqlite|elasticsearch|cassandra|dynamodb|sql server|oracle|prisma)\b`),

	// Cloud platforms
	regexp.MustCompile(`(?i)\b(aws|amazon web services|azure|gcp|google cloud(?: platform)?|firebase|heroku|vercel|netlify|supabase)\b`),

	// DevOps and infrastructure
	regexp.MustCompile(`(?i)\b(docker(?:-compose| compose)?|kubernetes|k8s|terraform|ansible|jenkins|github actions|gitlab ci|git|ci/cd|cicd|linux|nginx|prometheus|grafana)\b`),

	// Testing
	regexp.MustCompile(`(?i)\b(jest|cypress|selenium|playwright|mocha|junit|pytest|tdd|test[- ]driven development)\b`),

	// Mobile
	regexp.MustCompile(`(?i)\b(react native|flutter|ios|android)\b`),

	// Data and ML
	regexp.MustCompile(`(?i)\b(tensorflow|pytorch|pandas|numpy|scikit[- ]learn|sklearn|apache spark|spark|kafka|rabbitmq|machine learning|deep learning|nlp|natural language processing)\b`),

	// Design
	regexp.MustCompile(`(?i)\b(figma|sketch|photoshop|ui/ux|ux/ui)\b`),

	// Methodologies and architecture
	regexp.MustCompile(`(?i)\b(agile|scrum|kanban|microservices?)\b`),
}

// punctuatedSkillPattern catches names RE2 word boundaries cannot delimit:
// terms ending in '+' or '#' or starting with '.'. The leading character class
// stands in for the missing lookbehind; the captured group is the skill itself.
var punctuatedSkillPattern = regexp.MustCompile(`(?i)(?:^|[\s(,;/])(c\+\+|c#|\.net)`)

// signalPhrases introduce requirement lists in free text. The scanner inspects
// a fixed window after each occurrence and also splits delimited lists there.
var signalPhrases = []string{
	"experience with",
	"experience in",
	"experience using",
	"knowledge of",
	"proficiency in",
	"proficient in",
	"proficient with",
	"familiar with",
	"familiarity with",
	"expertise in",
	"working with",
	"skilled in",
	"background in",
	"tech stack:",
	"technologies:",
	"technology stack:",
	"requirements:",
	"skills:",
	"must have",
	"nice to have",
}

// signalWindowSize is how many characters after a signal phrase are scanned.
const signalWindowSize = 100

// listDelimiterPattern splits delimited skill lists after signal phrases.
var listDelimiterPattern = regexp.MustCompile(`[,;/]| and `)

// listTerminatorPattern ends a delimited list at sentence or line boundaries.
var listTerminatorPattern = regexp.MustCompile(`[.\n!?]`)
