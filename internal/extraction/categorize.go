package extraction

import "sort"

// Category names for bucketed extraction output.
const (
	CategoryProgramming = "programming"
	CategoryFrontend    = "frontend"
	CategoryBackend     = "backend"
	CategoryDatabase    = "database"
	CategoryCloud       = "cloud"
	CategoryDevOps      = "devops"
	CategoryMobile      = "mobile"
	CategoryDesign      = "design"
	CategoryOther       = "other"
)

// skillCategories maps canonical skill names to their bucket. Skills absent
// from the table land in "other".
var skillCategories = map[string]string{
	"Go": CategoryProgramming, "JavaScript": CategoryProgramming, "TypeScript": CategoryProgramming,
	"Python": CategoryProgramming, "Java": CategoryProgramming, "C#": CategoryProgramming,
	"C++": CategoryProgramming, "Ruby": CategoryProgramming, "PHP": CategoryProgramming,
	"Swift": CategoryProgramming, "Kotlin": CategoryProgramming, "Rust": CategoryProgramming,
	"Scala": CategoryProgramming, "SQL": CategoryProgramming, "Bash": CategoryProgramming,

	"React": CategoryFrontend, "Angular": CategoryFrontend, "Vue": CategoryFrontend,
	"Next.js": CategoryFrontend, "Svelte": CategoryFrontend, "Redux": CategoryFrontend,
	"jQuery": CategoryFrontend, "Tailwind CSS": CategoryFrontend, "Bootstrap": CategoryFrontend,
	"Sass": CategoryFrontend, "Webpack": CategoryFrontend, "Vite": CategoryFrontend,
	"HTML": CategoryFrontend, "CSS": CategoryFrontend,

	"Node.js": CategoryBackend, "Express": CategoryBackend, "Django": CategoryBackend,
	"Flask": CategoryBackend, "FastAPI": CategoryBackend, "Spring": CategoryBackend,
	"Rails": CategoryBackend, "Laravel": CategoryBackend, ".NET": CategoryBackend,
	"GraphQL": CategoryBackend, "REST": CategoryBackend, "gRPC": CategoryBackend,
	"WebSocket": CategoryBackend, "Microservices": CategoryBackend,

	"PostgreSQL": CategoryDatabase, "MySQL": CategoryDatabase, "MongoDB": CategoryDatabase,
	"Redis": CategoryDatabase, "SQLite": CategoryDatabase, "Elasticsearch": CategoryDatabase,
	"Cassandra": CategoryDatabase, "DynamoDB": CategoryDatabase, "SQL Server": CategoryDatabase,
	"Oracle": CategoryDatabase, "Prisma": CategoryDatabase,

	"AWS": CategoryCloud, "Azure": CategoryCloud, "Google Cloud": CategoryCloud,
	"Firebase": CategoryCloud, "Heroku": CategoryCloud, "Vercel": CategoryCloud,
	"Netlify": CategoryCloud, "Supabase": CategoryCloud,

	"Docker": CategoryDevOps, "Kubernetes": CategoryDevOps, "Terraform": CategoryDevOps,
	"Ansible": CategoryDevOps, "Jenkins": CategoryDevOps, "Git": CategoryDevOps,
	"GitHub Actions": CategoryDevOps, "GitLab CI": CategoryDevOps, "CI/CD": CategoryDevOps,
	"Linux": CategoryDevOps, "Nginx": CategoryDevOps, "Prometheus": CategoryDevOps,
	"Grafana": CategoryDevOps,

	"React Native": CategoryMobile, "Flutter": CategoryMobile,
	"iOS": CategoryMobile, "Android": CategoryMobile,

	"Figma": CategoryDesign, "Sketch": CategoryDesign,
	"Photoshop": CategoryDesign, "UI/UX": CategoryDesign,
}

// Categorize extracts skills from a description and buckets them by category.
// Only non-empty buckets appear in the result; each bucket is sorted for
// deterministic output. Empty input yields an empty map.
func Categorize(description string) map[string][]string {
	buckets := make(map[string][]string)
	for skill := range extractSet(description) {
		category, ok := skillCategories[skill]
		if !ok {
			category = CategoryOther
		}
		buckets[category] = append(buckets[category], skill)
	}

	for _, skills := range buckets {
		sort.Strings(skills)
	}
	return buckets
}
