package extraction

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/cretiq/skillmatch/internal/taxonomy"
)

// Implausible experience requirements are discarded.
const maxPlausibleYears = 20

// SkillExperience pairs an extracted skill with the years of experience the
// posting asks for.
type SkillExperience struct {
	Skill         string `json:"skill"`
	YearsRequired int    `json:"years_required"`
}

// yearsPatterns match numeric experience requirements. Group 1 is the year
// count, group 2 the skill phrase that follows. The phrase capture is
// non-greedy and ends at the first sentence boundary so that back-to-back
// requirements stay separate matches; a dot inside a name ("Node.js") does
// not terminate because it is not followed by whitespace.
var yearsPatterns = []*regexp.Regexp{
	// "3+ years of React", "5 years' experience with Kubernetes"
	regexp.MustCompile(`(?i)(\d{1,2})\+?\s*(?:years?|yrs?)['’]?\s*(?:of\s+)?(?:experience\s+)?(?:with\s+|in\s+|using\s+)?([A-Za-z][A-Za-z0-9 .#+\-]{0,40}?)(?:[.!?](?:\s|$)|[,;\n]|\s+and\s|$)`),
	// "at least 4 years Python", "minimum of 2 years Go"
	regexp.MustCompile(`(?i)(?:at least|minimum(?: of)?)\s+(\d{1,2})\s*(?:years?|yrs?)\s+(?:of\s+)?([A-Za-z][A-Za-z0-9 .#+\-]{0,40}?)(?:[.!?](?:\s|$)|[,;\n]|\s+and\s|$)`),
}

// ExtractWithExperience mines skills together with required years of
// experience. Results with implausible year counts (<= 0 or > 20) are
// discarded; duplicate skills keep the highest requirement. Empty input yields
// an empty slice.
func ExtractWithExperience(description string) []SkillExperience {
	if strings.TrimSpace(description) == "" {
		return []SkillExperience{}
	}

	byName := make(map[string]int)
	for _, pattern := range yearsPatterns {
		for _, groups := range pattern.FindAllStringSubmatch(description, -1) {
			years, err := strconv.Atoi(groups[1])
			if err != nil || years <= 0 || years > maxPlausibleYears {
				continue
			}

			skill, ok := firstKnownSkill(groups[2])
			if !ok {
				continue
			}
			if years > byName[skill] {
				byName[skill] = years
			}
		}
	}

	results := make([]SkillExperience, 0, len(byName))
	for skill, years := range byName {
		results = append(results, SkillExperience{Skill: skill, YearsRequired: years})
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Skill < results[j].Skill
	})
	return results
}

// firstKnownSkill reduces a captured phrase to the first recognized skill in
// it. The capture is greedy and often trails into prose ("React experience in
// production"), so the phrase is re-mined with the pattern battery.
func firstKnownSkill(phrase string) (string, bool) {
	cleaned := taxonomy.Clean(phrase)
	if cleaned == "" {
		return "", false
	}

	// Whole phrase is a known skill ("Node.js", "reactjs").
	if canonical, known := taxonomy.Canonical(cleaned); known {
		return canonical, true
	}

	mined := make(map[string]struct{})
	collectPatternMatches(cleaned, mined)
	if len(mined) == 0 {
		return "", false
	}

	// Prefer the earliest mention in the phrase.
	best := ""
	bestIdx := len(cleaned) + 1
	lowered := strings.ToLower(cleaned)
	for skill := range mined {
		idx := strings.Index(lowered, strings.ToLower(skill))
		if idx < 0 {
			idx = 0
		}
		if idx < bestIdx || (idx == bestIdx && skill < best) {
			best = skill
			bestIdx = idx
		}
	}
	return best, true
}
