package extraction

import (
	"sort"
	"strings"

	"github.com/cretiq/skillmatch/internal/taxonomy"
)

// maxListTokenWords caps how many words a delimited-list token may contain
// before it is discarded as prose rather than a skill name.
const maxListTokenWords = 4

// Extract mines skill mentions from a job description. Matches are cleaned,
// validated, and normalized to canonical form; the result is deduplicated and
// carries no ordering guarantee. Empty input yields an empty slice.
func Extract(description string) []string {
	found := extractSet(description)

	skills := make([]string, 0, len(found))
	for skill := range found {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}

// extractSet runs the full mining battery and returns the deduplicated set.
func extractSet(description string) map[string]struct{} {
	found := make(map[string]struct{})
	if strings.TrimSpace(description) == "" {
		return found
	}

	// 1. Technology-name patterns over the full text.
	collectPatternMatches(description, found)

	// 2. Windows after requirement-signal phrases, plus delimited lists there.
	lowered := strings.ToLower(description)
	for _, phrase := range signalPhrases {
		for _, start := range phraseOffsets(lowered, phrase) {
			window := windowAfter(description, start+len(phrase), signalWindowSize)
			collectPatternMatches(window, found)
			collectDelimitedList(window, found)
		}
	}

	return found
}

// collectPatternMatches applies the pattern battery to text and adds each
// valid, normalized match to the set.
func collectPatternMatches(text string, found map[string]struct{}) {
	for _, pattern := range skillPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			addSkill(match, found)
		}
	}
	for _, groups := range punctuatedSkillPattern.FindAllStringSubmatch(text, -1) {
		addSkill(groups[1], found)
	}
}

// collectDelimitedList parses a comma/semicolon-delimited skill list at the
// start of a signal-phrase window. The list ends at the first sentence or line
// boundary; tokens longer than a plausible skill name are discarded.
func collectDelimitedList(window string, found map[string]struct{}) {
	if loc := listTerminatorPattern.FindStringIndex(window); loc != nil {
		window = window[:loc[0]]
	}

	// A lone phrase followed by prose is not a list.
	if !strings.ContainsAny(window, ",;") {
		return
	}

	for _, token := range listDelimiterPattern.Split(window, -1) {
		cleaned := taxonomy.Clean(token)
		if cleaned == "" || len(strings.Fields(cleaned)) > maxListTokenWords {
			continue
		}
		addSkill(cleaned, found)
	}
}

// addSkill cleans, validates, and normalizes a raw match before insertion.
func addSkill(raw string, found map[string]struct{}) {
	cleaned := taxonomy.Clean(raw)
	if !taxonomy.IsValidSkillName(cleaned) {
		return
	}
	found[taxonomy.Normalize(cleaned)] = struct{}{}
}

// phraseOffsets returns every occurrence of phrase within lowered text.
func phraseOffsets(lowered, phrase string) []int {
	var offsets []int
	from := 0
	for {
		idx := strings.Index(lowered[from:], phrase)
		if idx < 0 {
			return offsets
		}
		offsets = append(offsets, from+idx)
		from += idx + len(phrase)
	}
}

// windowAfter returns up to size bytes of text starting at offset.
func windowAfter(text string, offset, size int) string {
	if offset >= len(text) {
		return ""
	}
	end := offset + size
	if end > len(text) {
		end = len(text)
	}
	return text[offset:end]
}
