package taxonomy

import "strings"

// FuzzyResult describes the outcome of comparing a user skill against a role skill.
type FuzzyResult struct {
	Matched       bool
	Confidence    float64
	UserCanonical string
	RoleCanonical string
}

// FuzzyMatch normalizes both skill names and compares them. Equal canonical
// forms (case-insensitive) match with confidence 1.0; otherwise the confidence
// is the Levenshtein similarity of the canonical forms, and the pair matches
// when it reaches the threshold.
func FuzzyMatch(userSkill, roleSkill string, threshold float64) FuzzyResult {
	userCanonical := Normalize(userSkill)
	roleCanonical := Normalize(roleSkill)

	result := FuzzyResult{
		UserCanonical: userCanonical,
		RoleCanonical: roleCanonical,
	}

	if userCanonical == "" || roleCanonical == "" {
		return result
	}

	if strings.EqualFold(userCanonical, roleCanonical) {
		result.Matched = true
		result.Confidence = 1.0
		return result
	}

	result.Confidence = Similarity(strings.ToLower(userCanonical), strings.ToLower(roleCanonical))
	result.Matched = result.Confidence >= threshold
	return result
}
