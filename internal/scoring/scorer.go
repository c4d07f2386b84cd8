// Package scoring matches a user's skill profile against a role's skills and
// computes the 0-100 compatibility score with per-skill evidence.
package scoring

import (
	"math"
	"strings"

	"github.com/cretiq/skillmatch/internal/selection"
	"github.com/cretiq/skillmatch/internal/taxonomy"
	"github.com/cretiq/skillmatch/internal/trace"
	"github.com/cretiq/skillmatch/internal/types"
)

// Default configuration values.
const (
	DefaultFuzzyMatchThreshold = 0.8
	DefaultHighLevelBonus      = 1.2
	beginnerMultiplier         = 0.8
)

// Config holds the tunable parameters for scoring. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// FuzzyMatchThreshold is the minimum similarity a fuzzy pairing must reach.
	FuzzyMatchThreshold float64
	// HighLevelBonus is the multiplier applied to EXPERT and ADVANCED skills
	// in the weighted score variant. The baseline score never uses it.
	HighLevelBonus float64
	// Tracer receives scoring-path events; nil disables tracing.
	Tracer *trace.Tracer
}

// DefaultConfig returns the standard scoring configuration.
func DefaultConfig() Config {
	return Config{
		FuzzyMatchThreshold: DefaultFuzzyMatchThreshold,
		HighLevelBonus:      DefaultHighLevelBonus,
	}
}

// Score pairs user skills with role skills. Each role skill may be consumed by
// at most one user skill: user skills are processed in order, and each takes
// the highest-confidence unconsumed role skill that clears the threshold
// (first-come assignment, ties broken by scan order). User skills with no
// qualifying pairing produce no entry.
func Score(userSkills []types.UserSkill, roleSkills []string, source types.RoleSkillSource, cfg Config) []types.SkillMatch {
	matches, _ := scorePairs(userSkills, roleSkills, source, cfg)
	return matches
}

// scorePairs is Score plus, per match, the raw name of the user skill that
// made it. The breakdown needs the pairing to tell exact matches from alias
// matches.
func scorePairs(userSkills []types.UserSkill, roleSkills []string, source types.RoleSkillSource, cfg Config) ([]types.SkillMatch, []string) {
	matches := make([]types.SkillMatch, 0, len(userSkills))
	rawNames := make([]string, 0, len(userSkills))
	consumed := make([]bool, len(roleSkills))

	for _, userSkill := range userSkills {
		bestIdx := -1
		best := taxonomy.FuzzyResult{}

		for i, roleSkill := range roleSkills {
			if consumed[i] {
				continue
			}
			result := taxonomy.FuzzyMatch(userSkill.Name, roleSkill, cfg.FuzzyMatchThreshold)
			if !result.Matched {
				continue
			}
			if bestIdx == -1 || result.Confidence > best.Confidence {
				bestIdx = i
				best = result
			}
		}

		if bestIdx == -1 {
			continue
		}

		consumed[bestIdx] = true
		matches = append(matches, types.SkillMatch{
			SkillName:  best.RoleCanonical,
			UserLevel:  userSkill.Level,
			Confidence: best.Confidence,
			Source:     source,
		})
		rawNames = append(rawNames, userSkill.Name)
	}

	return matches, rawNames
}

// ScoreRole selects the role's skill list, runs the matcher, and assembles the
// full score. Malformed or missing role data never produces an error; it
// degrades to a zero score with HasSkillsListed false.
func ScoreRole(userSkills []types.UserSkill, role *types.RoleData, cfg Config) *types.RoleMatchScore {
	roleID := ""
	if role != nil {
		roleID = role.ID
	}

	sel := selection.Select(role)
	cfg.Tracer.RoleSkillsSelected(roleID, string(sel.Source), len(sel.Skills), sel.HasSkillsListed)

	score := &types.RoleMatchScore{
		RoleID:        roleID,
		MatchedSkills: []types.SkillMatch{},
	}

	if !sel.HasSkillsListed {
		cfg.Tracer.MatchComputed(roleID, 0, 0, 0)
		return score
	}

	matches, rawNames := scorePairs(userSkills, sel.Skills, sel.Source, cfg)

	score.HasSkillsListed = true
	score.Source = sel.Source
	score.TotalSkills = len(sel.Skills)
	score.SkillsMatched = len(matches)
	score.MatchedSkills = matches
	score.Breakdown = buildBreakdown(len(userSkills), matches, rawNames, cfg)

	if len(userSkills) > 0 {
		ratio := float64(len(matches)) / float64(len(userSkills))
		score.OverallScore = int(math.Round(ratio * 100))
	}

	cfg.Tracer.MatchComputed(roleID, score.OverallScore, score.SkillsMatched, score.TotalSkills)
	return score
}

// LevelMultiplier returns the proficiency weight used by the weighted score
// variant: EXPERT/ADVANCED get the configured bonus, INTERMEDIATE 1.0,
// BEGINNER 0.8. Unknown levels are treated as INTERMEDIATE.
func LevelMultiplier(level types.SkillLevel, bonus float64) float64 {
	switch level {
	case types.LevelExpert, types.LevelAdvanced:
		return bonus
	case types.LevelBeginner:
		return beginnerMultiplier
	default:
		return 1.0
	}
}

// buildBreakdown classifies matches and computes the proficiency-weighted
// score variant. rawNames pairs with matches: entry i is the raw name of the
// user skill behind match i. A match is exact when that raw name already
// agreed with the matched canonical name, alias when only the canonical forms
// agree, fuzzy otherwise.
func buildBreakdown(totalUserSkills int, matches []types.SkillMatch, rawNames []string, cfg Config) types.MatchBreakdown {
	breakdown := types.MatchBreakdown{}

	weighted := 0.0
	for i, m := range matches {
		switch {
		case m.Confidence < 1.0:
			breakdown.FuzzyMatches++
		case strings.EqualFold(strings.TrimSpace(rawNames[i]), m.SkillName):
			breakdown.ExactMatches++
		default:
			breakdown.AliasMatches++
		}
		weighted += m.Confidence * LevelMultiplier(m.UserLevel, cfg.HighLevelBonus)
	}

	if totalUserSkills > 0 {
		score := weighted / float64(totalUserSkills) * 100
		if score > 100 {
			score = 100
		}
		breakdown.WeightedScore = math.Round(score*10) / 10
	}

	return breakdown
}
