package batch

import (
	"sort"

	"github.com/cretiq/skillmatch/internal/types"
)

// Statistics summarizes a slice of role scores. AverageScore is computed over
// only the roles that had skills listed; roles without skill data cannot be
// judged and are excluded from score aggregates.
type Statistics struct {
	TotalRoles          int     `json:"total_roles"`
	WithSkillsListed    int     `json:"with_skills_listed"`
	WithoutSkillsListed int     `json:"without_skills_listed"`
	AverageScore        float64 `json:"average_score"`
	HighMatches         int     `json:"high_matches"`   // score > 70
	MediumMatches       int     `json:"medium_matches"` // 40 <= score <= 70
	LowMatches          int     `json:"low_matches"`    // score < 40
}

// SortByScore returns a new slice ordered by overall score descending, then
// skills matched descending, then roles with listed skills first. The input
// is not modified.
func SortByScore(scores []types.RoleMatchScore) []types.RoleMatchScore {
	sorted := make([]types.RoleMatchScore, len(scores))
	copy(sorted, scores)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.OverallScore != b.OverallScore {
			return a.OverallScore > b.OverallScore
		}
		if a.SkillsMatched != b.SkillsMatched {
			return a.SkillsMatched > b.SkillsMatched
		}
		return a.HasSkillsListed && !b.HasSkillsListed
	})
	return sorted
}

// FilterByMinScore returns the scores at or above min. The input is not modified.
func FilterByMinScore(scores []types.RoleMatchScore, min int) []types.RoleMatchScore {
	filtered := make([]types.RoleMatchScore, 0, len(scores))
	for _, s := range scores {
		if s.OverallScore >= min {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// ComputeStatistics aggregates scores into summary statistics. Tier buckets
// count only roles with skills listed.
func ComputeStatistics(scores []types.RoleMatchScore) Statistics {
	stats := Statistics{TotalRoles: len(scores)}

	sum := 0
	for _, s := range scores {
		if !s.HasSkillsListed {
			stats.WithoutSkillsListed++
			continue
		}
		stats.WithSkillsListed++
		sum += s.OverallScore

		switch {
		case s.OverallScore > 70:
			stats.HighMatches++
		case s.OverallScore >= 40:
			stats.MediumMatches++
		default:
			stats.LowMatches++
		}
	}

	if stats.WithSkillsListed > 0 {
		stats.AverageScore = float64(sum) / float64(stats.WithSkillsListed)
	}
	return stats
}
