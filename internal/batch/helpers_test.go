package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cretiq/skillmatch/internal/types"
)

func TestSortByScore_DescendingWithTieBreaks(t *testing.T) {
	scores := []types.RoleMatchScore{
		{RoleID: "low", OverallScore: 40, SkillsMatched: 1, HasSkillsListed: true},
		{RoleID: "tie-fewer", OverallScore: 85, SkillsMatched: 2, HasSkillsListed: true},
		{RoleID: "tie-more", OverallScore: 85, SkillsMatched: 3, HasSkillsListed: true},
		{RoleID: "high", OverallScore: 90, SkillsMatched: 1, HasSkillsListed: true},
	}

	sorted := SortByScore(scores)

	require.Len(t, sorted, 4)
	assert.Equal(t, "high", sorted[0].RoleID)
	assert.Equal(t, "tie-more", sorted[1].RoleID)
	assert.Equal(t, "tie-fewer", sorted[2].RoleID)
	assert.Equal(t, "low", sorted[3].RoleID)

	// Input order is untouched.
	assert.Equal(t, "low", scores[0].RoleID)
}

func TestSortByScore_HasSkillsListedBreaksFinalTie(t *testing.T) {
	scores := []types.RoleMatchScore{
		{RoleID: "unlisted", OverallScore: 0, SkillsMatched: 0, HasSkillsListed: false},
		{RoleID: "listed", OverallScore: 0, SkillsMatched: 0, HasSkillsListed: true},
	}

	sorted := SortByScore(scores)

	assert.Equal(t, "listed", sorted[0].RoleID)
	assert.Equal(t, "unlisted", sorted[1].RoleID)
}

func TestFilterByMinScore_Inclusive(t *testing.T) {
	scores := []types.RoleMatchScore{
		{RoleID: "a", OverallScore: 39},
		{RoleID: "b", OverallScore: 40},
		{RoleID: "c", OverallScore: 41},
	}

	kept := FilterByMinScore(scores, 40)

	require.Len(t, kept, 2)
	assert.Equal(t, "b", kept[0].RoleID)
	assert.Equal(t, "c", kept[1].RoleID)
}

func TestFilterByMinScore_ZeroKeepsEverything(t *testing.T) {
	scores := []types.RoleMatchScore{
		{RoleID: "a", OverallScore: 0},
		{RoleID: "b", OverallScore: 100},
	}

	assert.Len(t, FilterByMinScore(scores, 0), 2)
}

func TestComputeStatistics_Tiers(t *testing.T) {
	scores := []types.RoleMatchScore{
		{RoleID: "high", OverallScore: 80, HasSkillsListed: true},
		{RoleID: "boundary-high", OverallScore: 70, HasSkillsListed: true},
		{RoleID: "boundary-low", OverallScore: 40, HasSkillsListed: true},
		{RoleID: "low", OverallScore: 10, HasSkillsListed: true},
		{RoleID: "unlisted", OverallScore: 0, HasSkillsListed: false},
	}

	stats := ComputeStatistics(scores)

	assert.Equal(t, 5, stats.TotalRoles)
	assert.Equal(t, 4, stats.WithSkillsListed)
	assert.Equal(t, 1, stats.HighMatches)   // > 70
	assert.Equal(t, 2, stats.MediumMatches) // 40..70 inclusive
	assert.Equal(t, 1, stats.LowMatches)    // < 40
	assert.InDelta(t, 50.0, stats.AverageScore, 0.001)
}

func TestComputeStatistics_Empty(t *testing.T) {
	stats := ComputeStatistics(nil)

	assert.Equal(t, 0, stats.TotalRoles)
	assert.Zero(t, stats.AverageScore)
}
