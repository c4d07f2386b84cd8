package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cretiq/skillmatch/internal/batch"
	"github.com/cretiq/skillmatch/internal/types"
)

func TestPrintRoleScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRoleScore(&types.RoleMatchScore{
		RoleID:          "role-1",
		OverallScore:    67,
		SkillsMatched:   2,
		TotalSkills:     3,
		HasSkillsListed: true,
		Source:          types.SourceAIExtracted,
		MatchedSkills: []types.SkillMatch{
			{SkillName: "React", Confidence: 1.0},
			{SkillName: "TypeScript", Confidence: 0.85},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "ROLE MATCH")
	assert.Contains(t, out, "role-1")
	assert.Contains(t, out, "67%")
	assert.Contains(t, out, "React")
	assert.Contains(t, out, "(~0.85)")
}

func TestPrintRoleScore_NoSkillsListed(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRoleScore(&types.RoleMatchScore{RoleID: "role-1"})

	assert.Contains(t, buf.String(), "No skills listed")
}

func TestPrintRoleScore_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRoleScore(nil)
	assert.Empty(t, buf.String())
}

func TestPrintBatchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBatchResult(&types.BatchMatchResult{
		UserID: "user-1",
		RoleScores: []types.RoleMatchScore{
			{RoleID: "role-low", OverallScore: 20, HasSkillsListed: true, Source: types.SourceRequirements},
			{RoleID: "role-high", OverallScore: 90, HasSkillsListed: true, Source: types.SourceAIExtracted},
		},
		Errors:           []types.MatchError{{RoleID: "role-x", Message: "role not found", Code: types.ErrCodeRoleNotFound}},
		TotalProcessed:   3,
		ProcessingTimeMs: 12,
	})

	out := buf.String()
	assert.Contains(t, out, "BATCH MATCH RESULT")
	assert.Contains(t, out, "user-1")
	// Highest score is listed first.
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("role-high")), bytes.Index(buf.Bytes(), []byte("role-low")))
	assert.Contains(t, out, "ROLE ERRORS")
	assert.Contains(t, out, "ROLE_NOT_FOUND")
}

func TestPrintErrors_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintErrors(nil)
	assert.Contains(t, buf.String(), "NO ROLE ERRORS")
}

func TestPrintStatistics(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStatistics(batch.Statistics{
		TotalRoles:       4,
		WithSkillsListed: 3,
		AverageScore:     52.5,
		HighMatches:      1,
		MediumMatches:    1,
		LowMatches:       1,
	})

	out := buf.String()
	assert.Contains(t, out, "MATCH STATISTICS")
	assert.Contains(t, out, "52.5")
}
