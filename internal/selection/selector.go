// Package selection chooses which of a role's possible skill sources to trust.
package selection

import (
	"github.com/cretiq/skillmatch/internal/extraction"
	"github.com/cretiq/skillmatch/internal/ingestion"
	"github.com/cretiq/skillmatch/internal/taxonomy"
	"github.com/cretiq/skillmatch/internal/types"
)

// Selection is the outcome of choosing a role's skill list. When
// HasSkillsListed is false the role exposed no usable skill data anywhere;
// callers must treat that as "cannot judge", not as a zero-skill match.
type Selection struct {
	Skills          []string
	Source          types.RoleSkillSource
	HasSkillsListed bool
}

// sourceExtractor pulls candidate skill names from one field of a role.
type sourceExtractor struct {
	source  types.RoleSkillSource
	extract func(role *types.RoleData) []string
}

// sourceChain is the fixed priority order: structured fields first, mined
// description text last. The first source yielding any valid skill wins.
var sourceChain = []sourceExtractor{
	{types.SourceAIExtracted, func(r *types.RoleData) []string {
		return r.AIKeySkills
	}},
	{types.SourceStructuredSkills, func(r *types.RoleData) []string {
		names := make([]string, 0, len(r.Skills))
		for _, s := range r.Skills {
			names = append(names, s.Name)
		}
		return names
	}},
	{types.SourceRequirements, func(r *types.RoleData) []string {
		return r.Requirements
	}},
	{types.SourceOrgSpecialties, func(r *types.RoleData) []string {
		if r.Company == nil {
			return nil
		}
		return r.Company.Specialties
	}},
	{types.SourceDescriptionDerived, func(r *types.RoleData) []string {
		return extraction.Extract(ingestion.CleanDescription(r.Description))
	}},
}

// Select walks the source chain and returns the first non-empty, valid skill
// list found on the role. A nil role or a role with no usable skill data
// yields an empty selection with HasSkillsListed false; this never fails.
func Select(role *types.RoleData) Selection {
	if role == nil {
		return Selection{Skills: []string{}}
	}

	for _, candidate := range sourceChain {
		skills := sanitize(candidate.extract(role))
		if len(skills) > 0 {
			return Selection{
				Skills:          skills,
				Source:          candidate.source,
				HasSkillsListed: true,
			}
		}
	}

	return Selection{Skills: []string{}}
}

// sanitize cleans, validates, normalizes, and deduplicates raw skill names,
// preserving first-occurrence order.
func sanitize(raw []string) []string {
	skills := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, name := range raw {
		cleaned := taxonomy.Clean(name)
		if !taxonomy.IsValidSkillName(cleaned) {
			continue
		}
		canonical := taxonomy.Normalize(cleaned)
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		skills = append(skills, canonical)
	}
	return skills
}
