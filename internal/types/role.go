package types

import "encoding/json"

// RoleSkillSource identifies which field on a role a skill list came from.
// It is carried on matches purely for provenance and UI explainability.
type RoleSkillSource string

const (
	SourceAIExtracted        RoleSkillSource = "AI_EXTRACTED"
	SourceStructuredSkills   RoleSkillSource = "STRUCTURED_SKILLS"
	SourceRequirements       RoleSkillSource = "REQUIREMENTS"
	SourceOrgSpecialties     RoleSkillSource = "ORG_SPECIALTIES"
	SourceDescriptionDerived RoleSkillSource = "DESCRIPTION_DERIVED"
)

// RoleSkill is a single structured skill entry on a role. Upstream data is
// inconsistent: entries arrive either as bare strings ("React") or as objects
// with a name field ({"name": "React"}). Both forms unmarshal into Name.
type RoleSkill struct {
	Name string `json:"name"`
}

// UnmarshalJSON accepts both a JSON string and an object with a "name" key.
func (s *RoleSkill) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		s.Name = str
		return nil
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	s.Name = obj.Name
	return nil
}

// MarshalJSON always emits the object form.
func (s RoleSkill) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name string `json:"name"`
	}{Name: s.Name})
}

// Organization holds the subset of company data the engine reads.
type Organization struct {
	Name        string   `json:"name,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
}

// RoleData is the raw role record returned by an injected role provider.
// Every field besides ID is optional; job postings routinely carry incomplete
// metadata, and absence of any field is not an error.
type RoleData struct {
	ID           string        `json:"id"`
	Title        string        `json:"title,omitempty"`
	AIKeySkills  []string      `json:"ai_key_skills,omitempty"`
	Skills       []RoleSkill   `json:"skills,omitempty"`
	Requirements []string      `json:"requirements,omitempty"`
	Company      *Organization `json:"company,omitempty"`
	Description  string        `json:"description,omitempty"`
}
