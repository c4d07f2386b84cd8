// Package types provides type definitions for structured data used throughout the skill matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// SkillLevel is a user's self-declared proficiency for a single skill.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "BEGINNER"
	LevelIntermediate SkillLevel = "INTERMEDIATE"
	LevelAdvanced     SkillLevel = "ADVANCED"
	LevelExpert       SkillLevel = "EXPERT"
)

// Valid reports whether the level is one of the four known values.
func (l SkillLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return true
	}
	return false
}

// UserSkill is one entry of a user's skill profile. The profile is supplied
// wholesale by the caller per request; the engine never mutates it.
type UserSkill struct {
	Name       string     `json:"name" validate:"required,min=1,max=100"`
	Level      SkillLevel `json:"level" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED EXPERT"`
	CategoryID string     `json:"category_id,omitempty"`
}

// Validate validates the UserSkill using the validator.
func (s *UserSkill) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// ValidateUserSkills validates every skill in a profile, returning the first error.
func ValidateUserSkills(skills []UserSkill) error {
	validate := validator.New()
	for i := range skills {
		if err := validate.Struct(&skills[i]); err != nil {
			return err
		}
	}
	return nil
}
