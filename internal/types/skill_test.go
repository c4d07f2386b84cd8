package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillLevel_Valid(t *testing.T) {
	assert.True(t, LevelBeginner.Valid())
	assert.True(t, LevelExpert.Valid())
	assert.False(t, SkillLevel("GURU").Valid())
	assert.False(t, SkillLevel("").Valid())
}

func TestUserSkill_Validate(t *testing.T) {
	valid := UserSkill{Name: "React", Level: LevelAdvanced}
	assert.NoError(t, valid.Validate())

	missingName := UserSkill{Level: LevelAdvanced}
	assert.Error(t, missingName.Validate())

	badLevel := UserSkill{Name: "React", Level: SkillLevel("GURU")}
	assert.Error(t, badLevel.Validate())
}

func TestValidateUserSkills(t *testing.T) {
	assert.NoError(t, ValidateUserSkills(nil))
	assert.NoError(t, ValidateUserSkills([]UserSkill{
		{Name: "React", Level: LevelIntermediate},
	}))
	assert.Error(t, ValidateUserSkills([]UserSkill{
		{Name: "React", Level: LevelIntermediate},
		{Name: "", Level: LevelIntermediate},
	}))
}
