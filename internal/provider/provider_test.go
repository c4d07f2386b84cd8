package provider

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cretiq/skillmatch/internal/types"
)

func writeRoleDoc(t *testing.T, dir, roleID, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, roleID+".json"), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestFunc_AdaptsClosure(t *testing.T) {
	p := Func(func(_ context.Context, roleID string) (*types.RoleData, error) {
		if roleID == "missing" {
			return nil, nil
		}
		return &types.RoleData{ID: roleID}, nil
	})

	role, err := p.Fetch(context.Background(), "role-1")
	require.NoError(t, err)
	assert.Equal(t, "role-1", role.ID)

	role, err = p.Fetch(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, role)
}

func TestStatic_MissingRoleIsNil(t *testing.T) {
	p := Static{"role-1": {ID: "role-1"}}

	role, err := p.Fetch(context.Background(), "role-2")
	require.NoError(t, err)
	assert.Nil(t, role)
}

func TestDirectory_FetchParsesBothSkillForms(t *testing.T) {
	dir := t.TempDir()
	writeRoleDoc(t, dir, "role-1", `{
		"title": "Frontend Engineer",
		"skills": ["React", {"name": "TypeScript"}]
	}`)

	p, err := NewDirectory(dir, "")
	require.NoError(t, err)

	role, err := p.Fetch(context.Background(), "role-1")
	require.NoError(t, err)
	require.NotNil(t, role)
	assert.Equal(t, "role-1", role.ID)
	require.Len(t, role.Skills, 2)
	assert.Equal(t, "React", role.Skills[0].Name)
	assert.Equal(t, "TypeScript", role.Skills[1].Name)
}

func TestDirectory_MissingDocumentIsNil(t *testing.T) {
	p, err := NewDirectory(t.TempDir(), "")
	require.NoError(t, err)

	role, err := p.Fetch(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, role)
}

func TestDirectory_MalformedDocumentIsError(t *testing.T) {
	dir := t.TempDir()
	writeRoleDoc(t, dir, "broken", `{"skills": [`)

	p, err := NewDirectory(dir, "")
	require.NoError(t, err)

	_, err = p.Fetch(context.Background(), "broken")
	assert.Error(t, err)
}

func TestDirectory_SchemaValidationRejectsBadDocument(t *testing.T) {
	dir := t.TempDir()
	writeRoleDoc(t, dir, "bad", `{"skills": [42]}`)

	schemaPath := filepath.Join(t.TempDir(), "role.schema.json")
	schema := `{
		"type": "object",
		"properties": {
			"skills": {"type": "array", "items": {"oneOf": [
				{"type": "string"},
				{"type": "object", "properties": {"name": {"type": "string"}}, "required": ["name"]}
			]}}
		}
	}`
	require.NoError(t, os.WriteFile(schemaPath, []byte(schema), 0o644))

	p, err := NewDirectory(dir, schemaPath)
	require.NoError(t, err)

	_, err = p.Fetch(context.Background(), "bad")
	assert.Error(t, err)
}

func TestDirectory_FetchHonorsCancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeRoleDoc(t, dir, "role-1", `{}`)

	p, err := NewDirectory(dir, "")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = p.Fetch(ctx, "role-1")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDirectory_ListRoleIDs(t *testing.T) {
	dir := t.TempDir()
	writeRoleDoc(t, dir, "b-role", `{}`)
	writeRoleDoc(t, dir, "a-role", `{}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	p, err := NewDirectory(dir, "")
	require.NoError(t, err)

	ids, err := p.ListRoleIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"a-role", "b-role"}, ids)
}

func TestNewDirectory_MissingDirectory(t *testing.T) {
	_, err := NewDirectory(filepath.Join(t.TempDir(), "absent"), "")
	assert.Error(t, err)
}
