package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cretiq/skillmatch/internal/schemas"
	"github.com/cretiq/skillmatch/internal/types"
)

// Directory serves role data from <dir>/<roleId>.json documents, optionally
// validating each against the role JSON Schema before use.
type Directory struct {
	dir    string
	schema *schemas.Schema
}

// NewDirectory creates a Directory provider. When schemaPath is empty the
// repository's role schema is resolved from common locations; when no schema
// can be found, documents are accepted without schema validation.
func NewDirectory(dir string, schemaPath string) (*Directory, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open roles directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("roles path %s is not a directory", dir)
	}

	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath(schemas.RoleSchemaFile)
	}

	var schema *schemas.Schema
	if schemaPath != "" {
		schema, err = schemas.LoadSchema(schemaPath)
		if err != nil {
			return nil, err
		}
	}

	return &Directory{dir: dir, schema: schema}, nil
}

// Fetch implements RoleProvider. A missing document is (nil, nil); a document
// that fails schema validation or JSON decoding is an error for that role only.
func (d *Directory) Fetch(ctx context.Context, roleID string) (*types.RoleData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Role IDs come from callers; never let them escape the directory.
	name := filepath.Base(roleID) + ".json"
	data, err := os.ReadFile(filepath.Join(d.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read role document: %w", err)
	}

	if d.schema != nil {
		if err := d.schema.ValidateBytes(data); err != nil {
			return nil, fmt.Errorf("role document %s: %w", name, err)
		}
	}

	var role types.RoleData
	if err := json.Unmarshal(data, &role); err != nil {
		return nil, fmt.Errorf("failed to parse role document %s: %w", name, err)
	}
	if role.ID == "" {
		role.ID = roleID
	}
	return &role, nil
}

// ListRoleIDs returns the IDs of every role document in the directory, sorted.
func (d *Directory) ListRoleIDs() ([]string, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles directory: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}
