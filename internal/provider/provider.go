// Package provider defines how role data reaches the matching engine and
// ships the standard implementations.
package provider

import (
	"context"

	"github.com/cretiq/skillmatch/internal/types"
)

// RoleProvider fetches raw role data by ID. A (nil, nil) return means the
// role does not exist; the batch orchestrator records it as ROLE_NOT_FOUND.
// Implementations may perform I/O and must honor ctx cancellation.
type RoleProvider interface {
	Fetch(ctx context.Context, roleID string) (*types.RoleData, error)
}

// Func adapts a closure into a RoleProvider.
type Func func(ctx context.Context, roleID string) (*types.RoleData, error)

// Fetch implements RoleProvider.
func (f Func) Fetch(ctx context.Context, roleID string) (*types.RoleData, error) {
	return f(ctx, roleID)
}

// Static serves roles from an in-memory map; useful in tests and demos.
type Static map[string]*types.RoleData

// Fetch implements RoleProvider.
func (s Static) Fetch(_ context.Context, roleID string) (*types.RoleData, error) {
	return s[roleID], nil
}
