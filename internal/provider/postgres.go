package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cretiq/skillmatch/internal/types"
)

// Postgres serves role data from the hosting service's PostgreSQL database.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres establishes a connection pool and verifies it.
func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// Fetch implements RoleProvider. Skill-bearing columns are JSONB and nullable;
// absent columns simply leave their fields empty. A missing row is (nil, nil).
func (p *Postgres) Fetch(ctx context.Context, roleID string) (*types.RoleData, error) {
	var (
		role            types.RoleData
		aiKeySkillsJSON []byte
		skillsJSON      []byte
		reqsJSON        []byte
		companyJSON     []byte
		title           *string
		description     *string
	)

	err := p.pool.QueryRow(ctx,
		`SELECT id, title, description, ai_key_skills, skills, requirements, company
		 FROM roles WHERE id = $1`,
		roleID,
	).Scan(&role.ID, &title, &description, &aiKeySkillsJSON, &skillsJSON, &reqsJSON, &companyJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch role %s: %w", roleID, err)
	}

	if title != nil {
		role.Title = *title
	}
	if description != nil {
		role.Description = *description
	}

	// JSONB columns with malformed content degrade to empty fields; incomplete
	// role metadata is the normal case, not an error.
	if aiKeySkillsJSON != nil {
		_ = json.Unmarshal(aiKeySkillsJSON, &role.AIKeySkills)
	}
	if skillsJSON != nil {
		_ = json.Unmarshal(skillsJSON, &role.Skills)
	}
	if reqsJSON != nil {
		_ = json.Unmarshal(reqsJSON, &role.Requirements)
	}
	if companyJSON != nil {
		_ = json.Unmarshal(companyJSON, &role.Company)
	}

	return &role, nil
}
