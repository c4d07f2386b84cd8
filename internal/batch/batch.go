// Package batch runs the match scorer across many roles for one user,
// isolating per-role failures and aggregating results.
package batch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cretiq/skillmatch/internal/provider"
	"github.com/cretiq/skillmatch/internal/scoring"
	"github.com/cretiq/skillmatch/internal/types"
)

// DefaultWorkers bounds concurrent role fetches when the caller does not
// configure a pool size.
const DefaultWorkers = 4

// Config holds batch-level settings plus the scoring configuration applied to
// every role.
type Config struct {
	Scoring scoring.Config
	// Workers bounds concurrent role evaluations; values below 1 fall back to
	// DefaultWorkers. 1 means sequential processing.
	Workers int
}

// DefaultConfig returns the standard batch configuration.
func DefaultConfig() Config {
	return Config{
		Scoring: scoring.DefaultConfig(),
		Workers: DefaultWorkers,
	}
}

// Run scores one user's skill profile against every role in roleIDs, fetching
// role data through the injected provider. Each role is independent: a fetch
// failure, a missing role, or a panic inside one role's pipeline is recorded
// in the result's error list and never aborts the batch. The order of
// RoleScores is not guaranteed to match roleIDs.
func Run(ctx context.Context, userID string, roleIDs []string, userSkills []types.UserSkill, p provider.RoleProvider, cfg Config) *types.BatchMatchResult {
	start := time.Now()

	workers := cfg.Workers
	if workers < 1 {
		workers = DefaultWorkers
	}

	result := &types.BatchMatchResult{
		UserID:     userID,
		RoleScores: []types.RoleMatchScore{},
		Errors:     []types.MatchError{},
	}

	var mu sync.Mutex
	g := &errgroup.Group{}
	g.SetLimit(workers)

	for _, roleID := range roleIDs {
		roleID := roleID
		g.Go(func() error {
			score, matchErr := processRole(ctx, roleID, userSkills, p, cfg.Scoring)

			mu.Lock()
			defer mu.Unlock()
			if matchErr != nil {
				result.Errors = append(result.Errors, *matchErr)
				return nil
			}
			result.RoleScores = append(result.RoleScores, *score)
			return nil
		})
	}

	// Workers only report through the shared result; the group never carries
	// an error.
	_ = g.Wait()

	result.TotalProcessed = len(roleIDs)
	result.ProcessingTimeMs = time.Since(start).Milliseconds()
	return result
}

// processRole runs the fetch-then-score pipeline for a single role. Provider
// panics are converted into PROCESSING_ERROR records so one bad role cannot
// take down the batch.
func processRole(ctx context.Context, roleID string, userSkills []types.UserSkill, p provider.RoleProvider, cfg scoring.Config) (score *types.RoleMatchScore, matchErr *types.MatchError) {
	defer func() {
		if r := recover(); r != nil {
			score = nil
			matchErr = &types.MatchError{
				RoleID:  roleID,
				Message: fmt.Sprintf("panic while processing role: %v", r),
				Code:    types.ErrCodeProcessingError,
			}
		}
	}()

	role, err := p.Fetch(ctx, roleID)
	if err != nil {
		return nil, &types.MatchError{
			RoleID:  roleID,
			Message: err.Error(),
			Code:    types.ErrCodeProcessingError,
		}
	}
	if role == nil {
		return nil, &types.MatchError{
			RoleID:  roleID,
			Message: "role not found",
			Code:    types.ErrCodeRoleNotFound,
		}
	}

	result := scoring.ScoreRole(userSkills, role, cfg)
	if result.RoleID == "" {
		result.RoleID = roleID
	}
	return result, nil
}
