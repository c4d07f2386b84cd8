// Package main implements the skillmatch CLI.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cretiq/skillmatch/internal/batch"
	"github.com/cretiq/skillmatch/internal/config"
	"github.com/cretiq/skillmatch/internal/observability"
	"github.com/cretiq/skillmatch/internal/provider"
	"github.com/cretiq/skillmatch/internal/trace"
	"github.com/cretiq/skillmatch/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a user's skills against role postings",
	Long:  "Loads a user skill profile, fetches role data from a roles directory or PostgreSQL, scores every role, and prints the ranked results.",
	RunE:  runMatch,
}

var (
	matchSkillsPath  string
	matchRolesDir    string
	matchDatabaseURL string
	matchConfigPath  string
	matchUserID      string
	matchRoleIDs     []string
	matchMinScore    int
	matchTop         int
	matchWorkers     int
	matchVerbose     bool
	matchJSON        bool
	matchStats       bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchSkillsPath, "skills", "s", "", "Path to user skills JSON file (array of {name, level})")
	matchCmd.Flags().StringVarP(&matchRolesDir, "roles", "r", "", "Directory of <roleId>.json role documents")
	matchCmd.Flags().StringVar(&matchDatabaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env var)")
	matchCmd.Flags().StringVarP(&matchConfigPath, "config", "c", "", "Path to JSON config file")
	matchCmd.Flags().StringVarP(&matchUserID, "user-id", "u", "", "User ID attached to the batch result (generated when omitted)")
	matchCmd.Flags().StringArrayVar(&matchRoleIDs, "role", nil, "Role ID to score (repeatable; defaults to every role in the roles directory)")
	matchCmd.Flags().IntVar(&matchMinScore, "min-score", 0, "Drop role scores below this value")
	matchCmd.Flags().IntVar(&matchTop, "top", 0, "Show only the top N roles (0 = all)")
	matchCmd.Flags().IntVar(&matchWorkers, "workers", 0, "Concurrent role evaluations")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print scoring trace events")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Print the batch result as JSON")
	matchCmd.Flags().BoolVar(&matchStats, "stats", false, "Print aggregate statistics")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	// 1. Load and validate the user skill profile
	userSkills, err := loadUserSkills(cfg.SkillsPath)
	if err != nil {
		return err
	}

	// 2. Build the role provider
	p, cleanup, err := buildProvider(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	// 3. Resolve the role IDs to score
	roleIDs := matchRoleIDs
	if len(roleIDs) == 0 {
		dir, ok := p.(*provider.Directory)
		if !ok {
			return fmt.Errorf("at least one --role is required when fetching roles from a database")
		}
		roleIDs, err = dir.ListRoleIDs()
		if err != nil {
			return err
		}
	}
	if len(roleIDs) == 0 {
		return fmt.Errorf("no roles to score")
	}

	userID := cfg.UserID
	if userID == "" {
		userID = uuid.NewString()
	}

	batchCfg := cfg.BatchConfig()
	if matchVerbose {
		tracer, err := trace.New(matchJSON, true)
		if err != nil {
			return fmt.Errorf("failed to build tracer: %w", err)
		}
		defer func() { tracer.Sync() }()
		batchCfg.Scoring.Tracer = tracer
	}

	// 4. Run the batch
	result := batch.Run(cmd.Context(), userID, roleIDs, userSkills, p, batchCfg)

	// 5. Rank, filter, and trim
	result.RoleScores = batch.SortByScore(result.RoleScores)
	if cfg.MinScore > 0 {
		result.RoleScores = batch.FilterByMinScore(result.RoleScores, cfg.MinScore)
	}
	if matchTop > 0 && len(result.RoleScores) > matchTop {
		result.RoleScores = result.RoleScores[:matchTop]
	}

	// 6. Output
	if matchJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal batch result to JSON: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintBatchResult(result)
	if matchStats {
		printer.PrintStatistics(batch.ComputeStatistics(result.RoleScores))
	}
	return nil
}

// resolveConfig merges the config file (if any) with CLI flags. Flags win.
func resolveConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if matchConfigPath != "" {
		loaded, err := config.LoadConfig(matchConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := config.Config{
		SkillsPath:  matchSkillsPath,
		RolesDir:    matchRolesDir,
		DatabaseURL: matchDatabaseURL,
		UserID:      matchUserID,
		MinScore:    matchMinScore,
		Workers:     matchWorkers,
	}
	merged := flags.MergeWithDefaults(*cfg)
	if merged.DatabaseURL == "" && merged.RolesDir == "" {
		merged.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if merged.SkillsPath == "" {
		return nil, fmt.Errorf("--skills is required (or skills_path in the config file)")
	}
	if merged.RolesDir == "" && merged.DatabaseURL == "" {
		return nil, fmt.Errorf("a role source is required: --roles or --database-url")
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// loadUserSkills reads and validates the user's skill profile JSON.
func loadUserSkills(path string) ([]types.UserSkill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skills file %s: %w", path, err)
	}

	var skills []types.UserSkill
	if err := json.Unmarshal(data, &skills); err != nil {
		return nil, fmt.Errorf("failed to parse skills JSON: %w", err)
	}
	if err := types.ValidateUserSkills(skills); err != nil {
		return nil, fmt.Errorf("invalid skill profile: %w", err)
	}
	return skills, nil
}

// buildProvider constructs the role provider from the resolved config and
// returns a cleanup function for any held resources.
func buildProvider(ctx context.Context, cfg *config.Config) (provider.RoleProvider, func(), error) {
	if cfg.RolesDir != "" {
		p, err := provider.NewDirectory(cfg.RolesDir, "")
		if err != nil {
			return nil, nil, err
		}
		return p, func() {}, nil
	}

	p, err := provider.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return p, p.Close, nil
}
