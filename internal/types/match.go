package types

// Error codes for per-role failures collected during a batch run.
const (
	ErrCodeRoleNotFound    = "ROLE_NOT_FOUND"
	ErrCodeProcessingError = "PROCESSING_ERROR"
)

// SkillMatch is one accepted pairing of a user skill with a role skill.
type SkillMatch struct {
	SkillName  string          `json:"skill_name"`
	UserLevel  SkillLevel      `json:"user_level"`
	Confidence float64         `json:"confidence"`
	Source     RoleSkillSource `json:"source"`
}

// MatchBreakdown records how the matches were obtained, for explainability.
// WeightedScore is the proficiency-weighted variant of the overall score;
// callers who want level-aware ranking read it instead of OverallScore.
type MatchBreakdown struct {
	ExactMatches  int     `json:"exact_matches"`
	AliasMatches  int     `json:"alias_matches"`
	FuzzyMatches  int     `json:"fuzzy_matches"`
	WeightedScore float64 `json:"weighted_score"`
}

// RoleMatchScore is the result of scoring one user profile against one role.
//
// Invariants: SkillsMatched <= TotalSkills; when HasSkillsListed is false the
// role carried no usable skill data and OverallScore and TotalSkills are both
// zero. Callers must not conflate that state with "skills listed, none matched".
type RoleMatchScore struct {
	RoleID          string          `json:"role_id"`
	OverallScore    int             `json:"overall_score"`
	SkillsMatched   int             `json:"skills_matched"`
	TotalSkills     int             `json:"total_skills"`
	MatchedSkills   []SkillMatch    `json:"matched_skills"`
	HasSkillsListed bool            `json:"has_skills_listed"`
	Source          RoleSkillSource `json:"source,omitempty"`
	Breakdown       MatchBreakdown  `json:"breakdown"`
}

// MatchError is a role-scoped failure recorded during a batch run.
type MatchError struct {
	RoleID  string `json:"role_id"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// BatchMatchResult aggregates the outcome of scoring one user against many roles.
// RoleScores order is not guaranteed to match the requested role ID order.
type BatchMatchResult struct {
	UserID           string           `json:"user_id"`
	RoleScores       []RoleMatchScore `json:"role_scores"`
	Errors           []MatchError     `json:"errors"`
	TotalProcessed   int              `json:"total_processed"`
	ProcessingTimeMs int64            `json:"processing_time_ms"`
}
