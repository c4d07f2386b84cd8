// Package trace provides a structured, level-gated tracing hook for the
// scoring path. The engine calls it at two well-defined points; the default
// tracer is a no-op so scoring stays silent unless a caller opts in.
package trace

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Tracer emits structured events from the scoring path. The zero value and a
// nil *Tracer are both safe no-ops.
type Tracer struct {
	logger *zap.Logger
}

// New builds a tracer backed by a zap logger. With json false the encoding is
// console; debug enables the debug level (the two scoring events are emitted
// at debug, so a non-debug tracer stays quiet on the hot path).
func New(json bool, debug bool) (*Tracer, error) {
	level := zapcore.InfoLevel
	encoding := "console"

	if json {
		encoding = "json"
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "event",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.RFC3339TimeEncoder,
		},
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Tracer{logger: logger}, nil
}

// Nop returns a tracer that discards every event.
func Nop() *Tracer {
	return &Tracer{logger: zap.NewNop()}
}

// RoleSkillsSelected records which skill source won the priority chain for a role.
func (t *Tracer) RoleSkillsSelected(roleID, source string, skillCount int, hasSkillsListed bool) {
	if t == nil || t.logger == nil {
		return
	}
	t.logger.Debug("role_skills_selected",
		zap.String("role_id", roleID),
		zap.String("source", source),
		zap.Int("skill_count", skillCount),
		zap.Bool("has_skills_listed", hasSkillsListed),
	)
}

// MatchComputed records the outcome of scoring one role.
func (t *Tracer) MatchComputed(roleID string, overallScore, skillsMatched, totalSkills int) {
	if t == nil || t.logger == nil {
		return
	}
	t.logger.Debug("match_computed",
		zap.String("role_id", roleID),
		zap.Int("overall_score", overallScore),
		zap.Int("skills_matched", skillsMatched),
		zap.Int("total_skills", totalSkills),
	)
}

// Sync flushes buffered events, if any.
func (t *Tracer) Sync() {
	if t == nil || t.logger == nil {
		return
	}
	_ = t.logger.Sync()
}
