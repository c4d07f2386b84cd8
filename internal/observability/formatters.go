// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/cretiq/skillmatch/internal/batch"
	"github.com/cretiq/skillmatch/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRoleScore outputs a human-readable summary of one role's match score.
func (p *Printer) PrintRoleScore(score *types.RoleMatchScore) {
	if score == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Role:     %s\n", score.RoleID))
	if !score.HasSkillsListed {
		sb.WriteString("No skills listed for this role")
		p.printBox("ROLE MATCH", sb.String())
		return
	}

	sb.WriteString(fmt.Sprintf("Score:    %d%%  (%d/%d skills)\n", score.OverallScore, score.SkillsMatched, score.TotalSkills))
	sb.WriteString(fmt.Sprintf("Source:   %s\n", score.Source))

	if len(score.MatchedSkills) > 0 {
		sb.WriteString("\nMatched Skills:\n")
		count := min(len(score.MatchedSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := score.MatchedSkills[i]
			sb.WriteString(fmt.Sprintf("  • %s", m.SkillName))
			if m.Confidence < 1.0 {
				sb.WriteString(fmt.Sprintf(" (~%.2f)", m.Confidence))
			}
			sb.WriteString("\n")
		}
		if len(score.MatchedSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(score.MatchedSkills)-maxItemsToShow))
		}
	}

	sb.WriteString(fmt.Sprintf("\nBreakdown: %d exact, %d alias, %d fuzzy (weighted %.1f)",
		score.Breakdown.ExactMatches, score.Breakdown.AliasMatches,
		score.Breakdown.FuzzyMatches, score.Breakdown.WeightedScore))

	p.printBox("ROLE MATCH", sb.String())
}

// PrintBatchResult outputs the batch summary: top-scored roles and per-role errors.
func (p *Printer) PrintBatchResult(result *types.BatchMatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("User:      %s\n", result.UserID))
	sb.WriteString(fmt.Sprintf("Processed: %d roles in %dms\n", result.TotalProcessed, result.ProcessingTimeMs))
	sb.WriteString(fmt.Sprintf("Scored:    %d   Errors: %d", len(result.RoleScores), len(result.Errors)))

	ranked := batch.SortByScore(result.RoleScores)
	if len(ranked) > 0 {
		sb.WriteString("\n\n")
		count := min(len(ranked), maxItemsToShow)
		for i := 0; i < count; i++ {
			score := ranked[i]
			sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, score.RoleID))
			if score.HasSkillsListed {
				sb.WriteString(fmt.Sprintf("    %d%%  (%d/%d skills, %s)\n",
					score.OverallScore, score.SkillsMatched, score.TotalSkills, score.Source))
			} else {
				sb.WriteString("    no skills listed\n")
			}
		}
		if len(ranked) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more roles\n", len(ranked)-maxItemsToShow))
		}
	}

	p.printBox("BATCH MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))

	p.PrintErrors(result.Errors)
}

// PrintErrors outputs per-role errors collected during a batch run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintErrors(errs []types.MatchError) {
	if len(errs) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO ROLE ERRORS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d role errors:\n\n", len(errs)))

	for i, e := range errs {
		message := e.Message
		if len(message) > 45 {
			message = message[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s [%s]\n", e.RoleID, e.Code))
		sb.WriteString(fmt.Sprintf("  %s\n", message))
		if i < len(errs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("ROLE ERRORS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStatistics outputs aggregate statistics over a batch of role scores.
func (p *Printer) PrintStatistics(stats batch.Statistics) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total roles:     %d\n", stats.TotalRoles))
	sb.WriteString(fmt.Sprintf("Skills listed:   %d  (no data: %d)\n", stats.WithSkillsListed, stats.WithoutSkillsListed))
	sb.WriteString(fmt.Sprintf("Average score:   %.1f\n", stats.AverageScore))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("High   (>70):    %d\n", stats.HighMatches))
	sb.WriteString(fmt.Sprintf("Medium (40-70):  %d\n", stats.MediumMatches))
	sb.WriteString(fmt.Sprintf("Low    (<40):    %d", stats.LowMatches))

	p.printBox("MATCH STATISTICS", sb.String())
}
