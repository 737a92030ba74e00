// Package present turns a balance.TeamSplit into text: per-team listings, the
// copy-paste summary, tables for the CLI, clipboard copies, and exported
// draft records.
package present

import (
	"fmt"
	"strings"

	"github.com/kingrea/drafter/internal/balance"
	"github.com/kingrea/drafter/internal/roster"
)

const separatorWidth = 40

// TeamLabel returns the display name for team n (1 or 2).
func TeamLabel(n int) string {
	return fmt.Sprintf("Team %d", n)
}

// Summary is the two-line copy-paste form of a split:
//
//	Team 1: a, b, c, d, e
//	Team 2: f, g, h, i, j
func Summary(split balance.TeamSplit) string {
	return fmt.Sprintf("%s: %s\n%s: %s",
		TeamLabel(1), strings.Join(roster.Names(split.TeamA), ", "),
		TeamLabel(2), strings.Join(roster.Names(split.TeamB), ", "),
	)
}

// MemberLine renders one player as shown in the team listing.
func MemberLine(p roster.Participant) string {
	return fmt.Sprintf("%s, Score: %d, Role: %s", p.Name, p.Score, p.Role)
}

// TeamBlock lists a team's members separated by dashed rules, without a
// trailing rule.
func TeamBlock(label string, team []roster.Participant) string {
	var b strings.Builder
	b.WriteString(label)
	b.WriteString(":\n")
	rule := strings.Repeat("-", separatorWidth)
	for i, p := range team {
		b.WriteString(MemberLine(p))
		if i < len(team)-1 {
			b.WriteString("\n")
			b.WriteString(rule)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// ScoreLine is the aggregate score line shown under a team.
func ScoreLine(label string, score int) string {
	return fmt.Sprintf("%s Score: %d", label, score)
}
