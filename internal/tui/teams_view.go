package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/drafter/internal/balance"
	"github.com/kingrea/drafter/internal/present"
	"github.com/kingrea/drafter/internal/roster"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	readyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	noticeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	scoreStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801")).Bold(true)
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	detailTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0"))
)

func renderTeams(split *balance.TeamSplit, width int) string {
	if split == nil {
		return panelStyle.Render(mutedStyle.Render("No teams yet. Pick 10 players and press d."))
	}
	colWidth := max(30, width/2-4)
	teamA := renderTeamPanel(present.TeamLabel(1), split.TeamA, split.ScoreA, colWidth)
	teamB := renderTeamPanel(present.TeamLabel(2), split.TeamB, split.ScoreB, colWidth)
	var teams string
	if width < 64 {
		teams = lipgloss.JoinVertical(lipgloss.Left, teamA, teamB)
	} else {
		teams = lipgloss.JoinHorizontal(lipgloss.Top, teamA, teamB)
	}
	stats := detailTextStyle.Render(fmt.Sprintf(
		"Score diff %d · Role balance %d · Seed %d",
		split.ScoreDiff(), split.RoleBalance, split.Seed,
	))
	summary := panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		panelTitleStyle.Render("Copy & paste"),
		present.Summary(*split),
	))
	return lipgloss.JoinVertical(lipgloss.Left, teams, stats, summary)
}

func renderTeamPanel(label string, team []roster.Participant, score, width int) string {
	block := present.TeamBlock(label, team)
	title, members, _ := strings.Cut(block, "\n")
	body := lipgloss.JoinVertical(lipgloss.Left,
		panelTitleStyle.Render(title),
		members,
		"",
		scoreStyle.Render(present.ScoreLine(label, score)),
	)
	return panelStyle.Width(width).Render(body)
}
