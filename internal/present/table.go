package present

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/kingrea/drafter/internal/balance"
	"github.com/kingrea/drafter/internal/roster"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	return table
}

// Table writes both teams of split as a table with the totals in the footer.
func Table(w io.Writer, split balance.TeamSplit) {
	table := newTable(w, []string{"Team", "Name", "Score", "Role"})
	appendTeam := func(label string, team []roster.Participant) {
		for _, p := range team {
			table.Append([]string{label, p.Name, strconv.Itoa(p.Score), p.Role})
		}
	}
	appendTeam(TeamLabel(1), split.TeamA)
	appendTeam(TeamLabel(2), split.TeamB)
	table.SetFooter([]string{
		"Totals",
		fmt.Sprintf("%d vs %d", split.ScoreA, split.ScoreB),
		fmt.Sprintf("diff %d", split.ScoreDiff()),
		fmt.Sprintf("role balance %d", split.RoleBalance),
	})
	table.Render()
}

// PoolTable writes the player pool with a selection marker column.
func PoolTable(w io.Writer, players []roster.Participant, selected func(name string) bool) {
	table := newTable(w, []string{"#", "Name", "Score", "Role", "Picked"})
	for i, p := range players {
		mark := ""
		if selected != nil && selected(p.Name) {
			mark = "yes"
		}
		table.Append([]string{strconv.Itoa(i + 1), p.Name, strconv.Itoa(p.Score), p.Role, mark})
	}
	table.Render()
}
