package main

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/kingrea/drafter/internal/present"
	"github.com/kingrea/drafter/internal/roster"
)

func newListCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the player pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.loadConfig()
			if err != nil {
				return err
			}
			result, _, err := loadRoster(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			present.PoolTable(out, result.Participants, nil)
			fmt.Fprintf(out, "\n%d players, total score %d, %d distinct roles\n",
				len(result.Participants),
				roster.TotalScore(result.Participants),
				roster.DistinctRoles(result.Participants))
			if n := len(result.Diagnostics); n > 0 {
				fmt.Fprintln(out, color.Yellow.Sprintf("%d line(s) skipped", n))
			}
			return nil
		},
	}
}
