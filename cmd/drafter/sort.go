package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kingrea/drafter/internal/roster"
)

func newSortCmd(global *globalFlags) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Rewrite the roster file sorted by name",
		Long: `Sort loads the roster and writes it back ordered by player name.
Lines that could not be parsed would be dropped, so sort refuses to run on a
roster with skipped lines unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.loadConfig()
			if err != nil {
				return err
			}
			result, book, err := loadRoster(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if n := len(result.Diagnostics); n > 0 && !force {
				return fmt.Errorf("%s has %d malformed line(s); fix them or pass --force to drop them", result.Path, n)
			}
			if err := roster.Save(result.Path, result.Participants); err != nil {
				book.Error("Roster save failed: %v", err)
				return err
			}
			book.Info("Roster saved sorted to %s", result.Path)
			fmt.Fprintf(cmd.OutOrStdout(), "sorted %d players in %s\n", len(result.Participants), result.Path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "rewrite even when malformed lines would be dropped")
	return cmd
}
