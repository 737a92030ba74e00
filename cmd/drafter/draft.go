package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/kingrea/drafter/internal/balance"
	"github.com/kingrea/drafter/internal/present"
	"github.com/kingrea/drafter/internal/selection"
)

type draftFlags struct {
	players []string
	seed    int64
	export  bool
	copy    bool
}

func newDraftCmd(global *globalFlags) *cobra.Command {
	flags := &draftFlags{}
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Draft two teams from ten named players",
		Long: `Draft picks the named players from the roster and prints the most
balanced five-versus-five split, followed by the copy-paste summary.`,
		Example: `  drafter draft --players ana,ben,cal,dee,eli,fay,gus,hal,ivy,jon --seed 7`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDraft(cmd, global, flags)
		},
	}
	cmd.Flags().StringSliceVarP(&flags.players, "players", "p", nil, "comma-separated names of exactly ten players")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "shuffle seed (0 uses draft.seed or a fresh seed)")
	cmd.Flags().BoolVar(&flags.export, "export", false, "write the draft record to the export directory")
	cmd.Flags().BoolVar(&flags.copy, "copy", false, "copy the team summary to the clipboard")
	_ = cmd.MarkFlagRequired("players")
	return cmd
}

func runDraft(cmd *cobra.Command, global *globalFlags, flags *draftFlags) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	cfg, err := global.loadConfig()
	if err != nil {
		return err
	}
	if flags.seed < 0 {
		return fmt.Errorf("--seed must be >= 0, got %d", flags.seed)
	}
	if flags.seed != 0 {
		cfg.SetSeed(flags.seed)
	}
	result, book, err := loadRoster(cfg, errOut)
	if err != nil {
		return err
	}

	if dups := lo.FindDuplicates(flags.players); len(dups) > 0 {
		return fmt.Errorf("players named more than once: %s", strings.Join(dups, ", "))
	}
	sel := selection.New(result.Participants)
	for _, name := range flags.players {
		if _, err := sel.Toggle(name); err != nil {
			return err
		}
	}
	var opts []balance.Option
	if seed := cfg.Seed(); seed != 0 {
		opts = append(opts, balance.WithSeed(seed))
	}
	split, err := sel.Draft(opts...)
	if err != nil {
		var incomplete *balance.IncompleteSelectionError
		if errors.As(err, &incomplete) {
			return fmt.Errorf("please select exactly %d players (got %d): %w",
				selection.Limit, incomplete.Count, err)
		}
		return err
	}
	book.Info("Draft · %d vs %d (diff %d, role balance %d, seed %d)",
		split.ScoreA, split.ScoreB, split.ScoreDiff(), split.RoleBalance, split.Seed)

	present.Table(out, split)
	fmt.Fprintln(out)
	fmt.Fprintln(out, present.Summary(split))

	if flags.export {
		rec := present.NewRecord(split, time.Now())
		path, err := present.Export(cfg.ExportDir(), rec)
		if err != nil {
			book.Error("Export failed: %v", err)
			return err
		}
		book.Info("Draft %s exported to %s", rec.ID, path)
		fmt.Fprintln(errOut, color.Green.Sprintf("exported %s", path))
	}
	if flags.copy {
		if err := present.CopyToClipboard(present.Summary(split)); err != nil {
			book.Warn("Clipboard copy failed: %v", err)
		} else {
			fmt.Fprintln(errOut, color.Green.Sprint("summary copied to clipboard"))
		}
	}
	return nil
}
