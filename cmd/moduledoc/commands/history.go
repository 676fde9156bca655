package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	ferrors "git.home.luguber.info/inful/moduledoc/internal/foundation/errors"
)

// HistoryCmd implements the 'history' command.
type HistoryCmd struct {
	Limit int `short:"n" help:"Number of runs to show" default:"10"`
}

func (h *HistoryCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if cfg.History.Path == "" {
		return ferrors.ConfigError("history.path is not set").Build()
	}
	store, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	runs, err := store.Recent(context.Background(), h.Limit)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STARTED\tRUN\tAPPLICATION\tMODULES\tFRAGMENTS\tARTIFACTS\tOUTCOME\tDURATION")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			r.Start.Format(time.RFC3339), r.ID, r.Application, r.Modules, r.TotalFragments(),
			r.Artifacts, r.Outcome, r.Duration)
	}
	return tw.Flush()
}
