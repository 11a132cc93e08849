package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knights/batch"
	"github.com/katalvlaran/knights/internal/logging"
	"github.com/katalvlaran/knights/report"
)

// batchEntry is the structured form of one batch outcome.
type batchEntry struct {
	Query    string           `json:"query" yaml:"query"`
	Error    string           `json:"error,omitempty" yaml:"error,omitempty"`
	Solution *report.Solution `json:"solution,omitempty" yaml:"solution,omitempty"`
}

func newBatchCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Answer the queries listed under batch.queries in the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(a.cfg.Batch.Queries) == 0 {
				return fmt.Errorf("batch: no queries configured (see batch.queries)")
			}
			if cmd.Flags().Changed("workers") {
				a.cfg.Batch.Workers = workers
			}
			b, err := a.board()
			if err != nil {
				return err
			}

			queries := make([]batch.Query, len(a.cfg.Batch.Queries))
			for i, q := range a.cfg.Batch.Queries {
				queries[i] = batch.Query{ID: q.ID, From: q.From, To: q.To}
			}
			start := time.Now()
			outcomes, err := batch.Run(cmd.Context(), b, queries,
				batch.WithWorkers(a.cfg.Batch.Workers),
				batch.WithLogger(logging.Component(a.log, "batch")),
			)
			if err != nil {
				return err
			}

			failed := 0
			entries := make([]batchEntry, len(outcomes))
			for i, o := range outcomes {
				entries[i].Query = o.Query.ID
				if o.Err != nil {
					failed++
					entries[i].Error = o.Err.Error()
					continue
				}
				id, err := uuid.Parse(o.Query.ID)
				if err != nil {
					id = uuid.NewSHA1(uuid.NameSpaceOID, []byte(o.Query.ID))
				}
				sol := report.NewSolution(id, b, o.Result)
				entries[i].Solution = &sol
			}
			a.log.Info().Int("queries", len(outcomes)).Int("failed", failed).Dur("elapsed", time.Since(start)).Msg("batch finished")

			if err := a.writeBatch(cmd, entries); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("batch: %d of %d queries failed", failed, len(outcomes))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent searches (default from config)")
	return cmd
}

// writeBatch prints one line per query in text mode, or the full list.
func (a *app) writeBatch(cmd *cobra.Command, entries []batchEntry) error {
	out := cmd.OutOrStdout()
	if f := a.outputFormat(); f != report.Text {
		return report.Encode(out, f, entries)
	}
	for _, e := range entries {
		switch {
		case e.Error != "":
			fmt.Fprintf(out, "%s: error: %s\n", e.Query, e.Error)
		case !e.Solution.Reachable:
			fmt.Fprintf(out, "%s: %v -> %v unreachable\n", e.Query, e.Solution.From, e.Solution.To)
		default:
			fmt.Fprintf(out, "%s: %v -> %v moves: %d\n", e.Query, e.Solution.From, e.Solution.To, e.Solution.Moves)
		}
	}
	return nil
}
