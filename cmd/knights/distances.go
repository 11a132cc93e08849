package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knights/bfs"
	"github.com/katalvlaran/knights/board"
	"github.com/katalvlaran/knights/report"
)

// distanceTable is the structured form of the distances command.
type distanceTable struct {
	From board.Square `json:"from" yaml:"from"`
	Rows int          `json:"rows" yaml:"rows"`
	Cols int          `json:"cols" yaml:"cols"`
	// Dist[r][c] is the move count, -1 when unreachable.
	Dist [][]int `json:"dist" yaml:"dist"`
}

func newDistancesCmd(a *app) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "distances",
		Short: "Print the move distance from one square to every square",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := square(cmd, "from", from, a.cfg.From)
			if err != nil {
				return err
			}
			b, err := a.board()
			if err != nil {
				return err
			}
			res, err := bfs.BFS(b, src, bfs.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			a.log.Info().Stringer("from", src).Int("reached", len(res.Order)).Int("squares", b.Len()).Msg("distances computed")

			out := cmd.OutOrStdout()
			if f := a.outputFormat(); f != report.Text {
				t := distanceTable{From: src, Rows: b.Rows(), Cols: b.Cols(), Dist: make([][]int, b.Rows())}
				for r := range t.Dist {
					t.Dist[r] = res.Dist[r*b.Cols() : (r+1)*b.Cols()]
				}
				return report.Encode(out, f, t)
			}
			return report.WriteDistances(out, b, res)
		},
	}
	cmd.Flags().StringVar(&from, "from", "0,0", "source square")
	return cmd
}
