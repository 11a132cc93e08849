package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knights/bfs"
	"github.com/katalvlaran/knights/report"
)

// pathFlags are the query flags shared by the root and path commands.
type pathFlags struct {
	from, to string
	dump     bool
}

func (pf *pathFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&pf.from, "from", "0,0", "source square")
	cmd.Flags().StringVar(&pf.to, "to", "7,7", "destination square")
	cmd.Flags().BoolVar(&pf.dump, "dump", false, "print the board's neighbor lists first")
}

func newPathCmd(a *app) *cobra.Command {
	pf := &pathFlags{}
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print one shortest path between two squares",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPath(cmd, pf)
		},
	}
	pf.register(cmd)
	return cmd
}

func (a *app) runPath(cmd *cobra.Command, pf *pathFlags) error {
	src, err := square(cmd, "from", pf.from, a.cfg.From)
	if err != nil {
		return err
	}
	dst, err := square(cmd, "to", pf.to, a.cfg.To)
	if err != nil {
		return err
	}
	b, err := a.board()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if pf.dump || a.cfg.Dump {
		if err := b.Dump(out); err != nil {
			return err
		}
	}

	id := uuid.New()
	start := time.Now()
	res, err := bfs.Search(b, src, dst, bfs.WithContext(cmd.Context()))
	if err != nil {
		a.log.Error().Err(err).Str("query", id.String()).Stringer("from", src).Stringer("to", dst).Msg("search failed")
		return err
	}
	msg := "path found"
	if len(res.Path) == 0 {
		msg = "destination unreachable"
	}
	a.log.Info().
		Str("query", id.String()).
		Stringer("from", src).
		Stringer("to", dst).
		Int("moves", res.Moves()).
		Int("dequeued", len(res.Order)).
		Dur("elapsed", time.Since(start)).
		Msg(msg)

	if f := a.outputFormat(); f != report.Text {
		return report.Encode(out, f, report.NewSolution(id, b, res))
	}
	return report.WritePath(out, res)
}
