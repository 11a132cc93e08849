package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knights/board"
	"github.com/katalvlaran/knights/report"
)

type adjacency struct {
	Square    board.Square   `json:"square" yaml:"square"`
	Neighbors []board.Square `json:"neighbors" yaml:"neighbors"`
}

func newNeighborsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors",
		Short: "Dump every square and its one-move neighbors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := a.board()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			f := a.outputFormat()
			if f == report.Text {
				return b.Dump(out)
			}

			list := make([]adjacency, b.Len())
			for i := range list {
				sq := b.SquareAt(i)
				nbrs, _ := b.Neighbors(sq)
				list[i] = adjacency{Square: sq, Neighbors: nbrs}
			}
			return report.Encode(out, f, list)
		},
	}
}
