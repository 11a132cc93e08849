package board

import (
	"bufio"
	"io"
)

// Dump writes every node and its neighbor list to w, one node per line
// in row-major order:
//
//	[0,0] neighbors: [2,1] [1,2]
//
// The output is diagnostic only.
func (b *Board) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, sq := range b.squares {
		bw.WriteString(sq.String())
		bw.WriteString(" neighbors:")
		for _, j := range b.adj[i] {
			bw.WriteByte(' ')
			bw.WriteString(b.squares[j].String())
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
