// Package board builds the static move graph of a rectangular board.
package board

import "fmt"

// Board is an immutable R×C move graph. Nodes live in a row-major arena;
// adj[i] holds the indices of the nodes reachable from node i by one offset.
type Board struct {
	rows, cols int
	offsets    []Offset
	squares    []Square
	adj        [][]int
}

// NewBoard constructs the move graph for a rows×cols board.
// Returns ErrInvalidDimensions for negative sizes or more than MaxSquares
// squares, and ErrOptionViolation
// for invalid options. A zero-sized board has no nodes.
// Complexity: O(rows×cols×k) time and memory.
func NewBoard(rows, cols int, opts ...Option) (*Board, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	// division keeps the check itself from overflowing
	if cols != 0 && rows > MaxSquares/cols {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d squares", ErrInvalidDimensions, rows, cols, MaxSquares)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := rows * cols
	b := &Board{
		rows:    rows,
		cols:    cols,
		offsets: append([]Offset(nil), o.Offsets...),
		squares: make([]Square, n),
		adj:     make([][]int, n),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			b.squares[b.index(r, c)] = Square{Row: r, Col: c}
		}
	}
	for i, sq := range b.squares {
		nbrs := make([]int, 0, len(b.offsets))
		for _, off := range b.offsets {
			t := off.Apply(sq)
			if !b.InBounds(t) {
				continue
			}
			nbrs = append(nbrs, b.index(t.Row, t.Col))
		}
		b.adj[i] = nbrs
	}

	return b, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Len returns the number of nodes (Rows×Cols).
func (b *Board) Len() int { return len(b.squares) }

// Offsets returns a copy of the ordered movement set.
func (b *Board) Offsets() []Offset {
	return append([]Offset(nil), b.offsets...)
}

// InBounds reports whether sq lies within the board.
// Complexity: O(1).
func (b *Board) InBounds(sq Square) bool {
	return sq.Row >= 0 && sq.Row < b.rows && sq.Col >= 0 && sq.Col < b.cols
}

// Index maps sq to its row-major node index. ok is false when sq is off-board.
func (b *Board) Index(sq Square) (i int, ok bool) {
	if !b.InBounds(sq) {
		return -1, false
	}
	return b.index(sq.Row, sq.Col), true
}

// SquareAt converts a node index back to its square.
// It panics if i is not in [0, Len()).
func (b *Board) SquareAt(i int) Square {
	return b.squares[i]
}

// Adjacent returns the neighbor indices of node i in offset order.
// The slice is shared with the board and must not be modified.
func (b *Board) Adjacent(i int) []int {
	return b.adj[i]
}

// Neighbors returns the squares one move away from sq, in offset order.
// Returns ErrOutOfBounds if sq is off-board.
func (b *Board) Neighbors(sq Square) ([]Square, error) {
	i, ok := b.Index(sq)
	if !ok {
		return nil, fmt.Errorf("%w: %v on %dx%d", ErrOutOfBounds, sq, b.rows, b.cols)
	}
	out := make([]Square, len(b.adj[i]))
	for k, j := range b.adj[i] {
		out[k] = b.squares[j]
	}
	return out, nil
}

// IsMove reports whether to is reachable from from by exactly one offset,
// with both squares on the board.
func (b *Board) IsMove(from, to Square) bool {
	if !b.InBounds(from) || !b.InBounds(to) {
		return false
	}
	for _, off := range b.offsets {
		if off.Apply(from) == to {
			return true
		}
	}
	return false
}

// index maps (row,col) to a row-major index: row*cols + col.
func (b *Board) index(row, col int) int {
	return row*b.cols + col
}
