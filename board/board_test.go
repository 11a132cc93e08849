package board_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knights/board"
)

//----------------------------------------------------------------------------//
// NewBoard validation
//----------------------------------------------------------------------------//

// TestNewBoard_Errors verifies that negative or oversized dimensions and
// bad offsets are rejected.
func TestNewBoard_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		opts       []board.Option
		err        error
	}{
		{"NegativeRows", -1, 8, nil, board.ErrInvalidDimensions},
		{"NegativeCols", 8, -3, nil, board.ErrInvalidDimensions},
		{"ZeroOffset", 8, 8, []board.Option{board.WithOffsets(board.Offset{})}, board.ErrOptionViolation},
		{"Overflow", 1 << 32, 1 << 32, nil, board.ErrInvalidDimensions},
		{"TooManySquares", board.MaxSquares, 2, nil, board.ErrInvalidDimensions},
		{"OneOverCap", 1, board.MaxSquares + 1, nil, board.ErrInvalidDimensions},
		{"DuplicateOffset", 8, 8, []board.Option{board.WithOffsets(board.Offset{DRow: 1, DCol: 2}, board.Offset{DRow: 1, DCol: 2})}, board.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := board.NewBoard(tc.rows, tc.cols, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewBoard(%d,%d) error = %v; want %v", tc.rows, tc.cols, err, tc.err)
			}
			if b != nil {
				t.Errorf("NewBoard(%d,%d) returned a board alongside an error", tc.rows, tc.cols)
			}
		})
	}
}

// TestNewBoard_Empty checks that zero-sized boards are valid and have no nodes.
func TestNewBoard_Empty(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 8}, {8, 0}} {
		b, err := board.NewBoard(dims[0], dims[1])
		require.NoError(t, err)
		require.Zero(t, b.Len())
		require.False(t, b.InBounds(board.Square{}))
	}
}

//----------------------------------------------------------------------------//
// Adjacency
//----------------------------------------------------------------------------//

// TestNeighbors_CornerOrder checks the corner neighbors appear in offset order.
func TestNeighbors_CornerOrder(t *testing.T) {
	b, err := board.NewBoard(8, 8)
	require.NoError(t, err)

	got, err := b.Neighbors(board.Square{Row: 0, Col: 0})
	require.NoError(t, err)
	require.Equal(t, []board.Square{{Row: 1, Col: 2}, {Row: 2, Col: 1}}, got)

	got, err = b.Neighbors(board.Square{Row: 7, Col: 7})
	require.NoError(t, err)
	require.Equal(t, []board.Square{{Row: 6, Col: 5}, {Row: 5, Col: 6}}, got)
}

// TestNeighbors_OutOfBounds ensures off-board lookups fail with ErrOutOfBounds.
func TestNeighbors_OutOfBounds(t *testing.T) {
	b, err := board.NewBoard(8, 8)
	require.NoError(t, err)
	_, err = b.Neighbors(board.Square{Row: 8, Col: 0})
	require.ErrorIs(t, err, board.ErrOutOfBounds)
}

// TestDegreeCounts verifies the classic 8×8 knight graph: 168 edges,
// corners of degree 2 and centre squares of degree 8.
func TestDegreeCounts(t *testing.T) {
	b, err := board.NewBoard(8, 8)
	require.NoError(t, err)
	require.Equal(t, 64, b.Len())

	sum := 0
	for i := 0; i < b.Len(); i++ {
		sum += len(b.Adjacent(i))
	}
	require.Equal(t, 2*168, sum)

	corner, _ := b.Index(board.Square{Row: 0, Col: 7})
	require.Len(t, b.Adjacent(corner), 2)
	centre, _ := b.Index(board.Square{Row: 3, Col: 4})
	require.Len(t, b.Adjacent(centre), 8)
}

// TestSymmetry checks that A∈N(B) ⇔ B∈N(A) for several board shapes.
func TestSymmetry(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 3}, {3, 7}, {8, 8}, {10, 5}} {
		b, err := board.NewBoard(dims[0], dims[1])
		require.NoError(t, err)
		for i := 0; i < b.Len(); i++ {
			for _, j := range b.Adjacent(i) {
				require.Contains(t, b.Adjacent(j), i,
					"%dx%d: %v→%v has no reverse edge", dims[0], dims[1], b.SquareAt(i), b.SquareAt(j))
			}
		}
	}
}

// TestIndexRoundTrip checks Index and SquareAt are inverse on a non-square board.
func TestIndexRoundTrip(t *testing.T) {
	b, err := board.NewBoard(3, 5)
	require.NoError(t, err)
	for i := 0; i < b.Len(); i++ {
		sq := b.SquareAt(i)
		j, ok := b.Index(sq)
		require.True(t, ok)
		require.Equal(t, i, j)
	}
	_, ok := b.Index(board.Square{Row: 0, Col: 5})
	require.False(t, ok)
	_, ok = b.Index(board.Square{Row: -1, Col: 0})
	require.False(t, ok)
}

// TestIsMove covers on-board knight moves, non-moves and off-board squares.
func TestIsMove(t *testing.T) {
	b, err := board.NewBoard(8, 8)
	require.NoError(t, err)
	require.True(t, b.IsMove(board.Square{Row: 0, Col: 0}, board.Square{Row: 2, Col: 1}))
	require.True(t, b.IsMove(board.Square{Row: 2, Col: 1}, board.Square{Row: 0, Col: 0}))
	require.False(t, b.IsMove(board.Square{Row: 0, Col: 0}, board.Square{Row: 1, Col: 1}))
	require.False(t, b.IsMove(board.Square{Row: 0, Col: 0}, board.Square{Row: 0, Col: 0}))
	require.False(t, b.IsMove(board.Square{Row: 7, Col: 7}, board.Square{Row: 9, Col: 8}))
}

// TestWithOffsets builds a "wazir" board (orthogonal single steps) and checks
// that neighbors follow the supplied order.
func TestWithOffsets(t *testing.T) {
	b, err := board.NewBoard(3, 3, board.WithOffsets(
		board.Offset{DRow: -1, DCol: 0}, board.Offset{DRow: 0, DCol: 1}, board.Offset{DRow: 1, DCol: 0}, board.Offset{DRow: 0, DCol: -1},
	))
	require.NoError(t, err)
	got, err := b.Neighbors(board.Square{Row: 1, Col: 1})
	require.NoError(t, err)
	require.Equal(t, []board.Square{{Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 1, Col: 0}}, got)
	require.Len(t, b.Offsets(), 4)
}

// TestOffsetsCopy ensures callers cannot mutate the board through Offsets.
func TestOffsetsCopy(t *testing.T) {
	b, err := board.NewBoard(8, 8)
	require.NoError(t, err)
	offs := b.Offsets()
	offs[0] = board.Offset{DRow: 5, DCol: 5}
	require.Equal(t, board.KnightOffsets[0], b.Offsets()[0])
}

//----------------------------------------------------------------------------//
// Dump
//----------------------------------------------------------------------------//

// TestDump checks one line per node and the neighbor listing format.
func TestDump(t *testing.T) {
	b, err := board.NewBoard(8, 8)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, b.Dump(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 64)
	require.Equal(t, "[0,0] neighbors: [1,2] [2,1]", lines[0])
}
