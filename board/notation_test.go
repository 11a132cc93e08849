package board_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knights/board"
)

// TestParseSquare covers both accepted notations and malformed input.
func TestParseSquare(t *testing.T) {
	valid := map[string]board.Square{
		"0,0":    {Row: 0, Col: 0},
		" 7, 7 ": {Row: 7, Col: 7},
		"[3,4]":  {Row: 3, Col: 4},
		"-1,0":   {Row: -1, Col: 0},
		"a1":     {Row: 0, Col: 0},
		"h8":     {Row: 7, Col: 7},
		"E4":     {Row: 3, Col: 4},
		"b12":    {Row: 11, Col: 1},
		"a10":    {Row: 9, Col: 0},
	}
	for in, want := range valid {
		got, err := board.ParseSquare(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	for _, in := range []string{
		"", "a", "a0", "1", "x,1", "1,y", "?3", "a-1",
		"a+1", "a01", "a 1", "+1,+2", "+1,2", "1,+2", "-,0", "1,",
	} {
		_, err := board.ParseSquare(in)
		require.ErrorIs(t, err, board.ErrBadNotation, in)
	}
}

// TestAlgebraic checks formatting and the a–z file limit.
func TestAlgebraic(t *testing.T) {
	s, ok := board.Square{Row: 0, Col: 0}.Algebraic()
	require.True(t, ok)
	require.Equal(t, "a1", s)

	s, ok = board.Square{Row: 7, Col: 7}.Algebraic()
	require.True(t, ok)
	require.Equal(t, "h8", s)

	_, ok = board.Square{Row: 0, Col: 26}.Algebraic()
	require.False(t, ok)
	_, ok = board.Square{Row: -1, Col: 0}.Algebraic()
	require.False(t, ok)
}

// TestTextEncoding checks Square's text form used by JSON and YAML encoders.
func TestTextEncoding(t *testing.T) {
	txt, err := board.Square{Row: 2, Col: 5}.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "2,5", string(txt))

	var sq board.Square
	require.NoError(t, sq.UnmarshalText([]byte("c4")))
	require.Equal(t, board.Square{Row: 3, Col: 2}, sq)
	require.Error(t, sq.UnmarshalText([]byte("zz")))
}
