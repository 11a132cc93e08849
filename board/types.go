// Package board defines the square, offset and option types, plus
// sentinel errors, for knight move graphs.
package board

import (
	"errors"
	"fmt"
)

// Sentinel errors for board construction and lookups.
var (
	// ErrInvalidDimensions indicates a negative row or column count, or a
	// board larger than MaxSquares.
	ErrInvalidDimensions = errors.New("board: invalid dimensions")
	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("board: invalid option supplied")
	// ErrOutOfBounds indicates a square outside [0,Rows)×[0,Cols).
	ErrOutOfBounds = errors.New("board: square out of bounds")
	// ErrBadNotation indicates a square string that could not be parsed.
	ErrBadNotation = errors.New("board: malformed square notation")
)

// MaxSquares caps Rows×Cols. NewBoard allocates an adjacency list per
// square, so larger boards are rejected with ErrInvalidDimensions.
const MaxSquares = 1 << 22

// Square is a 0-indexed (row, col) position on a board.
// It encodes as the text "row,col" (see MarshalText).
type Square struct {
	Row, Col int
}

// Offset is a single movement displacement, applied as
// (Row+DRow, Col+DCol).
type Offset struct {
	DRow, DCol int
}

// Apply returns the square reached from sq by o. The result may be off-board.
func (o Offset) Apply(sq Square) Square {
	return Square{Row: sq.Row + o.DRow, Col: sq.Col + o.DCol}
}

// KnightOffsets are the eight knight displacements in the fixed order used
// to build neighbor lists. Search tie-breaking follows this order.
var KnightOffsets = [8]Offset{
	{2, -1}, {1, -2}, {-1, -2}, {-2, -1},
	{-2, 1}, {-1, 2}, {1, 2}, {2, 1},
}

// Option configures board construction via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by NewBoard.
type Option func(*Options)

// Options holds the tunable parameters of NewBoard.
type Options struct {
	// Offsets is the ordered movement set; defaults to KnightOffsets.
	Offsets []Offset

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the knight offset set.
func DefaultOptions() Options {
	return Options{
		Offsets: KnightOffsets[:],
	}
}

// WithOffsets replaces the movement set. Order is preserved and determines
// neighbor order. A zero offset or a repeated offset is a violation.
func WithOffsets(offsets ...Offset) Option {
	return func(o *Options) {
		if err := ValidateOffsets(offsets...); err != nil {
			o.err = err
			return
		}
		o.Offsets = append([]Offset(nil), offsets...)
	}
}

// ValidateOffsets reports ErrOptionViolation for a zero or repeated offset.
func ValidateOffsets(offsets ...Offset) error {
	seen := make(map[Offset]struct{}, len(offsets))
	for _, off := range offsets {
		if off == (Offset{}) {
			return fmt.Errorf("%w: zero offset", ErrOptionViolation)
		}
		if _, dup := seen[off]; dup {
			return fmt.Errorf("%w: duplicate offset (%d,%d)", ErrOptionViolation, off.DRow, off.DCol)
		}
		seen[off] = struct{}{}
	}
	return nil
}
