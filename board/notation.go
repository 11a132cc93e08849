package board

import (
	"fmt"
	"strconv"
	"strings"
)

// maxFiles is the widest board that algebraic notation can address (a–z).
const maxFiles = 26

// String formats sq as "[row,col]".
func (sq Square) String() string {
	return fmt.Sprintf("[%d,%d]", sq.Row, sq.Col)
}

// Algebraic formats sq in chess notation: file letter from Col, rank Row+1,
// so (0,0) is "a1" and (7,7) is "h8". ok is false for negative coordinates
// or columns beyond 'z'.
func (sq Square) Algebraic() (s string, ok bool) {
	if sq.Row < 0 || sq.Col < 0 || sq.Col >= maxFiles {
		return "", false
	}
	return string(rune('a'+sq.Col)) + strconv.Itoa(sq.Row+1), true
}

// ParseSquare reads "row,col" (e.g. "0,0") or algebraic notation (e.g. "a1").
// Surrounding whitespace and brackets are ignored. Bounds are not checked,
// so "-1,0" parses; signs other than a leading '-' on a coordinate and
// ranks with leading zeros are rejected.
func ParseSquare(s string) (Square, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(t, "[")
	t = strings.TrimSuffix(t, "]")
	if t == "" {
		return Square{}, fmt.Errorf("%w: empty", ErrBadNotation)
	}

	if row, col, found := strings.Cut(t, ","); found {
		r, err := coord(strings.TrimSpace(row))
		if err != nil {
			return Square{}, fmt.Errorf("%w: %q: bad row", ErrBadNotation, s)
		}
		c, err := coord(strings.TrimSpace(col))
		if err != nil {
			return Square{}, fmt.Errorf("%w: %q: bad col", ErrBadNotation, s)
		}
		return Square{Row: r, Col: c}, nil
	}

	file := t[0] | 0x20 // lower-case ASCII
	if file < 'a' || file > 'z' || len(t) < 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}
	digits := t[1:]
	if !isDigits(digits) || digits[0] == '0' {
		return Square{}, fmt.Errorf("%w: %q: bad rank", ErrBadNotation, s)
	}
	rank, err := strconv.Atoi(digits)
	if err != nil {
		return Square{}, fmt.Errorf("%w: %q: bad rank", ErrBadNotation, s)
	}
	return Square{Row: rank - 1, Col: int(file - 'a')}, nil
}

// coord parses a decimal coordinate. A leading '-' is allowed so that
// off-board squares can be written; '+' is not.
func coord(s string) (int, error) {
	if !isDigits(strings.TrimPrefix(s, "-")) {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MarshalText implements encoding.TextMarshaler using "row,col".
func (sq Square) MarshalText() ([]byte, error) {
	return []byte(strconv.Itoa(sq.Row) + "," + strconv.Itoa(sq.Col)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseSquare.
func (sq *Square) UnmarshalText(text []byte) error {
	parsed, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*sq = parsed
	return nil
}
