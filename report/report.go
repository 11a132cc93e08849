// Package report renders search results as diagnostic text or as
// structured JSON/YAML documents.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knights/bfs"
	"github.com/katalvlaran/knights/board"
)

// ErrUnknownFormat is returned by ParseFormat and Encode for unsupported formats.
var ErrUnknownFormat = errors.New("report: unknown output format")

// Format selects an output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, JSON, YAML:
		return f, nil
	case "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Step is one square of a solution together with its visitation data.
type Step struct {
	Square      board.Square  `json:"square" yaml:"square"`
	Algebraic   string        `json:"algebraic,omitempty" yaml:"algebraic,omitempty"`
	Distance    int           `json:"distance" yaml:"distance"`
	Predecessor *board.Square `json:"predecessor,omitempty" yaml:"predecessor,omitempty"`
}

// Solution is the structured form of one answered query.
type Solution struct {
	ID        uuid.UUID    `json:"id" yaml:"id"`
	Rows      int          `json:"rows" yaml:"rows"`
	Cols      int          `json:"cols" yaml:"cols"`
	From      board.Square `json:"from" yaml:"from"`
	To        board.Square `json:"to" yaml:"to"`
	Reachable bool         `json:"reachable" yaml:"reachable"`
	Moves     int          `json:"moves" yaml:"moves"`
	Steps     []Step       `json:"steps" yaml:"steps"`
}

// NewSolution builds a Solution from a completed Search result.
func NewSolution(id uuid.UUID, b *board.Board, res *bfs.Result) Solution {
	s := Solution{
		ID:        id,
		Rows:      b.Rows(),
		Cols:      b.Cols(),
		From:      res.Source,
		To:        res.Target,
		Reachable: len(res.Path) > 0,
		Moves:     res.Moves(),
		Steps:     make([]Step, 0, len(res.Path)),
	}
	for _, sq := range res.Path {
		st := Step{Square: sq, Distance: res.Distance(sq)}
		st.Algebraic, _ = sq.Algebraic()
		if p, ok := res.Predecessor(sq); ok {
			st.Predecessor = &p
		}
		s.Steps = append(s.Steps, st)
	}
	return s
}

// Encode writes v to w as JSON or YAML. Text is not a structured format
// and is rejected here; use WritePath or WriteDistances instead.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q is not structured", ErrUnknownFormat, f)
	}
}

// WritePath writes the diagnostic rendering of a Search result:
//
//	moves: 2
//	Node[0, 0] -> (distance:0, predecessor:none)
//	Node[2, 1] -> (distance:1, predecessor:Node[0, 0])
//	...
//
// An unreachable target prints "moves: -1" and a "no path" line.
func WritePath(w io.Writer, res *bfs.Result) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "moves: %d\n", res.Moves())
	if len(res.Path) == 0 {
		fmt.Fprintf(bw, "no path from %v to %v\n", res.Source, res.Target)
		return bw.Flush()
	}
	for _, sq := range res.Path {
		pred := "none"
		if p, ok := res.Predecessor(sq); ok {
			pred = node(p)
		}
		fmt.Fprintf(bw, "%s -> (distance:%d, predecessor:%s)\n", node(sq), res.Distance(sq), pred)
	}
	return bw.Flush()
}

// WriteDistances writes the distance of every square from res.Source as a
// grid, row 0 first. Unreached squares print as ".".
func WriteDistances(w io.Writer, b *board.Board, res *bfs.Result) error {
	width := 1
	for _, d := range res.Dist {
		if n := len(strconv.Itoa(d)); d != bfs.Unvisited && n > width {
			width = n
		}
	}
	bw := bufio.NewWriter(w)
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if c > 0 {
				bw.WriteByte(' ')
			}
			cell := "."
			if d := res.Distance(board.Square{Row: r, Col: c}); d != bfs.Unvisited {
				cell = strconv.Itoa(d)
			}
			fmt.Fprintf(bw, "%*s", width, cell)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func node(sq board.Square) string {
	return fmt.Sprintf("Node[%d, %d]", sq.Row, sq.Col)
}
