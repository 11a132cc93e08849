// Package bfs provides tunable options, error definitions and the
// per-query visitation record for breadth-first search over a board.Board.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/knights/board"
)

// Sentinel errors for BFS execution.
var (
	// ErrBoardNil is returned if a nil board pointer is passed.
	ErrBoardNil = errors.New("bfs: board is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Unvisited is the distance and parent sentinel for squares BFS has not reached.
const Unvisited = -1

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a square is discovered and enqueued.
	// Receives the square and its distance from the source.
	OnEnqueue func(sq board.Square, depth int)

	// OnDequeue is called when a square is popped, before the target check.
	OnDequeue func(sq board.Square, depth int)

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnDequeue)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(board.Square, int) {},
		OnDequeue: func(board.Square, int) {},
		MaxDepth:  0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(sq board.Square, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(sq board.Square, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: squares farther than d moves are never enqueued
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Result is the visitation record of a single BFS run. It is owned by the
// caller; the board it was computed on is never modified.
//
//   - Dist[i]: moves from Source to node i, or Unvisited.
//   - Parent[i]: index of the node that discovered i, or Unvisited for the
//     source and undiscovered nodes.
//   - Order: node indices in dequeue order.
//   - Path: Source→Target for Search; empty if Target was not reached,
//     nil for an exhaustive BFS.
type Result struct {
	Source board.Square
	Target board.Square
	Dist   []int
	Parent []int
	Order  []int
	Path   []board.Square

	b *board.Board
}

// Moves returns the number of moves on Path, or -1 if Path is empty.
func (r *Result) Moves() int {
	return len(r.Path) - 1
}

// Reached reports whether sq was discovered.
func (r *Result) Reached(sq board.Square) bool {
	return r.Distance(sq) != Unvisited
}

// Distance returns the discovered distance of sq, or Unvisited when sq is
// off-board or was not reached.
func (r *Result) Distance(sq board.Square) int {
	i, ok := r.b.Index(sq)
	if !ok {
		return Unvisited
	}
	return r.Dist[i]
}

// Predecessor returns the square from which sq was discovered.
// ok is false for the source, undiscovered squares and off-board squares.
func (r *Result) Predecessor(sq board.Square) (p board.Square, ok bool) {
	i, in := r.b.Index(sq)
	if !in || r.Parent[i] == Unvisited {
		return board.Square{}, false
	}
	return r.b.SquareAt(r.Parent[i]), true
}

// PathTo reconstructs the path from Source to dest by following parent
// links and reversing. Returns an empty slice if dest was not reached.
func (r *Result) PathTo(dest board.Square) []board.Square {
	i, ok := r.b.Index(dest)
	if !ok || r.Dist[i] == Unvisited {
		return []board.Square{}
	}
	return r.pathTo(i)
}

// pathTo walks parents from node i back to the source.
func (r *Result) pathTo(i int) []board.Square {
	path := make([]board.Square, 0, r.Dist[i]+1)
	for cur := i; cur != Unvisited; cur = r.Parent[cur] {
		path = append(path, r.b.SquareAt(cur))
	}
	// reverse to get source → dest
	for a, z := 0, len(path)-1; a < z; a, z = a+1, z-1 {
		path[a], path[z] = path[z], path[a]
	}

	return path
}
