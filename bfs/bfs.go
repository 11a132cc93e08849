// Package bfs provides breadth-first search over a board.Board, returning
// shortest move sequences, distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/knights/board"
)

// noTarget marks an exhaustive traversal.
const noTarget = -1

// walker encapsulates mutable BFS state for one query.
type walker struct {
	board  *board.Board
	opts   BFSOptions
	ctx    context.Context
	queue  []int
	target int
	res    *Result
}

// ShortestPath returns one shortest sequence of moves from src to dst,
// inclusive of both endpoints. src == dst yields a single-square path.
// If dst cannot be reached the path is empty and err is nil.
// Off-board endpoints fail with an error wrapping board.ErrOutOfBounds.
func ShortestPath(b *board.Board, src, dst board.Square, opts ...Option) ([]board.Square, error) {
	res, err := Search(b, src, dst, opts...)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// Search runs BFS from src and stops as soon as dst is dequeued.
// The returned Result holds the partial visitation record and Path.
// Returns ErrBoardNil, ErrOptionViolation, an error wrapping
// board.ErrOutOfBounds for off-board endpoints, or the context error.
func Search(b *board.Board, src, dst board.Square, opts ...Option) (*Result, error) {
	if b == nil {
		return nil, ErrBoardNil
	}
	t, ok := b.Index(dst)
	if !ok {
		return nil, fmt.Errorf("bfs: destination %v outside %dx%d board: %w", dst, b.Rows(), b.Cols(), board.ErrOutOfBounds)
	}
	w, err := newWalker(b, src, opts)
	if err != nil {
		return nil, err
	}
	w.target = t
	w.res.Target = dst
	w.res.Path = []board.Square{}

	return w.res, w.loop()
}

// BFS runs an exhaustive breadth-first traversal from src, recording the
// distance and parent of every reachable square. Result.Path is nil.
func BFS(b *board.Board, src board.Square, opts ...Option) (*Result, error) {
	if b == nil {
		return nil, ErrBoardNil
	}
	w, err := newWalker(b, src, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// newWalker validates src and options, allocates a fresh visitation
// record and seeds the queue with the source.
func newWalker(b *board.Board, src board.Square, opts []Option) (*walker, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	s, ok := b.Index(src)
	if !ok {
		return nil, fmt.Errorf("bfs: source %v outside %dx%d board: %w", src, b.Rows(), b.Cols(), board.ErrOutOfBounds)
	}

	n := b.Len()
	w := &walker{
		board:  b,
		opts:   o,
		ctx:    o.Ctx,
		queue:  make([]int, 0, n),
		target: noTarget,
		res: &Result{
			Source: src,
			Dist:   make([]int, n),
			Parent: make([]int, n),
			Order:  make([]int, 0, n),
			b:      b,
		},
	}
	for i := range w.res.Dist {
		w.res.Dist[i] = Unvisited
		w.res.Parent[i] = Unvisited
	}
	w.enqueue(s, 0, Unvisited)

	return w, nil
}

// enqueue records depth and parent for node i, calls OnEnqueue and appends
// it to the queue.
func (w *walker) enqueue(i, depth, parent int) {
	w.res.Dist[i] = depth
	w.res.Parent[i] = parent
	w.opts.OnEnqueue(w.board.SquareAt(i), depth)
	w.queue = append(w.queue, i)
}

// loop processes the queue until it empties, the target is dequeued,
// or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		cur := w.dequeue()
		if cur == w.target {
			w.res.Path = w.res.pathTo(cur)
			return nil
		}
		w.enqueueNeighbors(cur)
	}
	return nil
}

// dequeue pops the front node, records it in Order and invokes OnDequeue.
func (w *walker) dequeue() int {
	i := w.queue[0]
	w.queue = w.queue[1:]
	w.res.Order = append(w.res.Order, i)
	w.opts.OnDequeue(w.board.SquareAt(i), w.res.Dist[i])
	return i
}

// enqueueNeighbors enqueues every undiscovered neighbor of cur in
// adjacency order, honoring MaxDepth.
func (w *walker) enqueueNeighbors(cur int) {
	next := w.res.Dist[cur] + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.board.Adjacent(cur) {
		if w.res.Dist[nbr] == Unvisited {
			w.enqueue(nbr, next, cur)
		}
	}
}
