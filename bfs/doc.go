// Package bfs finds shortest move sequences on a board.Board with
// breadth-first search.
//
// What
//
//   - ShortestPath(b, src, dst) returns one shortest sequence of squares
//     from src to dst, both inclusive. src == dst yields [src].
//   - Search(b, src, dst) returns the full Result: the path plus the
//     visitation record (Dist, Parent, Order) up to the point where dst
//     was dequeued. The search stops there; the queue is not drained.
//   - BFS(b, src) traverses everything reachable, for distance tables.
//
// Visitation record
//
//	Each call allocates its own Dist/Parent slices indexed by node, with
//	Unvisited (-1) as the sentinel. Parent links are node indices, not
//	pointers. The board itself is never written, so any number of
//	goroutines may search one board at the same time, and a second query
//	never needs a reset.
//
// Determinism
//
//	Neighbors are enqueued in board.Adjacent order, which follows the
//	board's offset order. Among several shortest paths the one returned is
//	the first discovered under that order.
//
// Complexity (V = squares, E = legal moves)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	b, _ := board.NewBoard(8, 8)
//	path, err := bfs.ShortestPath(b, board.Square{Row: 0, Col: 0}, board.Square{Row: 7, Col: 7})
//	if err != nil {
//	    // errors.Is(err, board.ErrOutOfBounds): bad endpoint
//	}
//	if len(path) == 0 {
//	    // unreachable
//	}
//
// Options
//
//   - WithContext(ctx):   cancellation, checked once per dequeue.
//   - WithMaxDepth(d):    never enqueue squares more than d moves away.
//   - WithOnEnqueue(fn):  hook when a square is discovered.
//   - WithOnDequeue(fn):  hook when a square is popped.
//
// Errors
//
//   - ErrBoardNil          if the board pointer is nil.
//   - board.ErrOutOfBounds (wrapped) if src or dst is off-board; checked
//     before any state is allocated.
//   - ErrOptionViolation   for invalid options (negative MaxDepth).
//   - ctx.Err()            when the context is cancelled.
//
// An unreachable destination is not an error: Path is empty.
package bfs
