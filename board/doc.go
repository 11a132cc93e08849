// Package board treats a rectangular chessboard as an immutable move graph.
//
// What:
//
//   - Board holds one node per square of an R×C grid, addressed by a
//     row-major index (row*Cols + col).
//   - Each node's neighbor list is precomputed once from an ordered set of
//     movement offsets (KnightOffsets by default) and never changes.
//   - Squares are printed as [row,col] or in algebraic form (a1…), and
//     parsed from either.
//
// Why:
//
//   - Separating the static adjacency from any per-search state lets many
//     searches share one Board, concurrently and without resets.
//   - Offset order is part of the contract: searches that enumerate
//     neighbors in Adjacent order break ties deterministically.
//
// Invariants:
//
//   - Adjacent(i) lists exactly the in-bounds targets of every offset, in
//     offset order.
//   - If the offset set is closed under negation (the knight set is), the
//     neighbor relation is symmetric.
//   - A 0×C or R×0 board is valid and has no nodes.
//
// Complexity:
//
//   - NewBoard: O(R×C×k) time and memory (k = number of offsets).
//   - InBounds, Index, SquareAt, Adjacent: O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: negative rows or cols.
//   - ErrOptionViolation: zero or duplicate offset supplied via WithOffsets.
//   - ErrOutOfBounds: a square lies outside the board.
//   - ErrBadNotation: ParseSquare could not read its input.
package board
