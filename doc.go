// Package knights finds shortest knight-move paths on rectangular boards.
//
// What is knights?
//
//	A small, dependency-light toolkit built around one algorithm:
//		• board/   the immutable move graph: one node per square, neighbor
//		            lists precomputed from an ordered offset set
//		• bfs/     breadth-first search with a per-query visitation record,
//		            early exit at the destination, path reconstruction
//		• report/  diagnostic text, distance grids, JSON/YAML solutions
//		• batch/   many queries against one shared board, concurrently
//		• cmd/knights  the command-line front end
//
// Quick ASCII example (8×8, a1 → h8, six moves):
//
//	8 . . . . . . . 6
//	7 . . . . . . . .
//	6 . . . . . . 5 .
//	5 . . . . . . . .
//	4 . 2 . . . 4 . .
//	3 . . . 3 . . . .
//	2 . . 1 . . . . .
//	1 0 . . . . . . .
//	  a b c d e f g h
//
// The path drawn is one of several of equal length; ties are broken by
// the fixed knight offset order (see board.KnightOffsets).
//
//	go install github.com/katalvlaran/knights/cmd/knights@latest
package knights
