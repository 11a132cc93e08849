// Package batch answers many shortest-path queries against one shared
// board, concurrently.
//
// The board is immutable and every query owns its visitation record, so
// workers share nothing but the board. A query with an off-board endpoint
// fails on its own Outcome; only context cancellation aborts the run.
package batch

import (
	"context"
	"errors"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/knights/bfs"
	"github.com/katalvlaran/knights/board"
)

// ErrBoardNil is returned if a nil board pointer is passed.
var ErrBoardNil = errors.New("batch: board is nil")

// Query is one source/destination pair. An empty ID is replaced by a
// random UUID.
type Query struct {
	ID   string
	From board.Square
	To   board.Square
}

// Outcome is the answer to one Query. Result is nil when Err is set.
type Outcome struct {
	Query   Query
	Result  *bfs.Result
	Err     error
	Elapsed time.Duration
}

// Moves returns the move count, or -1 for failed or unreachable queries.
func (o Outcome) Moves() int {
	if o.Result == nil {
		return -1
	}
	return o.Result.Moves()
}

// Option configures Run.
type Option func(*options)

type options struct {
	workers int
	log     zerolog.Logger
	search  []bfs.Option
}

// WithWorkers bounds the number of concurrent searches. n < 1 means
// runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithLogger sets the logger for per-query debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithSearchOptions passes options through to every bfs.Search call.
// Any bfs.WithContext among them is overridden by Run's context.
func WithSearchOptions(opts ...bfs.Option) Option {
	return func(o *options) { o.search = append(o.search, opts...) }
}

// Run answers every query and returns outcomes in input order.
// The error is non-nil only if ctx was cancelled; outcomes of queries
// that did not finish carry the context error.
func Run(ctx context.Context, b *board.Board, queries []Query, opts ...Option) ([]Outcome, error) {
	if b == nil {
		return nil, ErrBoardNil
	}
	o := options{workers: runtime.NumCPU(), log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]Outcome, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, q := range queries {
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		if err := gctx.Err(); err != nil {
			out[i] = Outcome{Query: q, Err: err}
			continue
		}

		g.Go(func() error {
			start := time.Now()
			searchOpts := append(append([]bfs.Option(nil), o.search...), bfs.WithContext(gctx))
			res, err := bfs.Search(b, q.From, q.To, searchOpts...)
			if err != nil {
				res = nil
			}
			out[i] = Outcome{Query: q, Result: res, Err: err, Elapsed: time.Since(start)}

			var ev *zerolog.Event
			if err != nil {
				ev = o.log.Warn().Err(err)
			} else {
				ev = o.log.Debug()
			}
			ev.Str("query", q.ID).
				Stringer("from", q.From).
				Stringer("to", q.To).
				Int("moves", out[i].Moves()).
				Dur("elapsed", out[i].Elapsed).
				Msg("query answered")

			// only cancellation aborts the whole batch
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}
	if err := ctx.Err(); err != nil {
		return out, err
	}
	return out, nil
}
