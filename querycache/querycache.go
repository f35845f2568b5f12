// Package querycache remembers the outcome of evaluating launcher queries so
// that a query typed again, or redrawn, is not evaluated twice.
package querycache

import (
	"log/slog"

	"github.com/zephyrtronium/arith"
)

// Entry is the state of one query.
type Entry struct {
	// Result is the display text of the query's value. It is empty unless
	// the query evaluated successfully.
	Result string
	// Pending is whether evaluation of the query has started but not
	// finished.
	Pending bool
	// Error is whether the query failed to evaluate.
	Error bool
	// Outcome is the full result of the evaluation which produced the entry.
	// It is the zero Result for entries set by hand.
	Outcome arith.Result
}

// settled reports whether e holds a final outcome.
func (e Entry) settled() bool {
	return !e.Pending && (e.Error || e.Result != "")
}

// Store maps query text to its evaluation state. Entries live until Reset.
// It is not safe to use a Store concurrently.
type Store struct {
	entries map[string]*Entry
	opts    []arith.Option
	log     *slog.Logger
}

// Option is an option used when creating a Store.
type Option interface {
	storeOption()
}

type (
	evalopt struct{ opts []arith.Option }
	logopt  struct{ log *slog.Logger }
)

func (evalopt) storeOption() {}
func (logopt) storeOption()  {}

// EvalOptions sets the options that Resolve passes to arith.Evaluate.
func EvalOptions(opts ...arith.Option) Option {
	return evalopt{opts}
}

// Logger sets the logger which records evaluations. The default discards
// everything.
func Logger(log *slog.Logger) Option {
	return logopt{log}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := Store{
		entries: make(map[string]*Entry),
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil:
			// do nothing
		case evalopt:
			s.opts = append(s.opts[:0:0], opt.opts...)
		case logopt:
			if opt.log != nil {
				s.log = opt.log
			}
		default:
			panic("querycache: unknown option type")
		}
	}
	return &s
}

// entry returns the entry for query, creating it if needed.
func (s *Store) entry(query string) *Entry {
	e := s.entries[query]
	if e == nil {
		e = new(Entry)
		s.entries[query] = e
	}
	return e
}

// Get returns a copy of the entry for query and whether there is one.
func (s *Store) Get(query string) (Entry, bool) {
	e := s.entries[query]
	if e == nil {
		return Entry{}, false
	}
	return *e, true
}

// Result returns the display text of query's value, or the empty string if
// there is none.
func (s *Store) Result(query string) string {
	if e := s.entries[query]; e != nil {
		return e.Result
	}
	return ""
}

// IsPending returns whether query is being evaluated.
func (s *Store) IsPending(query string) bool {
	if e := s.entries[query]; e != nil {
		return e.Pending
	}
	return false
}

// HasError returns whether query failed to evaluate.
func (s *Store) HasError(query string) bool {
	if e := s.entries[query]; e != nil {
		return e.Error
	}
	return false
}

// SetResult records a successful result for query. The query is no longer
// pending or in error.
func (s *Store) SetResult(query, result string) {
	e := s.entry(query)
	e.Outcome = arith.Result{}
	e.Result = result
	e.Pending = false
	e.Error = false
}

// SetPending marks whether query is being evaluated.
func (s *Store) SetPending(query string, pending bool) {
	s.entry(query).Pending = pending
}

// SetError records whether query failed. Either way, the query is no longer
// pending.
func (s *Store) SetError(query string, failed bool) {
	e := s.entry(query)
	e.Outcome = arith.Result{}
	e.Error = failed
	e.Pending = false
}

// Reset removes all entries.
func (s *Store) Reset() {
	s.log.Debug("reset query cache", slog.Int("entries", len(s.entries)))
	clear(s.entries)
}

// Len returns the number of queries in the store.
func (s *Store) Len() int {
	return len(s.entries)
}

// Resolve evaluates query and records its outcome, unless the store already
// has a final outcome for it. Queries which arith.IsCandidate rejects are
// neither evaluated nor recorded; the result for them is the zero Entry.
func (s *Store) Resolve(query string) Entry {
	if e, ok := s.Get(query); ok && e.settled() {
		s.log.Debug("query cache hit", slog.String("query", query))
		return e
	}
	if !arith.IsCandidate(query) {
		return Entry{}
	}
	s.SetPending(query, true)
	r := arith.Evaluate(query, s.opts...)
	if !r.OK() {
		s.log.Debug("query failed",
			slog.String("query", query),
			slog.String("kind", r.Kind().String()),
			slog.Any("err", r.Err()),
		)
		s.SetError(query, true)
	} else {
		s.log.Debug("query evaluated", slog.String("query", query), slog.String("result", r.String()))
		s.SetResult(query, r.String())
	}
	e := s.entries[query]
	e.Outcome = r
	return *e
}
