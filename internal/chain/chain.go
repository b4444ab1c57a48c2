// Package chain computes the minimum number of presses a human has to make at
// the top of a chain of directional keypad robots so that a given press
// sequence is typed at the bottom of the chain.
//
// The cost of a sequence at depth d is the sum over its consecutive symbol
// pairs, the pointer starting on activate, of the cheapest directional route
// realising the pair, evaluated one level further up. Depth 0 is the human:
// every symbol costs one press. Pair costs are memoized per (pair, depth).
package chain

import (
	"context"
	"math"
	"sync/atomic"

	"github.com/go-ricrob/keypadsolver/internal/keypad"
	"github.com/go-ricrob/keypadsolver/internal/packed"
	"github.com/go-ricrob/keypadsolver/internal/partmap"
	"github.com/go-ricrob/keypadsolver/internal/route"
	"go.trai.ch/zerr"
	"golang.org/x/exp/constraints"
)

var (
	// ErrDepthOutOfRange is returned for a depth outside [0, MaxDepth].
	ErrDepthOutOfRange = zerr.New("depth out of range")
	// ErrOverflow is returned when a press count or complexity does not fit into an uint64.
	ErrOverflow = zerr.New("value overflows uint64")
)

// Stats holds memo counters.
type Stats struct {
	Hits, Misses int64
	Entries      int
}

// Memo is a transition cost memoizer over a directional route table.
// Cost, PairCost and Warm are safe for concurrent use.
type Memo struct {
	maxDepth     int
	table        *route.Table
	cache        *partmap.Map[packed.Pair, uint64] // one part per depth
	hits, misses atomic.Int64
}

// New returns a memo for chains of up to maxDepth robots using the directional routes of table.
func New(table *route.Table, maxDepth int) (*Memo, error) {
	if maxDepth < 0 {
		return nil, zerr.With(ErrDepthOutOfRange, "depth", maxDepth)
	}
	if err := table.Validate(); err != nil {
		return nil, zerr.Wrap(err, "invalid directional routes")
	}
	return &Memo{
		maxDepth: maxDepth,
		table:    table,
		cache:    partmap.New[packed.Pair, uint64](maxDepth+1, len(table.Pairs())),
	}, nil
}

// MaxDepth returns the deepest chain the memo accepts.
func (m *Memo) MaxDepth() int { return m.maxDepth }

// Table returns the directional route table.
func (m *Memo) Table() *route.Table { return m.table }

// Bind switches the memo to table. Cached costs are dropped only if table was
// generated for another layout or with other options.
// Bind must not be called concurrently with other methods.
func (m *Memo) Bind(table *route.Table) error {
	if err := table.Validate(); err != nil {
		return zerr.Wrap(err, "invalid directional routes")
	}
	if table.Fingerprint() != m.table.Fingerprint() {
		m.cache.Clear()
	}
	m.table = table
	return nil
}

func (m *Memo) checkDepth(depth int) error {
	if depth < 0 || depth > m.maxDepth {
		return zerr.With(zerr.With(ErrDepthOutOfRange, "depth", depth), "max_depth", m.maxDepth)
	}
	return nil
}

// Cost returns the presses needed at the human end to type seq at the given depth.
func (m *Memo) Cost(seq keypad.Sequence, depth int) (uint64, error) {
	if err := m.checkDepth(depth); err != nil {
		return 0, err
	}
	if depth == 0 {
		return uint64(seq.Len()), nil
	}

	var total uint64
	var err error
	seq.Pairs(keypad.Activate, func(from, to keypad.Symbol) bool {
		var c uint64
		if c, err = m.PairCost(from, to, depth); err != nil {
			return false
		}
		total, err = CheckedAdd(total, c)
		return err == nil
	})
	return total, err
}

// PairCost returns the presses needed at the human end to move the pointer at
// the given depth from one directional button to another and press it.
func (m *Memo) PairCost(from, to keypad.Symbol, depth int) (uint64, error) {
	if err := m.checkDepth(depth); err != nil {
		return 0, err
	}
	if depth == 0 {
		return 1, nil
	}

	key := packed.MakePair(byte(from), byte(to))
	if v, ok := m.cache.Load(depth, key); ok {
		m.hits.Add(1)
		return v, nil
	}
	m.misses.Add(1)

	seqs, err := m.table.Routes(from, to)
	if err != nil {
		return 0, zerr.With(err, "depth", depth)
	}
	best := uint64(math.MaxUint64)
	for _, seq := range seqs {
		c, err := m.Cost(seq, depth-1)
		if err != nil {
			return 0, err
		}
		best = min(best, c)
	}
	// a concurrent fill may have won; both values are equal
	v, _ := m.cache.Store(depth, key, best)
	return v, nil
}

// Warm fills the memo bottom-up for every directional pair from depth 1 up to depth.
func (m *Memo) Warm(ctx context.Context, depth int) error {
	if err := m.checkDepth(depth); err != nil {
		return err
	}
	pairs := m.table.Pairs()
	for d := 1; d <= depth; d++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, p := range pairs {
			if _, err := m.PairCost(keypad.Symbol(p.From()), keypad.Symbol(p.To()), d); err != nil {
				return err
			}
		}
	}
	return nil
}

// Stats returns the memo counters.
func (m *Memo) Stats() Stats {
	return Stats{Hits: m.hits.Load(), Misses: m.misses.Load(), Entries: m.cache.Size()}
}

// CheckedAdd returns a+b or ErrOverflow.
func CheckedAdd[T constraints.Unsigned](a, b T) (T, error) {
	s := a + b
	if s < a {
		return 0, ErrOverflow
	}
	return s, nil
}

// CheckedMul returns a*b or ErrOverflow.
func CheckedMul[T constraints.Unsigned](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if p/a != b {
		return 0, ErrOverflow
	}
	return p, nil
}
