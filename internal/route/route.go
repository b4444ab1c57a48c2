// Package route computes, for every ordered pair of buttons on a keypad, all
// press sequences of minimal length moving a pointer between them.
package route

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/go-ricrob/keypadsolver/internal/keypad"
	"github.com/go-ricrob/keypadsolver/internal/packed"
	"go.trai.ch/zerr"
	"golang.org/x/exp/slices"
)

// ErrUnreachable is returned for a button pair without any route.
var ErrUnreachable = zerr.New("no route between buttons")

const activate = keypad.Sequence(rune(keypad.Activate))

// Option configures route generation.
type Option func(*options)

type options struct {
	fewestTurns bool
}

// WithFewestTurns keeps only the tied routes with the fewest direction changes.
func WithFewestTurns() Option { return func(o *options) { o.fewestTurns = true } }

// Table holds the candidate routes of a layout. It is read-only once generated.
type Table struct {
	layout      *keypad.Layout
	pairs       []packed.Pair
	routes      map[packed.Pair][]keypad.Sequence
	fingerprint uint64
	numCalcMove int
}

// Generate computes the route table of l.
func Generate(l *keypad.Layout, opts ...Option) *Table {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	symbols := l.Symbols()
	t := &Table{
		layout: l,
		routes: make(map[packed.Pair][]keypad.Sequence, len(symbols)*len(symbols)),
	}
	for _, from := range symbols {
		fromCoord, _ := l.Position(from)
		for _, to := range symbols {
			toCoord, _ := l.Position(to)
			p := packed.MakePair(byte(from), byte(to))
			t.pairs = append(t.pairs, p)

			seqs := t.search(fromCoord, toCoord)
			if len(seqs) == 0 {
				continue
			}
			if o.fewestTurns {
				seqs = fewestTurns(seqs)
			}
			t.routes[p] = seqs
		}
	}

	d := xxhash.New()
	fmt.Fprintf(d, "%x/%t", l.Fingerprint(), o.fewestTurns)
	t.fingerprint = d.Sum64()
	return t
}

type node struct {
	c    packed.Coord
	path []byte
}

// search runs a level by level breadth first search from one button to another.
// Cells are marked visited only once a level is complete so that every path
// reaching a cell at the same distance is kept.
func (t *Table) search(from, to packed.Coord) []keypad.Sequence {
	if from == to {
		return []keypad.Sequence{activate}
	}

	visited := map[packed.Coord]bool{from: true}
	source := []node{{c: from}}
	for len(source) > 0 {
		var target []node
		var found []keypad.Sequence
		reached := map[packed.Coord]bool{}

		for _, n := range source {
			for _, m := range keypad.Moves {
				next, ok := t.layout.Step(n.c, m)
				if !ok || visited[next] {
					continue
				}
				t.numCalcMove++
				path := append(slices.Clip(n.path), byte(m.Symbol))
				if next == to {
					found = append(found, keypad.Sequence(path)+activate)
					continue
				}
				reached[next] = true
				target = append(target, node{c: next, path: path})
			}
		}

		if len(found) > 0 {
			slices.Sort(found)
			return found
		}
		for c := range reached {
			visited[c] = true
		}
		source = target
	}
	return nil
}

func fewestTurns(seqs []keypad.Sequence) []keypad.Sequence {
	best := -1
	var kept []keypad.Sequence
	for _, s := range seqs {
		turns := s.Turns()
		switch {
		case best == -1 || turns < best:
			best = turns
			kept = []keypad.Sequence{s}
		case turns == best:
			kept = append(kept, s)
		}
	}
	return kept
}

// Layout returns the layout the table was generated for.
func (t *Table) Layout() *keypad.Layout { return t.layout }

// Pairs returns all ordered button pairs of the layout in ascending symbol order.
func (t *Table) Pairs() []packed.Pair { return slices.Clone(t.pairs) }

// Routes returns the candidate routes from one button to another, sorted.
// The returned slice must not be modified.
func (t *Table) Routes(from, to keypad.Symbol) ([]keypad.Sequence, error) {
	seqs, ok := t.routes[packed.MakePair(byte(from), byte(to))]
	if !ok {
		err := zerr.With(ErrUnreachable, "layout", t.layout.Name())
		err = zerr.With(err, "from", from.String())
		return nil, zerr.With(err, "to", to.String())
	}
	return seqs, nil
}

// Validate returns an error if any button pair has no route.
func (t *Table) Validate() error {
	for _, p := range t.pairs {
		if _, err := t.Routes(keypad.Symbol(p.From()), keypad.Symbol(p.To())); err != nil {
			return err
		}
	}
	return nil
}

// Fingerprint identifies the layout and the options the table was generated with.
func (t *Table) Fingerprint() uint64 { return t.fingerprint }

// NumCalcMove returns the number of search expansions performed.
func (t *Table) NumCalcMove() int { return t.numCalcMove }
