// Package keypad describes the button grids of numeric and directional keypads.
package keypad

import (
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/go-ricrob/keypadsolver/internal/packed"
	"go.trai.ch/zerr"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Gap is the row character marking a cell without a button.
const Gap = ' '

var (
	// ErrEmptyLayout is returned for a layout without rows or columns.
	ErrEmptyLayout = zerr.New("layout must have at least one row and one column")
	// ErrNonRectangular is returned when layout rows differ in length.
	ErrNonRectangular = zerr.New("layout rows must have the same length")
	// ErrLayoutTooLarge is returned when a layout exceeds the packed coordinate range.
	ErrLayoutTooLarge = zerr.New("layout exceeds 16x16 cells")
	// ErrDuplicateSymbol is returned when a symbol appears on more than one button.
	ErrDuplicateSymbol = zerr.New("duplicate button symbol")
	// ErrMissingSymbol is returned when a required symbol has no button.
	ErrMissingSymbol = zerr.New("missing button symbol")
	// ErrUnexpectedSymbol is returned when a directional layout holds a non-move symbol.
	ErrUnexpectedSymbol = zerr.New("unexpected button symbol")
)

// Layout is an immutable grid of buttons.
type Layout struct {
	name          string
	rows          []string
	width, height int
	cells         map[packed.Coord]Symbol
	pos           map[Symbol]packed.Coord
	fingerprint   uint64
}

// New builds a layout from rows of symbols; Gap marks cells without a button.
func New(name string, rows []string) (*Layout, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, zerr.With(ErrEmptyLayout, "layout", name)
	}
	w, h := len(rows[0]), len(rows)
	if w > packed.MaxDim || h > packed.MaxDim {
		return nil, zerr.With(ErrLayoutTooLarge, "layout", name)
	}

	l := &Layout{
		name:   name,
		rows:   slices.Clone(rows),
		width:  w,
		height: h,
		cells:  make(map[packed.Coord]Symbol, w*h),
		pos:    make(map[Symbol]packed.Coord, w*h),
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, zerr.With(zerr.With(ErrNonRectangular, "layout", name), "row", y)
		}
		for x := 0; x < w; x++ {
			s := Symbol(row[x])
			if s == Gap {
				continue
			}
			if _, ok := l.pos[s]; ok {
				return nil, zerr.With(zerr.With(ErrDuplicateSymbol, "layout", name), "symbol", s.String())
			}
			c := packed.Pack(x, y)
			l.cells[c] = s
			l.pos[s] = c
		}
	}
	if _, ok := l.pos[Activate]; !ok {
		return nil, zerr.With(zerr.With(ErrMissingSymbol, "layout", name), "symbol", Activate.String())
	}
	l.fingerprint = xxhash.Sum64String(strings.Join(rows, "\n"))
	return l, nil
}

// NewDirectional builds a layout that must hold exactly the move symbols.
func NewDirectional(name string, rows []string) (*Layout, error) {
	l, err := New(name, rows)
	if err != nil {
		return nil, err
	}
	for s := range l.pos {
		if !s.IsMove() {
			return nil, zerr.With(zerr.With(ErrUnexpectedSymbol, "layout", name), "symbol", s.String())
		}
	}
	for _, m := range Moves {
		if _, ok := l.pos[m.Symbol]; !ok {
			return nil, zerr.With(zerr.With(ErrMissingSymbol, "layout", name), "symbol", m.Symbol.String())
		}
	}
	return l, nil
}

// NumericRows and DirectionalRows hold the built-in button grids.
var (
	NumericRows     = []string{"789", "456", "123", " 0A"}
	DirectionalRows = []string{" ^A", "<v>"}
)

var (
	numeric = sync.OnceValue(func() *Layout {
		l, err := New("numeric", NumericRows)
		if err != nil {
			panic(err)
		}
		return l
	})
	directional = sync.OnceValue(func() *Layout {
		l, err := NewDirectional("directional", DirectionalRows)
		if err != nil {
			panic(err)
		}
		return l
	})
)

// Numeric returns the shared built-in numeric keypad.
func Numeric() *Layout { return numeric() }

// Directional returns the shared built-in directional keypad.
func Directional() *Layout { return directional() }

// Name returns the layout name.
func (l *Layout) Name() string { return l.name }

// Rows returns a copy of the layout rows.
func (l *Layout) Rows() []string { return slices.Clone(l.rows) }

// Size returns the number of columns and rows.
func (l *Layout) Size() (int, int) { return l.width, l.height }

// Fingerprint identifies the button grid.
func (l *Layout) Fingerprint() uint64 { return l.fingerprint }

// Position returns the coordinate of the button labelled s.
func (l *Layout) Position(s Symbol) (packed.Coord, bool) {
	c, ok := l.pos[s]
	return c, ok
}

// At returns the symbol at c. ok is false for a gap or an out of bounds coordinate.
func (l *Layout) At(c packed.Coord) (Symbol, bool) {
	s, ok := l.cells[c]
	return s, ok
}

// Has reports whether the layout has a button labelled s.
func (l *Layout) Has(s Symbol) bool {
	_, ok := l.pos[s]
	return ok
}

// Step returns the button coordinate reached from c by m.
// ok is false if the move leaves the grid or enters a gap.
func (l *Layout) Step(c packed.Coord, m Move) (packed.Coord, bool) {
	x, y := c.X()+m.DX, c.Y()+m.DY
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return 0, false
	}
	next := packed.Pack(x, y)
	if _, ok := l.cells[next]; !ok {
		return 0, false
	}
	return next, true
}

// Symbols returns all button symbols in ascending order.
func (l *Layout) Symbols() []Symbol {
	symbols := maps.Keys(l.pos)
	slices.Sort(symbols)
	return symbols
}
