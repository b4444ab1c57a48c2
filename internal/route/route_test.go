package route

import (
	"testing"

	"github.com/go-ricrob/keypadsolver/internal/keypad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// walk replays seq on l and returns the symbol under the pointer at the final activate.
func walk(t *testing.T, l *keypad.Layout, from keypad.Symbol, seq keypad.Sequence) keypad.Symbol {
	t.Helper()
	c, ok := l.Position(from)
	require.True(t, ok)
	for i := 0; i < len(seq)-1; i++ {
		var move keypad.Move
		for _, m := range keypad.Moves {
			if byte(m.Symbol) == seq[i] {
				move = m
			}
		}
		next, ok := l.Step(c, move)
		require.True(t, ok, "route %s leaves the buttons of %s", seq, l.Name())
		c = next
	}
	require.Equal(t, byte(keypad.Activate), seq[len(seq)-1], "route %s must end with activate", seq)
	s, ok := l.At(c)
	require.True(t, ok)
	return s
}

func TestSameButton(t *testing.T) {
	for _, l := range []*keypad.Layout{keypad.Numeric(), keypad.Directional()} {
		table := Generate(l)
		for _, s := range l.Symbols() {
			seqs, err := table.Routes(s, s)
			require.NoError(t, err)
			assert.Equal(t, []keypad.Sequence{"A"}, seqs, "%s on %s", s, l.Name())
		}
	}
}

func TestRoutes(t *testing.T) {
	num := Generate(keypad.Numeric())
	dir := Generate(keypad.Directional())

	tests := []struct {
		table    *Table
		from, to keypad.Symbol
		want     []keypad.Sequence
	}{
		{num, 'A', '0', []keypad.Sequence{"<A"}},
		{num, 'A', '1', []keypad.Sequence{"<^<A", "^<<A"}},
		{num, '0', '2', []keypad.Sequence{"^A"}},
		{num, '2', '9', []keypad.Sequence{">^^A", "^>^A", "^^>A"}},
		{num, '1', 'A', []keypad.Sequence{">>vA", ">v>A"}},
		{dir, 'A', '<', []keypad.Sequence{"<v<A", "v<<A"}},
		{dir, '<', 'A', []keypad.Sequence{">>^A", ">^>A"}},
		{dir, '^', '>', []keypad.Sequence{">vA", "v>A"}},
		{dir, 'A', '^', []keypad.Sequence{"<A"}},
	}
	for _, test := range tests {
		got, err := test.table.Routes(test.from, test.to)
		require.NoError(t, err)
		assert.Equal(t, test.want, got, "%s -> %s on %s", test.from, test.to, test.table.Layout().Name())
	}
}

func TestRoutesAreMinimalAndAvoidGap(t *testing.T) {
	for _, l := range []*keypad.Layout{keypad.Numeric(), keypad.Directional()} {
		table := Generate(l)
		require.NoError(t, table.Validate())
		for _, from := range l.Symbols() {
			fc, _ := l.Position(from)
			for _, to := range l.Symbols() {
				tc, _ := l.Position(to)
				seqs, err := table.Routes(from, to)
				require.NoError(t, err)
				require.NotEmpty(t, seqs)

				// the built-in grids are convex around their gap, so manhattan distance is minimal
				dist := abs(fc.X()-tc.X()) + abs(fc.Y()-tc.Y())
				for _, seq := range seqs {
					assert.Equal(t, dist+1, seq.Len(), "%s", seq)
					assert.Equal(t, to, walk(t, l, from, seq))
				}
			}
		}
	}
}

func TestRouteCount(t *testing.T) {
	table := Generate(keypad.Numeric())
	seqs, err := table.Routes('7', 'A')
	require.NoError(t, err)
	// ten monotone paths, minus the one passing through the gap
	assert.Len(t, seqs, 9)
	assert.NotContains(t, seqs, keypad.Sequence("vvv>>A"))
	assert.Positive(t, table.NumCalcMove())
}

func TestFewestTurns(t *testing.T) {
	table := Generate(keypad.Numeric(), WithFewestTurns())
	seqs, err := table.Routes('A', '1')
	require.NoError(t, err)
	assert.Equal(t, []keypad.Sequence{"^<<A"}, seqs)

	seqs, err = table.Routes('7', 'A')
	require.NoError(t, err)
	assert.Equal(t, []keypad.Sequence{">>vvvA"}, seqs)
}

func TestDetour(t *testing.T) {
	// the gap forces a detour: 1 -> 3 must go around the middle column
	l, err := keypad.New("detour", []string{"1 3", "2A4"})
	require.NoError(t, err)
	table := Generate(l)
	seqs, err := table.Routes('1', '3')
	require.NoError(t, err)
	assert.Equal(t, []keypad.Sequence{"v>>^A"}, seqs)
}

func TestUnreachable(t *testing.T) {
	l, err := keypad.New("split", []string{"1 A"})
	require.NoError(t, err)
	table := Generate(l)

	_, err = table.Routes('1', 'A')
	require.Error(t, err)
	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "1", zErr.Metadata()["from"])
	assert.Equal(t, "A", zErr.Metadata()["to"])

	require.Error(t, table.Validate())

	_, err = table.Routes('x', 'A')
	require.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	a := Generate(keypad.Directional())
	b := Generate(keypad.Directional())
	c := Generate(keypad.Directional(), WithFewestTurns())
	d := Generate(keypad.Numeric())
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), d.Fingerprint())
}
