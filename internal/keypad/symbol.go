package keypad

import "strings"

// Symbol is a button label.
type Symbol byte

// Move symbols.
const (
	Up       Symbol = '^'
	Down     Symbol = 'v'
	Left     Symbol = '<'
	Right    Symbol = '>'
	Activate Symbol = 'A'
)

func (s Symbol) String() string { return string(rune(s)) }

// IsMove reports whether s is a directional keypad symbol.
func (s Symbol) IsMove() bool {
	switch s {
	case Up, Down, Left, Right, Activate:
		return true
	}
	return false
}

// IsDigit reports whether s is a numeric keypad digit.
func (s Symbol) IsDigit() bool { return s >= '0' && s <= '9' }

// Move is a pointer movement and the symbol pressed to request it.
type Move struct {
	Symbol Symbol
	DX, DY int
}

// Moves are the orthogonal pointer movements.
var Moves = []Move{
	{Symbol: Left, DX: -1},
	{Symbol: Right, DX: 1},
	{Symbol: Up, DY: -1},
	{Symbol: Down, DY: 1},
}

// Sequence is a press sequence. Sequences are values and are built by concatenation.
type Sequence string

// Len returns the number of presses.
func (s Sequence) Len() int { return len(s) }

// Concat returns s followed by others.
func (s Sequence) Concat(others ...Sequence) Sequence {
	var b strings.Builder
	b.WriteString(string(s))
	for _, o := range others {
		b.WriteString(string(o))
	}
	return Sequence(b.String())
}

// Pairs calls f for every consecutive symbol pair of s, with the pointer parked on start.
// It stops early if f returns false.
func (s Sequence) Pairs(start Symbol, f func(from, to Symbol) bool) {
	prev := start
	for i := 0; i < len(s); i++ {
		to := Symbol(s[i])
		if !f(prev, to) {
			return
		}
		prev = to
	}
}

// Turns returns the number of direction changes between consecutive moves.
// Activate presses are ignored.
func (s Sequence) Turns() int {
	var turns int
	var last Symbol
	for i := 0; i < len(s); i++ {
		c := Symbol(s[i])
		if c == Activate {
			continue
		}
		if last != 0 && c != last {
			turns++
		}
		last = c
	}
	return turns
}
