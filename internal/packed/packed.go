// Package packed provides memory efficient representations of keypad
// coordinates and symbol pairs.
package packed

import "fmt"

// MaxDim is the maximum number of columns or rows a packed coordinate can address.
const MaxDim = 16

// Coord is a compressed grid coordinate: x in the high nibble, y in the low nibble.
type Coord byte

// Pack returns the packed representation of (x, y).
// x and y must be in [0, MaxDim).
func Pack(x, y int) Coord { return Coord(byte(x<<4) | byte(y)) }

// X returns the column of c.
func (c Coord) X() int { return int(c >> 4) }

// Y returns the row of c.
func (c Coord) Y() int { return int(c & 0x0f) }

// XY returns the column and row of c.
func (c Coord) XY() (int, int) { return c.X(), c.Y() }

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X(), c.Y()) }

// Pair is an ordered pair of button symbols (from, to).
type Pair [2]byte

// MakePair returns the pair (from, to).
func MakePair(from, to byte) Pair { return Pair{from, to} }

// From returns the first symbol of p.
func (p Pair) From() byte { return p[0] }

// To returns the second symbol of p.
func (p Pair) To() byte { return p[1] }

func (p Pair) String() string { return string(p[:]) }
