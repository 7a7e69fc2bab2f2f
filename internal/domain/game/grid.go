package game

import "math/bits"

const (
	MinSize = 5
	MaxSize = 19

	// Margin is the number of padding cells on every side of the board.
	Margin    = 1
	MaxExtent = MaxSize + 2*Margin

	// DataLen is the number of addressable coordinates in the padded grid.
	DataLen = MaxExtent * MaxExtent

	fieldWords = (DataLen + 63) / 64
)

// Coord is a position in the padded grid: row*MaxExtent + col.
type Coord uint16

// Pass is the coordinate of a pass move. It is never a grid position.
const Pass Coord = 0x7FFF

var dirs = [4]int{-MaxExtent, MaxExtent, -1, 1}

// CoordAt converts board coordinates in [0, size) to a padded-grid position.
func CoordAt(col, row int) Coord {
	return Coord((row+Margin)*MaxExtent + col + Margin)
}

// ColRow converts a padded-grid position back to board coordinates.
// Margin cells map to -1 or the board size.
func (c Coord) ColRow() (col, row int) {
	return int(c)%MaxExtent - Margin, int(c)/MaxExtent - Margin
}

// Neighbors returns the four orthogonal neighbors of an interior coordinate.
func (c Coord) Neighbors() [4]Coord {
	var nb [4]Coord
	for i, d := range dirs {
		nb[i] = Coord(int(c) + d)
	}
	return nb
}

// Field is a bit per padded-grid coordinate.
type Field [fieldWords]uint64

func (f *Field) Get(c Coord) bool {
	if int(c) >= DataLen {
		return false
	}
	return f[c>>6]&(1<<(c&63)) != 0
}

func (f *Field) Set(c Coord) {
	f[c>>6] |= 1 << (c & 63)
}

func (f *Field) Clear(c Coord) {
	f[c>>6] &^= 1 << (c & 63)
}

// Reset clears every bit.
func (f *Field) Reset() {
	*f = Field{}
}

// Count returns the number of set bits.
func (f *Field) Count() int {
	n := 0
	for _, w := range f {
		n += bits.OnesCount64(w)
	}
	return n
}

// Coords lists set coordinates in ascending order.
func (f *Field) Coords() []Coord {
	coords := make([]Coord, 0, f.Count())
	for i, w := range f {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			coords = append(coords, Coord(i*64+b))
			w &= w - 1
		}
	}
	return coords
}
