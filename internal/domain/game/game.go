// Package game is the board, legality and capture engine.
//
// A Game is driven by one caller at a time. Moves that are rejected leave
// it exactly as it was; contract violations (bad dimensions, history
// overflow) panic and are expected to be validated by the caller.
package game

import (
	"fmt"
	"strings"
)

type Game struct {
	width     uint8
	height    uint8
	komi2     int8
	ko        Coord
	moveCount uint16
	onBoard   Field
	black     Field
	white     Field
	history   [HistoryMax]Move
}

// New returns a game reset to the given dimensions. komi2 is twice the komi.
func New(width, height, komi2 int) *Game {
	g := &Game{}
	g.Reset(width, height, komi2)
	return g
}

// ValidSize reports whether n is an allowed board side.
func ValidSize(n int) bool {
	return n >= MinSize && n <= MaxSize
}

// Reset empties the board, clears ko and history and sets new dimensions.
func (g *Game) Reset(width, height, komi2 int) {
	if !ValidSize(width) || !ValidSize(height) {
		panic(fmt.Sprintf("game: board %dx%d out of range [%d,%d]", width, height, MinSize, MaxSize))
	}

	*g = Game{
		width:  uint8(width),
		height: uint8(height),
		komi2:  int8(komi2),
		ko:     Pass,
	}

	pos := CoordAt(0, 0)
	for row := 0; row < height; row++ {
		p := pos
		for col := 0; col < width; col++ {
			g.onBoard.Set(p)
			p++
		}
		pos += MaxExtent
	}
}

func (g *Game) isEmpty(c Coord) bool {
	return g.onBoard.Get(c) && !g.black.Get(c) && !g.white.Get(c)
}

func (g *Game) stones(color Color) (own, opp *Field) {
	if color == Black {
		return &g.black, &g.white
	}
	return &g.white, &g.black
}

func addressable(col, row int) bool {
	return col >= -Margin && col < MaxSize+Margin && row >= -Margin && row < MaxSize+Margin
}

// Play is PlayMove addressed by board coordinates. Positions outside the
// padded grid are rejected as Occupied.
func (g *Game) Play(col, row int, color Color, s *Scratch) (Legality, []Coord) {
	if !addressable(col, row) {
		return Occupied, nil
	}
	return g.PlayMove(CoordAt(col, row), color, s)
}

// PlayMove tries to play color at coord, or to pass when coord is Pass.
//
// On Legal it returns the coordinates whose occupancy changed: the placed
// stone followed by every captured stone. The slice is backed by s and is
// only valid until s is used again.
func (g *Game) PlayMove(coord Coord, color Color, s *Scratch) (Legality, []Coord) {
	if coord == Pass {
		g.ko = Pass
		g.record(Move{Coord: Pass, Color: color})
		return Legal, s.changed[:0]
	}

	if coord == g.ko {
		return Ko, nil
	}

	if !g.isEmpty(coord) {
		return Occupied, nil
	}

	if int(g.moveCount) >= HistoryMax {
		panic("game: move history is full")
	}

	// The stone must be on the board for liberty counting; it is removed
	// again if the move turns out to be suicide.
	own, opp := g.stones(color)
	own.Set(coord)

	s.visited.Reset()
	changed := append(s.changed[:0], coord)

	capturedTotal := 0
	capturedAt := Pass

	for _, nb := range coord.Neighbors() {
		if !opp.Get(nb) || s.visited.Get(nb) {
			continue
		}

		group, captured := g.floodFill(nb, opp, &s.visited, s.queue)
		if !captured {
			continue
		}

		for _, p := range group {
			opp.Clear(p)
		}
		changed = append(changed, group...)
		capturedTotal += len(group)
		capturedAt = group[0]
	}

	ko := Pass
	if capturedTotal == 1 {
		ko = capturedAt
	}

	// Opponent marks in visited cannot meet the own-color fill, the two
	// planes are disjoint.
	if capturedTotal == 0 {
		if _, captured := g.floodFill(coord, own, &s.visited, s.queue); captured {
			own.Clear(coord)
			return Suicidal, nil
		}
	}

	g.ko = ko
	g.record(Move{Coord: coord, Color: color})
	s.changed = changed
	return Legal, changed
}

func (g *Game) record(m Move) {
	if int(g.moveCount) >= HistoryMax {
		panic("game: move history is full")
	}
	g.history[g.moveCount] = m
	g.moveCount++
}

// ColorToPlay is the opposite of the last move's color, Black on an empty log.
func (g *Game) ColorToPlay() Color {
	if g.moveCount == 0 {
		return Black
	}
	return g.history[g.moveCount-1].Color.Opposite()
}

// CanPlayApprox reports that the point is on the board, empty and not
// ko-blocked. It does not detect suicide and is meant for cheap hinting only.
func (g *Game) CanPlayApprox(col, row int) bool {
	if !addressable(col, row) {
		return false
	}
	coord := CoordAt(col, row)
	if coord == g.ko {
		return false
	}
	return g.isEmpty(coord)
}

func (g *Game) Width() int  { return int(g.width) }
func (g *Game) Height() int { return int(g.height) }
func (g *Game) Komi2() int  { return int(g.komi2) }

func (g *Game) Komi() float64 {
	return float64(g.komi2) / 2
}

// Ko returns the active ko coordinate, Pass when there is none.
func (g *Game) Ko() Coord { return g.ko }

func (g *Game) MoveCount() int { return int(g.moveCount) }

// HistoryFull reports that no further move can be recorded.
func (g *Game) HistoryFull() bool {
	return int(g.moveCount) >= HistoryMax
}

func (g *Game) History() []Move {
	return append([]Move(nil), g.history[:g.moveCount]...)
}

func (g *Game) LastMove() (Move, bool) {
	if g.moveCount == 0 {
		return Move{}, false
	}
	return g.history[g.moveCount-1], true
}

// StoneAt returns the color of the stone at the point, if any.
func (g *Game) StoneAt(col, row int) (Color, bool) {
	if !addressable(col, row) {
		return Black, false
	}
	c := CoordAt(col, row)
	switch {
	case g.black.Get(c):
		return Black, true
	case g.white.Get(c):
		return White, true
	}
	return Black, false
}

// OnBoard reports whether the coordinate lies inside the board.
func (g *Game) OnBoard(c Coord) bool {
	return g.onBoard.Get(c)
}

// Planes returns copies of the on-board, black and white bit sets.
func (g *Game) Planes() (onBoard, black, white Field) {
	return g.onBoard, g.black, g.white
}

// String renders the board the way GnuGo prints it: X black, O white, . empty.
func (g *Game) String() string {
	var sb strings.Builder
	sb.Grow(int(g.height) * int(g.width) * 2)

	pos := CoordAt(0, 0)
	for row := 0; row < int(g.height); row++ {
		p := pos
		for col := 0; col < int(g.width); col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			switch {
			case g.black.Get(p):
				sb.WriteByte('X')
			case g.white.Get(p):
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
			p++
		}
		sb.WriteByte('\n')
		pos += MaxExtent
	}
	return sb.String()
}
