package game

import (
	"goban/internal/domain"
	"goban/internal/domain/game"
	"goban/internal/domain/sgf"
)

func pointOf(c game.Coord) domain.Point {
	col, row := c.ColRow()
	return domain.Point{Col: col, Row: row}
}

func points(coords []game.Coord) []domain.Point {
	pts := make([]domain.Point, len(coords))
	for i, c := range coords {
		pts[i] = pointOf(c)
	}
	return pts
}

func koPoint(g *game.Game) *domain.Point {
	if g.Ko() == game.Pass {
		return nil
	}
	p := pointOf(g.Ko())
	return &p
}

func moveView(m game.Move) domain.Move {
	if m.IsPass() {
		return domain.Move{Color: m.Color.SGF()}
	}
	p := pointOf(m.Coord)
	return domain.Move{
		Color:       m.Color.SGF(),
		Coordinates: sgf.Point(p.Col, p.Row),
		Point:       &p,
	}
}

func historyMoves(history []game.Move) []domain.Move {
	moves := make([]domain.Move, len(history))
	for i, m := range history {
		moves[i] = moveView(m)
	}
	return moves
}

// moveResult copies what the caller needs out of the engine; changed is
// only valid until the next engine call.
func moveResult(g *game.Game, legality game.Legality, changed []game.Coord) domain.MoveResult {
	result := domain.MoveResult{
		Result:     legality.String(),
		Next:       g.ColorToPlay().String(),
		MoveNumber: g.MoveCount(),
	}
	if legality != game.Legal {
		return result
	}

	if last, ok := g.LastMove(); ok {
		mv := moveView(last)
		result.Move = &mv
	}
	if len(changed) > 0 {
		result.Changed = points(changed)
		result.Captured = len(changed) - 1
	}
	result.Ko = koPoint(g)
	return result
}

func boardState(g *game.Game) domain.BoardState {
	_, black, white := g.Planes()
	return domain.BoardState{
		Width:     g.Width(),
		Height:    g.Height(),
		Komi:      g.Komi(),
		Ko:        koPoint(g),
		MoveCount: g.MoveCount(),
		Next:      g.ColorToPlay().String(),
		Black:     points(black.Coords()),
		White:     points(white.Coords()),
		Ascii:     g.String(),
	}
}
