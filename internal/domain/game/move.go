package game

// HistoryMax is the capacity of the move log.
const HistoryMax = 512

type Color uint8

const (
	Black Color = iota
	White
)

func (c Color) Opposite() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// SGF returns the SGF property name for moves of this color.
func (c Color) SGF() string {
	if c == Black {
		return "B"
	}
	return "W"
}

// ParseColor accepts "black"/"white" and the SGF letters.
func ParseColor(s string) (Color, bool) {
	switch s {
	case "black", "b", "B":
		return Black, true
	case "white", "w", "W":
		return White, true
	}
	return Black, false
}

// Move is one entry of the move log.
type Move struct {
	Coord Coord
	Color Color
}

func (m Move) IsPass() bool {
	return m.Coord == Pass
}

// Legality is the outcome of a move attempt.
type Legality uint8

const (
	Legal Legality = iota
	Occupied
	Suicidal
	Ko
)

func (l Legality) String() string {
	switch l {
	case Legal:
		return "legal"
	case Occupied:
		return "occupied"
	case Suicidal:
		return "suicidal"
	case Ko:
		return "ko"
	}
	return "unknown"
}
