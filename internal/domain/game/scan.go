package game

// Scratch holds the buffers a move evaluation reuses between calls.
// One Scratch serves one game; it must not be shared between goroutines.
type Scratch struct {
	queue   []Coord
	visited Field
	changed []Coord
}

func NewScratch() *Scratch {
	return &Scratch{
		queue:   make([]Coord, DataLen),
		changed: make([]Coord, 0, DataLen),
	}
}

// floodFill walks the group of stones containing seed breadth-first and
// records every member in queue. It never stops early on a liberty:
// visited must hold the whole group when it returns so later scans in the
// same evaluation skip it.
//
// The returned group is a prefix of queue. captured reports that the group
// has no liberties.
func (g *Game) floodFill(seed Coord, stones, visited *Field, queue []Coord) (group []Coord, captured bool) {
	if visited.Get(seed) {
		panic("game: flood fill seed already visited")
	}

	head, tail := 0, 0
	hasLiberty := false

	queue[tail] = seed
	tail++
	visited.Set(seed)

	for head < tail {
		pos := queue[head]
		head++

		for _, nb := range pos.Neighbors() {
			if visited.Get(nb) {
				continue
			}
			if stones.Get(nb) {
				visited.Set(nb)
				queue[tail] = nb
				tail++
				continue
			}
			if !hasLiberty && g.isEmpty(nb) {
				hasLiberty = true
			}
		}
	}

	return queue[:tail], !hasLiberty
}
