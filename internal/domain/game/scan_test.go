package game

import "testing"

func place(t *testing.T, g *Game, s *Scratch, color Color, points ...[2]int) {
	t.Helper()
	for _, p := range points {
		if res, _ := g.Play(p[0], p[1], color, s); res != Legal {
			t.Fatalf("setup: %v at (%d,%d) = %v\n%s", color, p[0], p[1], res, g)
		}
	}
}

func TestFloodFillRunsToExhaustion(t *testing.T) {
	g := New(9, 9, 0)
	s := NewScratch()
	// A chain of five black stones with plenty of liberties.
	chain := [][2]int{{2, 2}, {3, 2}, {4, 2}, {4, 3}, {4, 4}}
	place(t, g, s, Black, chain...)

	var visited Field
	group, captured := g.floodFill(CoordAt(2, 2), &g.black, &visited, s.queue)

	if captured {
		t.Error("group with liberties reported as captured")
	}
	if len(group) != len(chain) {
		t.Fatalf("group size = %d, want %d", len(group), len(chain))
	}
	for _, p := range chain {
		if !visited.Get(CoordAt(p[0], p[1])) {
			t.Errorf("(%d,%d) not marked visited", p[0], p[1])
		}
	}
	if visited.Count() != len(chain) {
		t.Errorf("visited holds %d coordinates, want %d", visited.Count(), len(chain))
	}
	if group[0] != CoordAt(2, 2) {
		t.Errorf("group[0] = %d, want the seed", group[0])
	}
}

func TestFloodFillCaptured(t *testing.T) {
	g := New(5, 5, 0)
	s := NewScratch()
	place(t, g, s, White, [2]int{0, 0}, [2]int{1, 0})
	place(t, g, s, Black, [2]int{2, 0}, [2]int{0, 1})
	// Set the last surrounding stone directly so nothing gets removed.
	g.black.Set(CoordAt(1, 1))

	var visited Field
	group, captured := g.floodFill(CoordAt(1, 0), &g.white, &visited, s.queue)
	if !captured {
		t.Error("surrounded group reported alive")
	}
	if len(group) != 2 {
		t.Errorf("group size = %d, want 2", len(group))
	}
}

func TestFloodFillSharedVisited(t *testing.T) {
	g := New(9, 9, 0)
	s := NewScratch()
	place(t, g, s, White, [2]int{3, 3}, [2]int{4, 3})

	var visited Field
	g.floodFill(CoordAt(3, 3), &g.white, &visited, s.queue)

	if !visited.Get(CoordAt(4, 3)) {
		t.Fatal("second stone of the group not visited")
	}
	assertPanics(t, "seed already visited", func() {
		g.floodFill(CoordAt(4, 3), &g.white, &visited, s.queue)
	})
}

func TestFloodFillBoardEdge(t *testing.T) {
	g := New(5, 5, 0)
	s := NewScratch()
	place(t, g, s, Black, [2]int{0, 0})
	place(t, g, s, White, [2]int{1, 0})

	var visited Field
	group, captured := g.floodFill(CoordAt(0, 0), &g.black, &visited, s.queue)
	if captured {
		t.Error("corner stone with a liberty at (0,1) reported captured")
	}
	if len(group) != 1 {
		t.Errorf("group size = %d, want 1", len(group))
	}
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
