package sgf

import "testing"

func TestPoint(t *testing.T) {
	tests := []struct {
		col, row int
		want     string
	}{
		{0, 0, "aa"},
		{3, 15, "dp"},
		{18, 18, "ss"},
	}
	for _, tt := range tests {
		if got := Point(tt.col, tt.row); got != tt.want {
			t.Errorf("Point(%d, %d) = %q, want %q", tt.col, tt.row, got, tt.want)
		}
	}
}

func TestSize(t *testing.T) {
	if got := Size(19, 19); got != "19" {
		t.Errorf("Size(19, 19) = %q", got)
	}
	if got := Size(9, 13); got != "9:13" {
		t.Errorf("Size(9, 13) = %q", got)
	}
}

func TestSerialize(t *testing.T) {
	record := &SGF{
		Root: &GameTree{
			Nodes: []Node{
				{Properties: map[string][]string{
					"GM": {"1"},
					"FF": {"4"},
					"SZ": {"9"},
					"KM": {"6.5"},
					"AP": {"goban"},
					"CA": {"UTF-8"},
				}},
				{Properties: map[string][]string{"B": {"cc"}}},
				{Properties: map[string][]string{"W": {""}}},
			},
			Children: []*GameTree{
				{Nodes: []Node{{Properties: map[string][]string{"C": {"a]b"}}}}},
			},
		},
	}

	want := "(;FF[4]GM[1]SZ[9]KM[6.5]AP[goban]CA[UTF-8];B[cc];W[](;C[a\\]b]))"
	if got := Serialize(record); got != want {
		t.Errorf("Serialize() =\n%s\nwant\n%s", got, want)
	}
}
