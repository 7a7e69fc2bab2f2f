package sgf

import (
	"fmt"
	"sort"
	"strings"
)

// GameTree is one SGF tree: a main line of nodes and its variations.
type GameTree struct {
	Nodes    []Node
	Children []*GameTree
}

// Node is one SGF node, e.g. B[pd] or the root properties. Properties may
// repeat (AB[aa][bb]).
type Node struct {
	Properties map[string][]string
}

type SGF struct {
	Root *GameTree
}

// fixed property order for the root and move nodes
var orderedKeys = []string{"FF", "GM", "SZ", "PB", "PW", "DT", "RE", "KM", "RU", "C", "B", "W"}

// Point names a board point in SGF letters: column then row, "aa" is the
// top-left corner.
func Point(col, row int) string {
	return string([]byte{byte('a' + col), byte('a' + row)})
}

// Size formats the SZ value: "19" for square boards, "9:13" otherwise.
func Size(width, height int) string {
	if width == height {
		return fmt.Sprint(width)
	}
	return fmt.Sprintf("%d:%d", width, height)
}

func Serialize(s *SGF) string {
	var builder strings.Builder
	builder.WriteString("(")
	serializeGameTree(&builder, s.Root)
	builder.WriteString(")")
	return builder.String()
}

func serializeGameTree(builder *strings.Builder, tree *GameTree) {
	for _, node := range tree.Nodes {
		builder.WriteString(";")

		used := make(map[string]bool)
		for _, key := range orderedKeys {
			if values, ok := node.Properties[key]; ok {
				used[key] = true
				writeProperty(builder, key, values)
			}
		}

		rest := make([]string, 0, len(node.Properties))
		for key := range node.Properties {
			if !used[key] {
				rest = append(rest, key)
			}
		}
		sort.Strings(rest)
		for _, key := range rest {
			writeProperty(builder, key, node.Properties[key])
		}
	}

	for _, child := range tree.Children {
		builder.WriteString("(")
		serializeGameTree(builder, child)
		builder.WriteString(")")
	}
}

func writeProperty(builder *strings.Builder, key string, values []string) {
	builder.WriteString(key)
	for _, v := range values {
		builder.WriteString("[")
		builder.WriteString(escape(v))
		builder.WriteString("]")
	}
}

func escape(v string) string {
	if !strings.ContainsAny(v, `]\`) {
		return v
	}
	r := strings.NewReplacer(`\`, `\\`, `]`, `\]`)
	return r.Replace(v)
}
