// File: read.go
package dot

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

// Read parses a DOT subset document (spec.md §6) into a core.Graph plus
// the vertex names in id order (ids[v] is the identifier that produced
// vertex v). Vertex ids are assigned in first-seen order across edge
// chains only; node-only statements contribute no vertex (spec.md §6).
func Read(src string) (*core.Graph, []string, error) {
	var g dotGraph
	if err := parser.ParseString(preprocess(src), &g); err != nil {
		return nil, nil, fmt.Errorf("dot: parse: %w", err)
	}

	idOf := make(map[string]int)
	var ids []string
	vertexOf := func(name string) int {
		if v, ok := idOf[name]; ok {
			return v
		}
		v := len(ids)
		idOf[name] = v
		ids = append(ids, name)

		return v
	}

	var edges [][2]int
	for _, stmt := range g.Stmts {
		chain := append([]string{stmt.First}, stmt.Rest...)
		if len(chain) < 2 {
			continue // node-only statement, ignored
		}
		for i := 0; i+1 < len(chain); i++ {
			u, v := vertexOf(chain[i]), vertexOf(chain[i+1])
			edges = append(edges, [2]int{u, v})
		}
	}

	graph, err := core.NewGraph(len(ids), edges)
	if err != nil {
		return nil, nil, err
	}

	return graph, ids, nil
}
