// File: write.go
package dot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlath/core"
)

// Write renders g as a DOT subset document: one `graph { ... }` block
// with one `a--b;` line per edge, in g.Edges() order. ids[v] names each
// vertex; when ids is nil, decimal vertex ids are used instead.
func Write(g *core.Graph, ids []string) (string, error) {
	if ids != nil && len(ids) != g.N() {
		return "", fmt.Errorf("dot: Write: len(ids)=%d does not match g.N()=%d", len(ids), g.N())
	}

	name := func(v int) string {
		if ids == nil {
			return strconv.Itoa(v)
		}

		return ids[v]
	}

	var b strings.Builder
	b.WriteString("graph {\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "\t%s--%s;\n", name(e[0]), name(e[1]))
	}
	b.WriteString("}\n")

	return b.String(), nil
}
