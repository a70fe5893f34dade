// File: property_test.go
package moddecomp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/internal/modcheck"
	"github.com/katalvlaran/lvlath/mdtree"
	"github.com/katalvlaran/lvlath/moddecomp"
)

// nodeLeafSets collects leaves(u) for every node u of tree, leaves
// included (a leaf's set is its single vertex).
func nodeLeafSets(n mdtree.Node, out *[][]int) {
	*out = append(*out, leafVertices(n))
	if n.IsLeaf() {
		return
	}
	for _, c := range n.Children() {
		nodeLeafSets(c, out)
	}
}

// TestProperty_P1_P2 checks, for each small fixture, that every node's
// leaf set is a module of the input graph (P1) and that the tree's node
// leaf sets are exactly the graph's strong modules, singletons included
// (P2).
func TestProperty_P1_P2(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges [][2]int
	}{
		{"k3", 3, [][2]int{{0, 1}, {0, 2}, {1, 2}}},
		{"p4", 4, [][2]int{{0, 1}, {1, 2}, {2, 3}}},
		{"bowtie", 5, [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {3, 4}, {4, 0}}},
		{"2k2", 4, [][2]int{{0, 1}, {2, 3}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.NewGraph(tc.n, tc.edges)
			require.NoError(t, err)

			tree, err := moddecomp.Decompose(g)
			require.NoError(t, err)

			var leafSets [][]int
			nodeLeafSets(tree.Root(), &leafSets)

			for _, ls := range leafSets {
				require.True(t, modcheck.IsModule(g, ls), "leaf set %v is not a module (P1)", ls)
			}

			strong := modcheck.StrongModules(g)
			require.True(t, modcheck.MatchesLeafSets(strong, leafSets),
				"tree node leaf sets do not match strong modules (P2): tree=%v strong=%v", leafSets, strong)
		})
	}
}
