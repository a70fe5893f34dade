// File: moddecomp_test.go
package moddecomp_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/forest"
	"github.com/katalvlaran/lvlath/mdtree"
	"github.com/katalvlaran/lvlath/moddecomp"
)

func decompose(t *testing.T, n int, edges [][2]int) *mdtree.Tree {
	t.Helper()

	g, err := core.NewGraph(n, edges)
	require.NoError(t, err)

	tree, err := moddecomp.Decompose(g)
	require.NoError(t, err)

	return tree
}

// leafVertices returns the sorted set of vertices under n's subtree.
func leafVertices(n mdtree.Node) []int {
	if n.IsLeaf() {
		return []int{n.Vertex()}
	}
	var out []int
	for _, c := range n.Children() {
		out = append(out, leafVertices(c)...)
	}

	return out
}

func TestDecompose_EmptyGraph(t *testing.T) {
	tree := decompose(t, 0, nil)
	require.True(t, tree.Empty())
}

func TestDecompose_SingleVertex(t *testing.T) {
	tree := decompose(t, 1, nil)
	require.False(t, tree.Empty())
	root := tree.Root()
	require.True(t, root.IsLeaf())
	require.Equal(t, 0, root.Vertex())
}

func TestDecompose_ThreeIsolatedVertices_Parallel(t *testing.T) {
	tree := decompose(t, 3, nil)
	root := tree.Root()
	require.False(t, root.IsLeaf())
	require.Equal(t, forest.Parallel, root.Label())
	require.ElementsMatch(t, []int{0, 1, 2}, leafVertices(root))
}

func TestDecompose_K3_Series(t *testing.T) {
	tree := decompose(t, 3, [][2]int{{0, 1}, {0, 2}, {1, 2}})
	root := tree.Root()
	require.False(t, root.IsLeaf())
	require.Equal(t, forest.Series, root.Label())
	require.ElementsMatch(t, []int{0, 1, 2}, leafVertices(root))
}

func TestDecompose_P4_Prime(t *testing.T) {
	tree := decompose(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	root := tree.Root()
	require.False(t, root.IsLeaf())
	require.Equal(t, forest.Prime, root.Label())
	require.ElementsMatch(t, []int{0, 1, 2, 3}, leafVertices(root))
	require.Len(t, root.Children(), 4)
}

func TestDecompose_CoP4_Prime(t *testing.T) {
	// Complement of 0-1-2-3: edges are every non-path pair.
	tree := decompose(t, 4, [][2]int{{0, 2}, {0, 3}, {1, 3}})
	root := tree.Root()
	require.False(t, root.IsLeaf())
	require.Equal(t, forest.Prime, root.Label())
	require.ElementsMatch(t, []int{0, 1, 2, 3}, leafVertices(root))
}

func TestDecompose_Bowtie_NestedSeriesParallel(t *testing.T) {
	tree := decompose(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {3, 4}, {4, 0}})
	root := tree.Root()
	require.Equal(t, forest.Series, root.Label())

	children := root.Children()
	require.Len(t, children, 2)

	var leaf0, parallel mdtree.Node
	for _, c := range children {
		if c.IsLeaf() {
			leaf0 = c
		} else {
			parallel = c
		}
	}
	require.Equal(t, 0, leaf0.Vertex())
	require.Equal(t, forest.Parallel, parallel.Label())

	pc := parallel.Children()
	require.Len(t, pc, 2)
	for _, c := range pc {
		require.Equal(t, forest.Series, c.Label())
		require.Len(t, c.Children(), 2)
	}
	require.ElementsMatch(t, []int{1, 2, 3, 4}, append(leafVertices(pc[0]), leafVertices(pc[1])...))
}

func TestDecompose_TwoDisjointK2_ParallelOfSeries(t *testing.T) {
	tree := decompose(t, 4, [][2]int{{0, 1}, {2, 3}})
	root := tree.Root()
	require.Equal(t, forest.Parallel, root.Label())

	children := root.Children()
	require.Len(t, children, 2)
	for _, c := range children {
		require.Equal(t, forest.Series, c.Label())
		require.Len(t, c.Children(), 2)
	}
}

// snapshot is a plain-value mirror of mdtree.Node, comparable with
// cmp.Diff independent of the underlying forest arena's node indices.
type snapshot struct {
	Leaf     bool
	Vertex   int
	Label    string
	Children []snapshot
}

func snapshotOf(n mdtree.Node) snapshot {
	if n.IsLeaf() {
		return snapshot{Leaf: true, Vertex: n.Vertex()}
	}
	s := snapshot{Label: n.Label().String()}
	for _, c := range n.Children() {
		s.Children = append(s.Children, snapshotOf(c))
	}

	return s
}

func TestDecompose_DeterministicAcrossRuns(t *testing.T) {
	n, edges := 5, [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {3, 4}, {4, 0}}

	first := snapshotOf(decompose(t, n, edges).Root())
	for i := 0; i < 5; i++ {
		got := snapshotOf(decompose(t, n, edges).Root())
		require.Empty(t, cmp.Diff(first, got), "run %d produced a different tree shape", i)
	}
}

func TestDecompose_ReconstructRoundTripsEveryScenario(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges [][2]int
	}{
		{"empty", 0, nil},
		{"single", 1, nil},
		{"isolated", 3, nil},
		{"k3", 3, [][2]int{{0, 1}, {0, 2}, {1, 2}}},
		{"p4", 4, [][2]int{{0, 1}, {1, 2}, {2, 3}}},
		{"cop4", 4, [][2]int{{0, 2}, {0, 3}, {1, 3}}},
		{"bowtie", 5, [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {3, 4}, {4, 0}}},
		{"2k2", 4, [][2]int{{0, 1}, {2, 3}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.NewGraph(tc.n, tc.edges)
			require.NoError(t, err)

			tree, err := moddecomp.Decompose(g)
			require.NoError(t, err)

			got, err := mdtree.Reconstruct(tree)
			require.NoError(t, err)
			require.Equal(t, tc.n, got.N())
			for u := 0; u < tc.n; u++ {
				for v := u + 1; v < tc.n; v++ {
					require.Equal(t, g.HasEdge(u, v), got.HasEdge(u, v), "edge (%d,%d)", u, v)
				}
			}
		})
	}
}
