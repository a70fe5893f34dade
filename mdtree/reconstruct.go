// File: reconstruct.go
package mdtree

import (
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/forest"
)

// Reconstruct rebuilds the graph this tree was computed from (property
// P6): SERIES nodes contribute every cross-child pair as an edge,
// PARALLEL nodes contribute none, and PRIME nodes consult the recorded
// quotient matrix per child pair. An empty tree reconstructs to the
// n=0 graph.
func Reconstruct(t *Tree) (*core.Graph, error) {
	if t.Empty() {
		return core.NewGraph(0, nil)
	}

	leaves, edges, err := reconstructSubtree(t.Root())
	if err != nil {
		return nil, err
	}

	return core.NewGraph(len(leaves), edges)
}

// reconstructSubtree returns n's leaves (in subtree order) and every edge
// entirely contained within n's subtree.
func reconstructSubtree(n Node) (leaves []int, edges [][2]int, err error) {
	if n.IsLeaf() {
		return []int{n.Vertex()}, nil, nil
	}

	children := n.Children()
	childLeaves := make([][]int, len(children))
	for i, c := range children {
		cl, ce, err := reconstructSubtree(c)
		if err != nil {
			return nil, nil, err
		}
		childLeaves[i] = cl
		edges = append(edges, ce...)
		leaves = append(leaves, cl...)
	}

	for i := 0; i < len(children); i++ {
		for j := i + 1; j < len(children); j++ {
			joined, err := crossJoined(n, i, j)
			if err != nil {
				return nil, nil, err
			}
			if !joined {
				continue
			}
			for _, u := range childLeaves[i] {
				for _, v := range childLeaves[j] {
					edges = append(edges, [2]int{u, v})
				}
			}
		}
	}

	return leaves, edges, nil
}

// crossJoined reports whether children i and j of n are fully joined.
func crossJoined(n Node, i, j int) (bool, error) {
	switch n.Label() {
	case forest.Series:
		return true, nil
	case forest.Parallel:
		return false, nil
	case forest.Prime:
		return n.quotientEdge(i, j)
	default:
		return false, nil
	}
}
