// File: pivot.go
package pivot

import (
	"github.com/katalvlaran/lvlath/assembly"
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/forest"
	"github.com/katalvlaran/lvlath/label"
	"github.com/katalvlaran/lvlath/refine"
)

// DecomposeRec implements spec §4.1: pick s[0] as pivot, partition the rest
// of s into its neighbors and non-neighbors, recurse on each, then refine
// and assemble the two sides around the pivot and label the result. It
// returns the single root representing the module s as a whole (the base
// case for |s|=0 is forest.NoNode; for |s|=1, a bare leaf).
func DecomposeRec(f *forest.Forest, g *core.Graph, s []int) (forest.NodeID, error) {
	switch len(s) {
	case 0:
		return forest.NoNode, nil
	case 1:
		return f.NewLeaf(s[0]), nil
	}

	p := s[0]
	rest := s[1:]
	n := make([]int, 0, len(rest))
	nbar := make([]int, 0, len(rest))
	for _, v := range rest {
		if g.HasEdge(p, v) {
			n = append(n, v)
		} else {
			nbar = append(nbar, v)
		}
	}

	leftRoot, err := DecomposeRec(f, g, n)
	if err != nil {
		return forest.NoNode, err
	}
	rightRoot, err := DecomposeRec(f, g, nbar)
	if err != nil {
		return forest.NoNode, err
	}

	pivotLeaf := f.NewLeaf(p)

	newLeft, newRight, err := refine.Refine(f, g, rootsOf(leftRoot), rootsOf(rightRoot))
	if err != nil {
		return forest.NoNode, err
	}

	root := assembly.Assemble(f, pivotLeaf, newLeft, newRight)

	return label.Label(f, g, root)
}

// rootsOf returns id as a singleton slice, or nil if id is absent. Refine
// and assembly both work over slices of roots so that a side can grow
// past one element once refinement actually splits or promotes it.
func rootsOf(id forest.NodeID) []forest.NodeID {
	if id == forest.NoNode {
		return nil
	}

	return []forest.NodeID{id}
}
