// File: label.go
package label

import (
	"sort"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/forest"
	"github.com/katalvlaran/lvlath/mderr"
)

// Label finalizes id's subtree: every Unknown-labeled node it reaches is
// sampled, collapsed (single child), merged (same-label child into
// parent), and — for SERIES/PARALLEL — canonicalized by min-leaf-id. It
// returns the node that now stands where id used to: collapsing can
// replace id itself with its sole surviving child.
func Label(f *forest.Forest, g *core.Graph, id forest.NodeID) (forest.NodeID, error) {
	if f.IsLeaf(id) {
		return id, nil
	}
	if f.Label(id) != forest.Unknown {
		return id, nil
	}

	origChildren := f.Children(id)
	if len(origChildren) == 0 {
		return forest.NoNode, mderr.Invariant("label.Label", int(id), "unknown internal node has no children")
	}

	children := make([]forest.NodeID, 0, len(origChildren))
	for _, c := range origChildren {
		nc, err := Label(f, g, c)
		if err != nil {
			return forest.NoNode, err
		}
		if nc != c {
			f.Detach(c) // c collapsed into nc; drop the emptied node
		}
		children = append(children, nc)
	}

	if len(children) == 1 {
		f.Detach(children[0])

		return children[0], nil
	}

	lbl := sampleLabel(f, g, children)

	merged := children
	if lbl == forest.Series || lbl == forest.Parallel {
		merged = make([]forest.NodeID, 0, len(children))
		for _, c := range children {
			if !f.IsLeaf(c) && f.Label(c) == lbl {
				for _, gc := range f.Children(c) {
					f.Detach(gc)
					merged = append(merged, gc)
				}
				f.Detach(c)
			} else {
				merged = append(merged, c)
			}
		}
	}

	for _, c := range merged {
		f.AppendChild(id, c)
	}
	f.SetLabel(id, lbl)

	if lbl == forest.Series || lbl == forest.Parallel {
		sortByMinLeaf(f, id)
	}

	if len(merged) == 1 {
		f.Detach(merged[0])

		return merged[0], nil
	}

	return id, nil
}

// sampleLabel implements spec §4.4's one-pass sampling test: pick one
// representative leaf per child, establish SERIES/PARALLEL from the first
// pair, and confirm every other child agrees with that pair's verdict
// relative to the first representative; any disagreement means PRIME.
func sampleLabel(f *forest.Forest, g *core.Graph, children []forest.NodeID) forest.Label {
	reps := make([]int, len(children))
	for i, c := range children {
		reps[i] = minLeafVertex(f, c)
	}

	base := g.HasEdge(reps[0], reps[1])
	for i := 2; i < len(reps); i++ {
		if g.HasEdge(reps[0], reps[i]) != base {
			return forest.Prime
		}
	}
	if base {
		return forest.Series
	}

	return forest.Parallel
}

// minLeafVertex returns the smallest vertex id among id's leaves, used
// both as sampleLabel's representative and as the canonicalization key.
func minLeafVertex(f *forest.Forest, id forest.NodeID) int {
	if f.IsLeaf(id) {
		return f.Vertex(id)
	}

	min := -1
	for c := f.FirstChild(id); c != forest.NoNode; c = f.NextSibling(c) {
		v := minLeafVertex(f, c)
		if min == -1 || v < min {
			min = v
		}
	}

	return min
}

// sortByMinLeaf reorders id's children ascending by minLeafVertex (spec
// §4.4 canonicalization for SERIES/PARALLEL nodes).
func sortByMinLeaf(f *forest.Forest, id forest.NodeID) {
	children := f.Children(id)
	keys := make([]int, len(children))
	for i, c := range children {
		keys[i] = minLeafVertex(f, c)
	}

	idx := make([]int, len(children))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return keys[idx[i]] < keys[idx[j]] })

	for _, i := range idx {
		f.AppendChild(id, children[i])
	}
}
