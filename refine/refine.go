// File: refine.go
package refine

import (
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/forest"
	"github.com/katalvlaran/lvlath/mderr"
)

// Refine mutates f in place, restoring the module property at every node
// reachable from leftRoots or rightRoots, given that active edges are
// exactly the graph edges crossing between the two sides (spec §4.2).
// leftRoots/rightRoots need not be flat: each entry may itself be an
// already-labeled SERIES/PARALLEL/PRIME subtree built by a deeper
// recursion — climbing naturally walks through it via parent pointers.
//
// It returns the two sides' root lists after this pass: an entry that got
// split or promoted is expanded into its replacement sequence (transitively,
// since a split half can itself later be promoted in the same pass).
// Callers must use the returned slices, not the ones they passed in.
func Refine(f *forest.Forest, g *core.Graph, leftRoots, rightRoots []forest.NodeID) (newLeft, newRight []forest.NodeID, err error) {
	leafOf := make(map[int]forest.NodeID)
	onLeft := make(map[int]bool)

	collectLeaves(f, leftRoots, true, leafOf, onLeft)
	collectLeaves(f, rightRoots, false, leafOf, onLeft)

	dirty := make([]forest.NodeID, 0)
	seenDirty := make(map[forest.NodeID]bool)

	// Scan every vertex's neighbor list once; a cross edge (x, y) pulls on
	// y's ancestor path, tagged with x's side. Each unordered cross edge is
	// therefore examined from both endpoints, refining both side-forests.
	for x, xLeft := range onLeft {
		for _, y := range g.Neighbors(x) {
			leaf, ok := leafOf[y]
			if !ok || onLeft[y] == xLeft {
				continue // y outside this level's scope, or same side as x
			}
			climb(f, leaf, xLeft, &dirty, seenDirty)
		}
	}

	replacements := make(map[forest.NodeID][]forest.NodeID)

	for _, parent := range dirty {
		if err := splitDirty(f, parent, replacements); err != nil {
			return nil, nil, err
		}
	}

	f.ResetAllTouched()

	for _, r := range leftRoots {
		promoteMixedSubtree(f, r, replacements)
	}
	for _, r := range rightRoots {
		promoteMixedSubtree(f, r, replacements)
	}

	newLeft = resolveAll(leftRoots, replacements)
	newRight = resolveAll(rightRoots, replacements)

	return newLeft, newRight, nil
}

// collectLeaves walks every root's subtree, recording each leaf's vertex ->
// node mapping and which side it belongs to.
func collectLeaves(f *forest.Forest, roots []forest.NodeID, left bool, leafOf map[int]forest.NodeID, onLeft map[int]bool) {
	var walk func(id forest.NodeID)
	walk = func(id forest.NodeID) {
		if f.IsLeaf(id) {
			v := f.Vertex(id)
			leafOf[v] = id
			onLeft[v] = left

			return
		}
		for c := f.FirstChild(id); c != forest.NoNode; c = f.NextSibling(c) {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}
}

// climb implements spec §4.2 steps 1 and 3 for a single active edge's pull
// on y: mark y's parent, and if that makes the parent fully marked, reset
// it and fold the climb into the parent's own parent. The touched flag
// makes repeated pulls on the same y within one pass a no-op (invariant
// I3). Nodes left only partially marked are recorded in dirty for the
// deferred split step.
func climb(f *forest.Forest, y forest.NodeID, fromLeft bool, dirty *[]forest.NodeID, seenDirty map[forest.NodeID]bool) {
	parent := f.Parent(y)
	if parent == forest.NoNode {
		return // y is itself a forest root; nothing above it to mark
	}
	if f.Touched(y) {
		return
	}
	f.SetTouched(y, true)

	side := forest.LeftSplit
	if !fromLeft {
		side = forest.RightSplit
	}
	f.SetSplit(parent, side)
	newMark := f.IncrementMark(parent)

	if newMark == f.NumChildren(parent) {
		f.ResetMark(parent)
		climb(f, parent, fromLeft, dirty, seenDirty)

		return
	}

	if !seenDirty[parent] {
		seenDirty[parent] = true
		*dirty = append(*dirty, parent)
	}
}

// splitDirty performs the deferred split (spec §4.2 step 2) for a node left
// partially marked once all active edges have been scanned: its touched
// children become one sibling, its untouched children the other, both
// tagged with the split tag accumulated on the node being split. The split
// is recorded in replacements so callers whose root was this node see the
// new pair instead.
func splitDirty(f *forest.Forest, parent forest.NodeID, replacements map[forest.NodeID][]forest.NodeID) error {
	mark := f.Mark(parent)
	numChildren := f.NumChildren(parent)
	if mark == 0 || mark == numChildren {
		// Resolved by a later full-mark climb, or never actually touched;
		// either way there is nothing left to split.
		return nil
	}
	if mark > numChildren {
		return mderr.Invariant("refine.splitDirty", int(parent), "mark exceeds child count")
	}

	children := f.Children(parent)
	groupA := make([]forest.NodeID, 0, mark)
	groupB := make([]forest.NodeID, 0, numChildren-mark)
	for _, c := range children {
		if f.Touched(c) {
			groupA = append(groupA, c)
		} else {
			groupB = append(groupB, c)
		}
	}
	if len(groupA) == 0 || len(groupB) == 0 {
		return mderr.Invariant("refine.splitDirty", int(parent), "partially-marked node produced an empty split group")
	}

	tag := f.Split(parent)
	a, b := f.SplitInto(parent, groupA, groupB)
	f.SetSplit(a, tag)
	f.SetSplit(b, tag)
	f.ResetMark(parent)
	replacements[parent] = []forest.NodeID{a, b}

	return nil
}

// promoteMixedSubtree runs the post-pass promotion sweep (spec §4.2,
// "Promotion rule (central)") over id's subtree, post-order so cascaded
// promotions resolve bottom-up: any node tagged MixedSplit is spliced out,
// recorded in replacements as its children.
func promoteMixedSubtree(f *forest.Forest, id forest.NodeID, replacements map[forest.NodeID][]forest.NodeID) {
	if f.IsLeaf(id) {
		return
	}
	for c := f.FirstChild(id); c != forest.NoNode; {
		next := f.NextSibling(c)
		promoteMixedSubtree(f, c, replacements)
		c = next
	}
	if f.Split(id) == forest.MixedSplit {
		replacements[id] = f.Promote(id)
	}
}

// resolveAll expands every root through replacements transitively (a split
// half can itself have been promoted in the same pass) and flattens the
// result, preserving left-to-right order.
func resolveAll(roots []forest.NodeID, replacements map[forest.NodeID][]forest.NodeID) []forest.NodeID {
	out := make([]forest.NodeID, 0, len(roots))
	var resolve func(id forest.NodeID)
	resolve = func(id forest.NodeID) {
		seq, ok := replacements[id]
		if !ok {
			out = append(out, id)

			return
		}
		for _, s := range seq {
			resolve(s)
		}
	}
	for _, r := range roots {
		resolve(r)
	}

	return out
}
