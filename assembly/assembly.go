// File: assembly.go
package assembly

import "github.com/katalvlaran/lvlath/forest"

// Assemble builds the MD-tree for this recursion level around pivotLeaf,
// given refine's output leftRoots/rightRoots (spec §4.3's F_L, F_R).
//
// When refine found no active edge crossing either side — neither
// leftRoots nor rightRoots carries a LEFT/RIGHT/MIXED split tag — every
// remaining root is an independent, already-maximal module, and the
// outward sweep degenerates to wrapping one root at a time around the
// growing module-around-p, alternating sides by the shorter-block-first
// tie-break. When a tag IS present, at least one root only became a
// module boundary because of an edge reaching across from the opposite
// side, and the two sides are not independent: sampling a representative
// leaf from a partial wrap of just one tagged root plus the pivot is
// unsound (that pair is not itself a module), so those roots are
// concatenated flat with the pivot in one node and left for labeling's
// single sampling pass to classify as a whole.
func Assemble(f *forest.Forest, pivotLeaf forest.NodeID, leftRoots, rightRoots []forest.NodeID) forest.NodeID {
	if anyTagged(f, leftRoots) || anyTagged(f, rightRoots) {
		return assembleFlat(f, pivotLeaf, leftRoots, rightRoots)
	}

	return assembleSweep(f, pivotLeaf, leftRoots, rightRoots)
}

// anyTagged reports whether any root in roots still carries a split tag
// left over from refinement.
func anyTagged(f *forest.Forest, roots []forest.NodeID) bool {
	for _, r := range roots {
		if f.Split(r) != forest.NoSplit {
			return true
		}
	}

	return false
}

// assembleFlat wraps leftRoots, the pivot, and rightRoots as direct
// siblings of one new node, in that order (spec §4.3's "F_L • {p} • F_R").
func assembleFlat(f *forest.Forest, pivotLeaf forest.NodeID, leftRoots, rightRoots []forest.NodeID) forest.NodeID {
	root := f.NewInternal(forest.Unknown)
	for _, r := range leftRoots {
		f.AppendChild(root, r)
	}
	f.AppendChild(root, pivotLeaf)
	for _, r := range rightRoots {
		f.AppendChild(root, r)
	}

	return root
}

// assembleSweep implements the untagged case of spec §4.3's outward
// sweep: starting from the bare pivot leaf, repeatedly wrap the nearest
// unconsumed root from the side with fewer roots remaining (ties favor
// the left) together with the module built so far, under a new node.
// Each step's new node becomes the next step's "current partial module
// around p"; the last one built is the root returned.
func assembleSweep(f *forest.Forest, pivotLeaf forest.NodeID, leftRoots, rightRoots []forest.NodeID) forest.NodeID {
	current := pivotLeaf
	li, ri := 0, 0

	for li < len(leftRoots) || ri < len(rightRoots) {
		leftLeft := len(leftRoots) - li
		rightLeft := len(rightRoots) - ri

		wrapped := f.NewInternal(forest.Unknown)
		if ri >= len(rightRoots) || (li < len(leftRoots) && leftLeft <= rightLeft) {
			f.AppendChild(wrapped, leftRoots[li])
			f.AppendChild(wrapped, current)
			li++
		} else {
			f.AppendChild(wrapped, current)
			f.AppendChild(wrapped, rightRoots[ri])
			ri++
		}
		current = wrapped
	}

	return current
}
