// File: marks.go
// Role: The per-node counters refinement uses to detect "fully marked"
// children in O(1) and to maintain the monotone split-tag (spec I3, I4).
package forest

// Mark returns u's current mark count (how many of u's children have
// been touched during the current refinement pass).
func (f *Forest) Mark(u NodeID) int {
	return f.nodes[u].mark
}

// IncrementMark bumps u's mark count by one and returns the new value.
// Callers must only call this once per (u, child) pair per pass — see
// Touched/SetTouched, which is exactly what guards that.
func (f *Forest) IncrementMark(u NodeID) int {
	f.nodes[u].mark++

	return f.nodes[u].mark
}

// ResetMark sets u's mark count back to zero, as required after a node
// is found fully marked (spec §4.2 step 3) and at the end of every
// refinement pass (invariant I3).
func (f *Forest) ResetMark(u NodeID) {
	f.nodes[u].mark = 0
}

// Touched reports whether c has already been counted toward its parent's
// mark in the current pass.
func (f *Forest) Touched(c NodeID) bool {
	return f.nodes[c].touched
}

// SetTouched marks/unmarks c as counted for the current pass. Refinement
// sets this true exactly once per node per pass; the end-of-pass sweep
// resets it back to false for every surviving node (ResetAllTouched).
func (f *Forest) SetTouched(c NodeID, v bool) {
	f.nodes[c].touched = v
}

// ResetAllTouched clears the touched flag on every live node. Called once
// at the end of a refinement pass, alongside the mark invariant (I3:
// mark(u) == 0 for all u once a pass completes).
func (f *Forest) ResetAllTouched() {
	for i := range f.nodes {
		f.nodes[i].touched = false
	}
}

// Split returns u's current split tag.
func (f *Forest) Split(u NodeID) SplitTag {
	return f.nodes[u].split
}

// SetSplit applies the monotone transition from spec invariant I4:
// NONE -> side, or (LeftSplit|RightSplit) -> MixedSplit when side
// disagrees with the tag already present. Applying the same side twice,
// or applying MixedSplit directly, is idempotent.
func (f *Forest) SetSplit(u NodeID, side SplitTag) {
	cur := f.nodes[u].split
	switch {
	case cur == NoSplit:
		f.nodes[u].split = side
	case cur == side:
		// no change
	case side == MixedSplit:
		f.nodes[u].split = MixedSplit
	default:
		// cur is LeftSplit or RightSplit and side is the other one (or
		// cur is already MixedSplit, in which case this is a no-op)
		if cur == MixedSplit {
			return
		}
		f.nodes[u].split = MixedSplit
	}
}

// ResetSplit clears u's split tag back to NoSplit. Neither refine nor
// assembly calls it: a tag set during a refinement pass stays on its node
// afterward.
func (f *Forest) ResetSplit(u NodeID) {
	f.nodes[u].split = NoSplit
}

// IsDead reports whether id has been removed by a split or promote
// operation (its subtree was spliced elsewhere; the id itself is inert).
func (f *Forest) IsDead(id NodeID) bool {
	return f.nodes[id].dead
}
