// Package label implements spec §4.4: assigning SERIES/PARALLEL/PRIME to
// the UNKNOWN-labeled nodes assembly and refine produce, collapsing
// degenerate single-child nodes, merging a SERIES/PARALLEL node into a
// same-labeled parent, and canonicalizing SERIES/PARALLEL child order by
// minimum leaf vertex id.
//
// Only nodes still carrying label Unknown are visited: a child that
// arrived from a deeper recursion already has a final label assigned by
// that recursion's own labeling pass and is left untouched, subtree and
// all. This bounds the work to exactly the nodes this pivot level created
// (assembly's wrapper, plus any pieces refine split off it).
package label
