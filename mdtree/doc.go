// Package mdtree is the read-only MD-tree output type (spec §6): a rooted
// tree whose leaves carry a vertex id and whose internal nodes carry a
// final SERIES/PARALLEL/PRIME label and an ordered child sequence.
//
// Tree wraps the forest built during decomposition directly rather than
// copying it into a second representation, since the forest's arena
// already satisfies the output contract's read-only, indexed-by-id shape
// once the algorithm has finished mutating it.
//
// PRIME nodes additionally carry a quotient adjacency matrix over their
// children (package matrix), built once at construction time, so that
// Reconstruct can rebuild the exact original graph (property P6): a
// PRIME label alone only says "neither complete nor empty" between
// children, which is not enough information to invert.
package mdtree
