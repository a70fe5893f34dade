// Package forest implements the mutable working data structure the
// modular-decomposition algorithm operates on: an ordered forest of rooted
// trees whose leaves are graph vertices and whose internal nodes carry a
// label, a mark counter, and a split-type tag.
//
// Storage is an arena: all nodes for one Forest live in a single growable
// slice, addressed by integer id (type NodeID). Parent/child/sibling
// pointers are arena indices rather than Go pointers, which is what lets
// the whole forest be released in one shot when a decomposition call
// returns and avoids any reference cycles for the garbage collector to
// chase (see spec §9, "Parent back-references").
//
// Sibling order is maintained with an intrusive doubly-linked list
// (prevSibling/nextSibling fields on each node) rather than a slice per
// parent, so Detach and splice operations used heavily by refinement and
// assembly are O(1) instead of O(children).
//
// touched is an implementation-only companion to the spec's mark counter:
// mark(u) counts how many of u's children are touched, and touched(c)
// records whether child c itself has already been counted, so that a
// child touched by several active edges in the same pass only increments
// its parent's mark once (spec invariant I3: mark(u) <= numChildren(u)).
package forest
