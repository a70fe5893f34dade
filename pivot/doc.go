// Package pivot implements the recursion driver (spec §4.1): pick a pivot
// vertex, split the rest of the current vertex set into its neighbors and
// non-neighbors, recurse on each half, then hand the two resulting
// sub-forests to refine and assembly to build this level's module.
//
// A recursive call's own result is always a single forest root: the whole
// vertex set of any graph is trivially a module of itself, so decompose_rec
// applied to any S always terminates in one SERIES/PARALLEL/PRIME node (or
// a bare leaf). That root is handed to refine as a one-element root list,
// whatever its label: it is not unwrapped into its children first.
// Refinement climbs from the touched leaves through parent pointers, so it
// reaches and splits the nested structure below the root where a cross
// edge requires it; the root lists it returns can then hold more than one
// entry.
package pivot
