// Package matrix provides a small row-major boolean dense matrix (adapted
// from the teacher's float64 Dense) and an AdjacencyMatrix built on top of
// it for one purpose in this module: recording the quotient adjacency
// between a PRIME node's children, so the tree's output side can rebuild
// the original graph exactly (property P6) instead of only knowing that
// "some" pairs disagree.
//
// The teacher's original matrix package additionally covered incidence
// matrices, Floyd–Warshall shortest paths, LU/eigen linear algebra, and
// descriptive statistics — none of which any SPEC_FULL.md component
// exercises (modular decomposition never computes distances, ranks, or
// eigenvalues), so they are not carried forward; see DESIGN.md.
package matrix
