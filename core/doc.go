// Package core defines the immutable input graph for modular decomposition:
// a finite, simple, undirected graph on vertex set {0, ..., n-1} with a
// total order on vertices (the natural order of the integers) and
// adjacency exposed as per-vertex neighbor sets.
//
// Graph is built once via NewGraph and never mutated afterward — there is
// no AddEdge/RemoveVertex surface, unlike a general-purpose graph library.
// This matches the algorithm this package serves: decomposition only ever
// reads a graph, it never edits one, and two independent Graph instances
// never alias, so no internal locking is needed for re-entrancy across
// goroutines (see Graph's doc comment).
//
// Degree and Neighbors are O(1) / O(deg v) respectively; HasEdge is O(1)
// via a packed bitset. Vertex and neighbor iteration order is always
// ascending, which is what gives the decomposition algorithm its
// determinism guarantee (equal inputs produce byte-identical MD-trees).
//
// Construction:
//
//	NewGraph(n, edges) (*Graph, error)   // coalesces duplicate edges
//
// Errors:
//
//	ErrNegativeSize  – n < 0
//	ErrOutOfRange    – an edge endpoint is not in [0, n)
//	ErrSelfLoop      – an edge has u == v
//
// all three are classified as mderr.ErrInvalidGraph (errors.Is still works).
package core
