// File: types.go
// Role: Vertex/adjacency representation for an immutable simple graph.
// Policy:
//   - No mutation surface after NewGraph returns; no locking needed.
//   - Adjacency stored two ways: sorted slice (iteration) + bitset (O(1) HasEdge).
//   - No self-loops, no multi-edges, no directed edges (spec non-goals).
package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath/mderr"
)

// Sentinel construction errors. All three wrap mderr.ErrInvalidGraph, so
// errors.Is(err, mderr.ErrInvalidGraph) succeeds regardless of which one
// a caller hits.
var (
	// ErrNegativeSize indicates NewGraph was called with n < 0.
	ErrNegativeSize = fmt.Errorf("core: negative vertex count: %w", mderr.ErrInvalidGraph)

	// ErrOutOfRange indicates an edge endpoint outside [0, n).
	ErrOutOfRange = fmt.Errorf("core: edge endpoint out of range: %w", mderr.ErrInvalidGraph)

	// ErrSelfLoop indicates an edge (v, v).
	ErrSelfLoop = fmt.Errorf("core: self-loop not allowed: %w", mderr.ErrInvalidGraph)
)

const wordBits = 64

// Graph is an immutable finite, simple, undirected graph on vertex set
// {0, ..., n-1}. Construct with NewGraph; there is no mutation API.
//
// adj holds, per vertex, its neighbors in ascending order (for O(deg v)
// iteration with deterministic order); bits holds the same adjacency as a
// packed bitset per vertex (for O(1) HasEdge without a map).
type Graph struct {
	n    int
	adj  [][]int
	bits [][]uint64 // bits[v] has ceil(n/64) words; bit u set iff edge(u,v)
}

// NewGraph builds a Graph over vertices {0, ..., n-1} from an edge list.
// Duplicate edges are coalesced silently (spec.md §6). The constructor
// fails with a sentinel wrapped as mderr.ErrInvalidGraph when:
//   - n < 0                         (ErrNegativeSize)
//   - an endpoint is outside [0,n)  (ErrOutOfRange)
//   - an edge has u == v            (ErrSelfLoop)
//
// n == 0 is valid and returns an empty graph (spec.md §7).
// Complexity: O(n + |edges|·α) where α is the near-constant bitset op cost.
func NewGraph(n int, edges [][2]int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrNegativeSize)
	}

	words := (n + wordBits - 1) / wordBits
	if words == 0 {
		words = 1 // keep a single empty word so bits[v] is never a nil slice
	}

	g := &Graph{
		n:    n,
		adj:  make([][]int, n),
		bits: make([][]uint64, n),
	}
	for v := 0; v < n; v++ {
		g.bits[v] = make([]uint64, words)
	}

	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("NewGraph: edge (%d,%d): %w", u, v, ErrOutOfRange)
		}
		if u == v {
			return nil, fmt.Errorf("NewGraph: edge (%d,%d): %w", u, v, ErrSelfLoop)
		}
		if g.hasBit(u, v) {
			continue // duplicate, coalesce silently
		}
		g.setBit(u, v)
		g.setBit(v, u)
		g.adj[u] = append(g.adj[u], v)
		g.adj[v] = append(g.adj[v], u)
	}

	for v := 0; v < n; v++ {
		sort.Ints(g.adj[v])
	}

	return g, nil
}

func (g *Graph) setBit(v, u int) {
	g.bits[v][u/wordBits] |= 1 << uint(u%wordBits)
}

func (g *Graph) hasBit(v, u int) bool {
	return g.bits[v][u/wordBits]&(1<<uint(u%wordBits)) != 0
}
