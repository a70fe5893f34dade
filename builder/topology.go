// File: topology.go
package builder

import "github.com/katalvlaran/lvlath/core"

// MinPathNodes, MinCycleNodes, MinStarNodes, MinWheelNodes, MinGridDim
// mirror the teacher's named minimums for each topology's smallest
// meaningful instance.
const (
	MinPathNodes  = 2
	MinCycleNodes = 3
	MinStarNodes  = 2
	MinWheelNodes = 4
	MinGridDim    = 1
)

// Path builds the simple path 0-1-...-(n-1) (n >= MinPathNodes).
// Complexity: O(n) vertices, O(n-1) edges.
func Path(n int) (*core.Graph, error) {
	if n < MinPathNodes {
		return nil, builderErrorf("Path", core.ErrNegativeSize)
	}
	edges := make([][2]int, 0, n-1)
	for v := 0; v < n-1; v++ {
		edges = append(edges, [2]int{v, v + 1})
	}

	return core.NewGraph(n, edges)
}

// Cycle builds the simple cycle 0-1-...-(n-1)-0 (n >= MinCycleNodes).
// Complexity: O(n) vertices, O(n) edges.
func Cycle(n int) (*core.Graph, error) {
	if n < MinCycleNodes {
		return nil, builderErrorf("Cycle", core.ErrNegativeSize)
	}
	edges := make([][2]int, 0, n)
	for v := 0; v < n; v++ {
		edges = append(edges, [2]int{v, (v + 1) % n})
	}

	return core.NewGraph(n, edges)
}

// Star builds a star with center vertex 0 and n-1 leaves 1..n-1
// (n >= MinStarNodes).
// Complexity: O(n) vertices, O(n-1) edges.
func Star(n int) (*core.Graph, error) {
	if n < MinStarNodes {
		return nil, builderErrorf("Star", core.ErrNegativeSize)
	}
	edges := make([][2]int, 0, n-1)
	for v := 1; v < n; v++ {
		edges = append(edges, [2]int{0, v})
	}

	return core.NewGraph(n, edges)
}

// Wheel builds a wheel: center vertex 0 plus an (n-1)-cycle rim
// 1..n-1, with every rim vertex also joined to the center
// (n >= MinWheelNodes).
// Complexity: O(n) vertices, O(2(n-1)) edges.
func Wheel(n int) (*core.Graph, error) {
	if n < MinWheelNodes {
		return nil, builderErrorf("Wheel", core.ErrNegativeSize)
	}
	rim := n - 1
	edges := make([][2]int, 0, 2*rim)
	for i := 0; i < rim; i++ {
		v := 1 + i
		edges = append(edges, [2]int{0, v})
		next := 1 + (i+1)%rim
		edges = append(edges, [2]int{v, next})
	}

	return core.NewGraph(n, edges)
}

// Complete builds the complete graph K_n (n >= 1).
// Complexity: O(n) vertices, O(n^2) edges.
func Complete(n int) (*core.Graph, error) {
	if n < 1 {
		return nil, builderErrorf("Complete", core.ErrNegativeSize)
	}
	edges := make([][2]int, 0, n*(n-1)/2)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, [2]int{u, v})
		}
	}

	return core.NewGraph(n, edges)
}

// CompleteBipartite builds K_{n1,n2}: left part 0..n1-1, right part
// n1..n1+n2-1, every left-right pair joined (n1, n2 >= 1).
// Complexity: O(n1+n2) vertices, O(n1*n2) edges.
func CompleteBipartite(n1, n2 int) (*core.Graph, error) {
	if n1 < 1 || n2 < 1 {
		return nil, builderErrorf("CompleteBipartite", core.ErrNegativeSize)
	}
	edges := make([][2]int, 0, n1*n2)
	for u := 0; u < n1; u++ {
		for v := 0; v < n2; v++ {
			edges = append(edges, [2]int{u, n1 + v})
		}
	}

	return core.NewGraph(n1+n2, edges)
}

// Grid builds a rows x cols 4-neighborhood grid graph, vertex (r, c)
// numbered r*cols+c (rows, cols >= MinGridDim).
// Complexity: O(rows*cols) vertices, O(rows*cols) edges.
func Grid(rows, cols int) (*core.Graph, error) {
	if rows < MinGridDim || cols < MinGridDim {
		return nil, builderErrorf("Grid", core.ErrNegativeSize)
	}
	id := func(r, c int) int { return r*cols + c }
	var edges [][2]int
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				edges = append(edges, [2]int{id(r, c), id(r, c+1)})
			}
			if r+1 < rows {
				edges = append(edges, [2]int{id(r, c), id(r+1, c)})
			}
		}
	}

	return core.NewGraph(rows*cols, edges)
}

// Hexagram builds the Star-of-David graph: two disjoint triangles
// {0,2,4} and {1,3,5} with no edges crossing between them, positioned
// as alternating points of a hexagon. Decomposes to
// PARALLEL{SERIES(0,2,4), SERIES(1,3,5)}.
// Complexity: O(1) (fixed 6 vertices, 6 edges).
func Hexagram() (*core.Graph, error) {
	edges := [][2]int{
		{0, 2}, {2, 4}, {4, 0},
		{1, 3}, {3, 5}, {5, 1},
	}

	return core.NewGraph(6, edges)
}
