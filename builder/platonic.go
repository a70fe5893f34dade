// File: platonic.go
package builder

import "github.com/katalvlaran/lvlath/core"

// PlatonicName selects which Platonic solid's skeleton graph to build.
type PlatonicName int

const (
	Tetrahedron PlatonicName = iota
	Cube
	Octahedron
)

// PlatonicSolid builds the 1-skeleton (vertices and edges) of the named
// Platonic solid.
// Complexity: O(V+E) for the chosen solid, both fixed small constants.
func PlatonicSolid(name PlatonicName) (*core.Graph, error) {
	switch name {
	case Tetrahedron:
		return Complete(4) // K4 is exactly the tetrahedron's skeleton
	case Cube:
		return cubeGraph()
	case Octahedron:
		return octahedronGraph()
	default:
		return nil, builderErrorf("PlatonicSolid", core.ErrOutOfRange)
	}
}

// cubeGraph numbers the cube's 8 vertices by their 3-bit coordinates
// (bit0=x, bit1=y, bit2=z); an edge joins vertices differing in exactly
// one bit.
func cubeGraph() (*core.Graph, error) {
	var edges [][2]int
	for v := 0; v < 8; v++ {
		for bit := 0; bit < 3; bit++ {
			u := v ^ (1 << uint(bit))
			if u > v {
				edges = append(edges, [2]int{v, u})
			}
		}
	}

	return core.NewGraph(8, edges)
}

// octahedronGraph numbers the octahedron's 6 vertices as 3 opposite
// pairs (0,1), (2,3), (4,5); every vertex is joined to every vertex
// except its own antipode.
func octahedronGraph() (*core.Graph, error) {
	antipode := func(v int) int { return v ^ 1 }
	var edges [][2]int
	for u := 0; u < 6; u++ {
		for v := u + 1; v < 6; v++ {
			if v != antipode(u) {
				edges = append(edges, [2]int{u, v})
			}
		}
	}

	return core.NewGraph(6, edges)
}
