// File: topology_test.go
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/builder"
)

func TestPath_EdgeCount(t *testing.T) {
	g, err := builder.Path(5)
	require.NoError(t, err)
	require.Equal(t, 5, g.N())
	require.Equal(t, 4, g.EdgeCount())
}

func TestCycle_RejectsTooFewNodes(t *testing.T) {
	_, err := builder.Cycle(2)
	require.Error(t, err)
}

func TestComplete_EdgeCountMatchesFormula(t *testing.T) {
	g, err := builder.Complete(5)
	require.NoError(t, err)
	require.Equal(t, 10, g.EdgeCount())
}

func TestCompleteBipartite_EveryCrossPairJoined(t *testing.T) {
	g, err := builder.CompleteBipartite(2, 3)
	require.NoError(t, err)
	require.Equal(t, 5, g.N())
	require.Equal(t, 6, g.EdgeCount())
	require.False(t, g.HasEdge(0, 1)) // same side, never joined
}

func TestGrid_CornerHasDegreeTwo(t *testing.T) {
	g, err := builder.Grid(3, 3)
	require.NoError(t, err)
	require.Equal(t, 9, g.N())
	require.Equal(t, 2, g.Degree(0))
}

func TestHexagram_TwoDisjointTriangles(t *testing.T) {
	g, err := builder.Hexagram()
	require.NoError(t, err)
	require.True(t, g.HasEdge(0, 2))
	require.False(t, g.HasEdge(0, 1))
}

func TestPlatonicSolid_TetrahedronIsK4(t *testing.T) {
	g, err := builder.PlatonicSolid(builder.Tetrahedron)
	require.NoError(t, err)
	require.Equal(t, 4, g.N())
	require.Equal(t, 6, g.EdgeCount())
}

func TestPlatonicSolid_CubeIsThreeRegular(t *testing.T) {
	g, err := builder.PlatonicSolid(builder.Cube)
	require.NoError(t, err)
	for v := 0; v < g.N(); v++ {
		require.Equal(t, 3, g.Degree(v))
	}
}
