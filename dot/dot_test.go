// File: dot_test.go
package dot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/dot"
)

func TestRead_EdgeChainExpandsPairwise(t *testing.T) {
	g, ids, err := dot.Read(`graph { a--b--c; }`)
	require.NoError(t, err)
	require.Equal(t, 3, g.N())
	require.Equal(t, []string{"a", "b", "c"}, ids)
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 2))
	require.False(t, g.HasEdge(0, 2))
}

func TestRead_IgnoresCommentsAttributesSubgraphsAndNodeOnly(t *testing.T) {
	src := `
	graph G {
		// a comment
		/* block
		   comment */
		a--b [label="x"];
		c; // node-only statement, ignored
		subgraph { x--y; }
	}`
	g, ids, err := dot.Read(src)
	require.NoError(t, err)
	require.Equal(t, 2, g.N())
	require.Equal(t, []string{"a", "b"}, ids)
	require.True(t, g.HasEdge(0, 1))
}

func TestWrite_RendersNamedEdges(t *testing.T) {
	g, ids, err := dot.Read(`graph { a--b; b--c; }`)
	require.NoError(t, err)

	out, err := dot.Write(g, ids)
	require.NoError(t, err)
	require.Contains(t, out, "a--b;")
	require.Contains(t, out, "b--c;")
}

func TestWrite_DefaultsToDecimalIdsWhenNilGiven(t *testing.T) {
	g, _, err := dot.Read(`graph { a--b; }`)
	require.NoError(t, err)

	out, err := dot.Write(g, nil)
	require.NoError(t, err)
	require.Contains(t, out, "0--1;")
}

func TestWrite_RejectsMismatchedIdsLength(t *testing.T) {
	g, _, err := dot.Read(`graph { a--b; }`)
	require.NoError(t, err)

	_, err = dot.Write(g, []string{"only-one"})
	require.Error(t, err)
}
