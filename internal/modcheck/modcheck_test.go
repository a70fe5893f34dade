// File: modcheck_test.go
package modcheck_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/internal/modcheck"
)

func TestIsModule_SingletonAlwaysAModule(t *testing.T) {
	g, err := core.NewGraph(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	require.True(t, modcheck.IsModule(g, []int{2}))
}

func TestIsModule_P4_MiddlePairIsNotAModule(t *testing.T) {
	g, err := core.NewGraph(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	// {1,2}: vertex 0 is adjacent to 1 but not 2 -> not a module.
	require.False(t, modcheck.IsModule(g, []int{1, 2}))
}

func TestStrongModules_K3_IncludesWholeSet(t *testing.T) {
	g, err := core.NewGraph(3, [][2]int{{0, 1}, {0, 2}, {1, 2}})
	require.NoError(t, err)

	strong := modcheck.StrongModules(g)
	require.True(t, modcheck.MatchesLeafSets(strong, [][]int{{0}, {1}, {2}, {0, 1, 2}}))
}

func TestMatchesLeafSets_OrderIndependent(t *testing.T) {
	a := [][]int{{2, 1}, {0}}
	b := [][]int{{0}, {1, 2}}
	require.True(t, modcheck.MatchesLeafSets(a, b))
}
