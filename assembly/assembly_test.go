// File: assembly_test.go
package assembly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/assembly"
	"github.com/katalvlaran/lvlath/forest"
)

func TestAssemble_UntaggedRootsNestRatherThanFlatten(t *testing.T) {
	f := forest.New(3)
	pivot := f.NewLeaf(0)
	left := f.NewLeaf(1)
	right := f.NewLeaf(2)

	root := assembly.Assemble(f, pivot, []forest.NodeID{left}, []forest.NodeID{right})

	// A single root per side, neither tagged, must nest one at a time: the
	// returned root has exactly 2 children, one of which is itself an
	// internal Unknown node wrapping the pivot and the other leaf.
	require.False(t, f.IsLeaf(root))
	require.Equal(t, 2, f.NumChildren(root))

	var sawNestedInternal bool
	for _, c := range f.Children(root) {
		if !f.IsLeaf(c) {
			sawNestedInternal = true
			require.Equal(t, 2, f.NumChildren(c))
		}
	}
	require.True(t, sawNestedInternal, "expected one child to be a nested wrapper, not a flat 3-way node")
}

func TestAssemble_TaggedRootsConcatenateFlat(t *testing.T) {
	f := forest.New(3)
	pivot := f.NewLeaf(0)
	left := f.NewLeaf(1)
	right := f.NewLeaf(2)
	f.SetSplit(right, forest.LeftSplit)

	root := assembly.Assemble(f, pivot, []forest.NodeID{left}, []forest.NodeID{right})

	require.False(t, f.IsLeaf(root))
	require.Equal(t, 3, f.NumChildren(root))
	for _, c := range f.Children(root) {
		require.True(t, f.IsLeaf(c), "a tagged side must concatenate flat, not nest")
	}
}

func TestAssemble_OneSideEmptyConcatenatesTheOther(t *testing.T) {
	f := forest.New(2)
	pivot := f.NewLeaf(0)
	right := f.NewLeaf(1)

	root := assembly.Assemble(f, pivot, nil, []forest.NodeID{right})

	require.False(t, f.IsLeaf(root))
	require.Equal(t, 2, f.NumChildren(root))
	for _, c := range f.Children(root) {
		require.True(t, f.IsLeaf(c))
	}
}
