// File: tree.go
package mdtree

import (
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/forest"
	"github.com/katalvlaran/lvlath/matrix"
	"github.com/katalvlaran/lvlath/mderr"
)

// Tree is the read-only modular decomposition output. The zero value is
// only usable as the target of UnmarshalJSON; otherwise build one with
// Build.
type Tree struct {
	f        *forest.Forest
	root     forest.NodeID
	quotient map[forest.NodeID]*matrix.AdjacencyMatrix
}

// Node is a handle to a single node of a Tree.
type Node struct {
	tree *Tree
	id   forest.NodeID
}

// Build finalizes a decomposed forest into a Tree, computing quotient
// matrices for every PRIME node reachable from root. g is used only during
// construction, to sample representative adjacency per child pair.
func Build(f *forest.Forest, g *core.Graph, root forest.NodeID) (*Tree, error) {
	t := &Tree{f: f, root: root, quotient: make(map[forest.NodeID]*matrix.AdjacencyMatrix)}
	if root == forest.NoNode {
		return t, nil
	}
	if err := t.buildQuotients(g, root); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Tree) buildQuotients(g *core.Graph, id forest.NodeID) error {
	if t.f.IsLeaf(id) {
		return nil
	}
	children := t.f.Children(id)
	for _, c := range children {
		if err := t.buildQuotients(g, c); err != nil {
			return err
		}
	}
	if t.f.Label(id) != forest.Prime {
		return nil
	}

	reps := make([]int, len(children))
	for i, c := range children {
		reps[i] = representative(t.f, c)
	}
	am, err := matrix.NewAdjacencyMatrix(len(reps))
	if err != nil {
		return err
	}
	for i := range reps {
		for j := i + 1; j < len(reps); j++ {
			if err := am.SetEdge(i, j, g.HasEdge(reps[i], reps[j])); err != nil {
				return err
			}
		}
	}
	t.quotient[id] = am

	return nil
}

func representative(f *forest.Forest, id forest.NodeID) int {
	for !f.IsLeaf(id) {
		id = f.FirstChild(id)
	}

	return f.Vertex(id)
}

// Empty reports whether the tree has no nodes at all (input graph had
// n=0 vertices).
func (t *Tree) Empty() bool {
	return t.root == forest.NoNode
}

// Root returns the tree's root node. Calling it on an empty tree is a
// programmer error.
func (t *Tree) Root() Node {
	return Node{tree: t, id: t.root}
}

// IsLeaf reports whether n is a leaf.
func (n Node) IsLeaf() bool {
	return n.tree.f.IsLeaf(n.id)
}

// Vertex returns the vertex a leaf represents. Calling it on an internal
// node returns -1.
func (n Node) Vertex() int {
	return n.tree.f.Vertex(n.id)
}

// Label returns an internal node's final label. Calling it on a leaf
// returns forest.Unknown.
func (n Node) Label() forest.Label {
	return n.tree.f.Label(n.id)
}

// Children returns n's children in canonical order. Leaves return nil.
func (n Node) Children() []Node {
	if n.IsLeaf() {
		return nil
	}
	ids := n.tree.f.Children(n.id)
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = Node{tree: n.tree, id: id}
	}

	return out
}

// quotientEdge reports the recorded quotient adjacency between two
// children of a PRIME node, by their position in Children(). It returns
// mderr.ErrInternalInvariant if n is not a PRIME node with a recorded
// quotient (a bug in construction, never a caller error given Children()
// indices in range).
func (n Node) quotientEdge(i, j int) (bool, error) {
	am, ok := n.tree.quotient[n.id]
	if !ok {
		return false, mderr.Invariant("mdtree.Node.quotientEdge", int(n.id), "no quotient matrix recorded for this node")
	}

	return am.HasEdge(i, j)
}
