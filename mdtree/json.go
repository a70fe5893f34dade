// File: json.go
package mdtree

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/katalvlaran/lvlath/forest"
	"github.com/katalvlaran/lvlath/matrix"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// wireNode is the JSON-serializable mirror of Node. Quotient is present
// only for PRIME nodes and records HasEdge(i, j) for every child pair, so
// that a round-tripped Tree can still Reconstruct its original graph.
type wireNode struct {
	Leaf     bool       `json:"leaf"`
	Vertex   int        `json:"vertex,omitempty"`
	Label    string     `json:"label,omitempty"`
	Children []wireNode `json:"children,omitempty"`
	Quotient [][]bool   `json:"quotient,omitempty"`
}

// MarshalJSON renders the tree as nested wireNode objects, or JSON null
// for an empty tree.
func (t *Tree) MarshalJSON() ([]byte, error) {
	if t.Empty() {
		return jsonAPI.Marshal(nil)
	}

	return jsonAPI.Marshal(toWire(t.Root()))
}

func toWire(n Node) wireNode {
	if n.IsLeaf() {
		return wireNode{Leaf: true, Vertex: n.Vertex()}
	}

	children := n.Children()
	wc := make([]wireNode, len(children))
	for i, c := range children {
		wc[i] = toWire(c)
	}

	wn := wireNode{Label: n.Label().String(), Children: wc}
	if n.Label() == forest.Prime {
		wn.Quotient = make([][]bool, len(children))
		for i := range children {
			wn.Quotient[i] = make([]bool, len(children))
			for j := range children {
				if i == j {
					continue
				}
				joined, _ := n.quotientEdge(i, j)
				wn.Quotient[i][j] = joined
			}
		}
	}

	return wn
}

// UnmarshalJSON rebuilds a standalone Tree (its own forest arena) from the
// wire format, including PRIME quotient matrices, so Reconstruct works on
// a round-tripped tree without access to the original graph.
func (t *Tree) UnmarshalJSON(data []byte) error {
	var wn *wireNode
	if err := jsonAPI.Unmarshal(data, &wn); err != nil {
		return err
	}

	f := forest.New(0)
	quotient := make(map[forest.NodeID]*matrix.AdjacencyMatrix)
	if wn == nil {
		t.f, t.root, t.quotient = f, forest.NoNode, quotient

		return nil
	}

	root, err := fromWire(f, quotient, wn)
	if err != nil {
		return err
	}
	t.f, t.root, t.quotient = f, root, quotient

	return nil
}

func fromWire(f *forest.Forest, quotient map[forest.NodeID]*matrix.AdjacencyMatrix, wn *wireNode) (forest.NodeID, error) {
	if wn.Leaf {
		return f.NewLeaf(wn.Vertex), nil
	}

	lbl, err := parseLabel(wn.Label)
	if err != nil {
		return forest.NoNode, err
	}
	id := f.NewInternal(lbl)
	for i := range wn.Children {
		cid, err := fromWire(f, quotient, &wn.Children[i])
		if err != nil {
			return forest.NoNode, err
		}
		f.AppendChild(id, cid)
	}

	if lbl == forest.Prime {
		am, err := matrix.NewAdjacencyMatrix(len(wn.Quotient))
		if err != nil {
			return forest.NoNode, err
		}
		for i, row := range wn.Quotient {
			for j, v := range row {
				if i == j {
					continue
				}
				if err := am.SetEdge(i, j, v); err != nil {
					return forest.NoNode, err
				}
			}
		}
		quotient[id] = am
	}

	return id, nil
}

func parseLabel(s string) (forest.Label, error) {
	switch s {
	case "SERIES":
		return forest.Series, nil
	case "PARALLEL":
		return forest.Parallel, nil
	case "PRIME":
		return forest.Prime, nil
	default:
		return forest.Unknown, fmt.Errorf("mdtree: unrecognized label %q", s)
	}
}
