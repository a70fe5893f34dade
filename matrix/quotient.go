// File: quotient.go
package matrix

// AdjacencyMatrix records the quotient adjacency between a PRIME node's
// children: entry (i, j) is true iff the i-th and j-th children (in the
// node's child order) are fully joined in the original graph. Off-diagonal
// entries are symmetric by construction (module theory guarantees the
// relation between any two sibling modules is uniform); the diagonal is
// unused.
type AdjacencyMatrix struct {
	dense *Dense
}

// NewAdjacencyMatrix allocates a k×k quotient matrix for a PRIME node with
// k children.
func NewAdjacencyMatrix(k int) (*AdjacencyMatrix, error) {
	d, err := NewDense(k)
	if err != nil {
		return nil, err
	}

	return &AdjacencyMatrix{dense: d}, nil
}

// SetEdge records whether children i and j are joined, in both directions.
func (am *AdjacencyMatrix) SetEdge(i, j int, joined bool) error {
	if err := am.dense.Set(i, j, joined); err != nil {
		return err
	}

	return am.dense.Set(j, i, joined)
}

// HasEdge reports whether children i and j are joined.
func (am *AdjacencyMatrix) HasEdge(i, j int) (bool, error) {
	return am.dense.At(i, j)
}

// N returns the number of children this quotient matrix covers.
func (am *AdjacencyMatrix) N() int {
	return am.dense.N()
}
