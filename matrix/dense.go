// File: dense.go
// Package matrix provides core boolean-matrix primitives for array-based
// computations. Dense is a concrete row-major implementation, storing
// elements in a flat slice for performance and cache friendliness.
package matrix

import "fmt"

func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major square matrix of booleans.
type Dense struct {
	n    int    // number of rows == number of columns
	data []bool // flat backing storage, length == n*n
}

// NewDense creates an n×n Dense matrix initialized to false.
// Complexity: O(n^2) time and memory.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{n: n, data: make([]bool, n*n)}, nil
}

// N returns the matrix's dimension.
func (m *Dense) N() int {
	return m.n
}

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	return row*m.n + col, nil
}

// At returns the value at (row, col).
func (m *Dense) At(row, col int) (bool, error) {
	i, err := m.indexOf(row, col)
	if err != nil {
		return false, denseErrorf("At", row, col, err)
	}

	return m.data[i], nil
}

// Set assigns the value at (row, col).
func (m *Dense) Set(row, col int, v bool) error {
	i, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	m.data[i] = v

	return nil
}
