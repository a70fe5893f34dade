// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
package matrix

import "errors"

var (
	// ErrBadShape is returned when requested shape is invalid (e.g., n<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
