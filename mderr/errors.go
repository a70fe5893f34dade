// SPDX-License-Identifier: MIT
// Package mderr defines the error kinds exposed by the modular-decomposition
// core and the conventions for wrapping them.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed for branching.
//   - Callers MUST use errors.Is(err, ErrX) (or errors.As for *InvariantError)
//     to branch on semantics; messages are not part of the contract.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites attach context with %w (see Wrapf).
//
// Kinds (spec):
//
//	ErrInvalidGraph       - a precondition on the input graph was violated
//	                        (self-loop, out-of-range endpoint, negative n).
//	ErrInternalInvariant  - a core invariant (I1-I4) was detected violated
//	                        during the algorithm; this is always a bug in
//	                        the core, never a caller error.
//	ErrOutOfMemory        - propagated from the allocator, if the host
//	                        platform surfaces it.
package mderr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGraph indicates a precondition violation on graph construction:
	// a self-loop, an out-of-range endpoint, or a negative vertex count.
	ErrInvalidGraph = errors.New("mderr: invalid graph")

	// ErrInternalInvariant indicates a core invariant (I1-I4) was violated
	// during decomposition. This always indicates a bug in the algorithm,
	// never a caller error; it is never returned for valid input.
	ErrInternalInvariant = errors.New("mderr: internal invariant violated")

	// ErrOutOfMemory is surfaced when the host platform reports allocation
	// failure while growing the working forest.
	ErrOutOfMemory = errors.New("mderr: out of memory")
)

// InvariantError carries the reproduction context spec.md §7 asks for:
// the phase that detected the violation and the offending node id.
// It wraps ErrInternalInvariant so errors.Is(err, ErrInternalInvariant)
// still succeeds.
type InvariantError struct {
	Phase  string // e.g. "refine", "assembly", "label"
	NodeID int    // arena index of the offending node, or -1 if not node-specific
	Detail string // short human-readable description of the violated invariant
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	if e.NodeID < 0 {
		return fmt.Sprintf("mderr: internal invariant violated in %s: %s", e.Phase, e.Detail)
	}

	return fmt.Sprintf("mderr: internal invariant violated in %s at node %d: %s", e.Phase, e.NodeID, e.Detail)
}

// Unwrap lets errors.Is(err, ErrInternalInvariant) succeed for InvariantError values.
func (e *InvariantError) Unwrap() error {
	return ErrInternalInvariant
}

// Invariant constructs an *InvariantError for the given phase/node/detail.
// Use nodeID = -1 when the violation is not attributable to a single node.
func Invariant(phase string, nodeID int, detail string) error {
	return &InvariantError{Phase: phase, NodeID: nodeID, Detail: detail}
}

// Wrapf wraps err with a method-name prefix, preserving errors.Is/As for the
// sentinel chain. Mirrors the teacher's builder.builderErrorf convention:
// sentinels are never stringified with baked-in parameters; call sites add
// context via %w instead.
func Wrapf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
