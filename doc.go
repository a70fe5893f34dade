// Package moddecomp computes the modular decomposition tree (MD-tree) of
// a finite simple undirected graph.
//
// A module is a vertex set M where every vertex outside M is either
// adjacent to all of M or none of it. The MD-tree is the unique rooted
// tree of strong (non-overlapping) modules: leaves are single vertices,
// and every internal node is labeled SERIES (all children pairwise
// joined), PARALLEL (no children joined), or PRIME (neither — the exact
// adjacency between children is retained alongside the label).
//
// Decompose runs in linear time (Tedder-Corneil-Habib-Paul): pick a
// pivot vertex, recurse on its neighbors and non-neighbors, refine the
// two recursive results against the cross edges the pivot sees, and
// assemble them back around the pivot.
//
//	go get github.com/katalvlaran/lvlath
//
// Subpackages:
//
//	core/       — immutable vertex/adjacency graph type
//	forest/     — arena-backed tree used as the algorithm's working state
//	pivot/      — the recursive pivot/partition driver
//	refine/     — cross-edge marking, splitting, and promotion
//	assembly/   — reassembly of refined sides around the pivot
//	label/      — SERIES/PARALLEL/PRIME labeling and cleanup
//	mdtree/     — the read-only output tree, reconstruction, and JSON I/O
//	matrix/     — boolean quotient-adjacency bookkeeping for PRIME nodes
//	dot/        — a DOT subset reader/writer for graph I/O
//	builder/    — deterministic graph fixtures (paths, cycles, complete, ...)
//	mderr/      — structured error kinds
//	internal/metrics/  — Decompose call instrumentation
//	internal/modcheck/ — brute-force module property checking (test-only)
//	cmd/mdtree/ — CLI: read a DOT file, decompose it, print the tree
package moddecomp
