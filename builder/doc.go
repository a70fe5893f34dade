// Package builder provides deterministic graph fixtures for tests and
// property checks: named topologies (paths, cycles, stars, wheels,
// complete and complete-bipartite graphs, grids, Platonic solids, the
// hexagram) built directly against core.Graph's integer vertex set.
//
// Adapted from the teacher's builder package: since core.Graph is now
// immutable, simple, and undirected only (no directed/weighted/loops/
// multigraph modes, no pluggable vertex-ID scheme), each constructor
// here simply computes a vertex count and edge list and calls
// core.NewGraph directly, rather than mutating a graph through a
// functional-options/Constructor pipeline. Stochastic generators
// (RandomSparse, RandomRegular) and the signal/sequence generators
// (Pulse, Chirp, OHLC, Letters/Word) are dropped — see DESIGN.md.
package builder
