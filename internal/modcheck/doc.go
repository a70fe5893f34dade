// Package modcheck is a brute-force oracle for the module properties
// spec.md §8 asks for (P1, P2), used only from _test.go files against
// small fixtures. It never constrains how the algorithm itself computes
// modules — it independently re-derives the answer by enumeration, so a
// test comparing the two catches a real divergence rather than a
// tautology.
package modcheck
