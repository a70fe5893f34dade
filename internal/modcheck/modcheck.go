// File: modcheck.go
package modcheck

import (
	"sort"
	"strconv"
	"strings"

	"github.com/spakin/disjoint"

	"github.com/katalvlaran/lvlath/core"
)

// IsModule reports whether verts is a module of g: every vertex outside
// verts is adjacent to either all of verts or none of it.
func IsModule(g *core.Graph, verts []int) bool {
	in := make(map[int]bool, len(verts))
	for _, v := range verts {
		in[v] = true
	}

	for outside := 0; outside < g.N(); outside++ {
		if in[outside] {
			continue
		}
		adjToFirst := -1
		for _, v := range verts {
			want := 0
			if g.HasEdge(outside, v) {
				want = 1
			}
			if adjToFirst == -1 {
				adjToFirst = want
			} else if adjToFirst != want {
				return false
			}
		}
	}

	return true
}

// AllModules brute-force enumerates every non-empty vertex subset of g
// that is a module, via 2^n subset enumeration. Intended only for the
// small fixtures spec.md §8's property tests use.
func AllModules(g *core.Graph) [][]int {
	n := g.N()
	var out [][]int
	for mask := 1; mask < (1 << uint(n)); mask++ {
		var verts []int
		for v := 0; v < n; v++ {
			if mask&(1<<uint(v)) != 0 {
				verts = append(verts, v)
			}
		}
		if IsModule(g, verts) {
			out = append(out, verts)
		}
	}

	return out
}

// overlaps reports whether a and b cross: they share at least one vertex
// but neither is a subset of the other.
func overlaps(a, b []int) bool {
	bSet := make(map[int]bool, len(b))
	for _, v := range b {
		bSet[v] = true
	}
	shared, aInB := 0, true
	for _, v := range a {
		if bSet[v] {
			shared++
		} else {
			aInB = false
		}
	}
	if shared == 0 {
		return false
	}
	if aInB {
		return false // a subset of b
	}

	aSet := make(map[int]bool, len(a))
	for _, v := range a {
		aSet[v] = true
	}
	bInA := true
	for _, v := range b {
		if !aSet[v] {
			bInA = false
			break
		}
	}

	return !bInA
}

// StrongModules filters AllModules(g) down to the laminar family of
// modules that never cross any other module (spec.md's "strong module").
// Crossing candidates are merged into disjoint-set equivalence classes
// via spakin/disjoint; those classes are not returned, and crossing
// modules are simply left out of the result.
func StrongModules(g *core.Graph) [][]int {
	all := AllModules(g)
	elems := make([]*disjoint.Element, len(all))
	for i := range elems {
		elems[i] = disjoint.NewElement()
	}

	crosses := make([]bool, len(all))
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			if overlaps(all[i], all[j]) {
				disjoint.Union(elems[i], elems[j])
				crosses[i] = true
				crosses[j] = true
			}
		}
	}

	var strong [][]int
	for i, m := range all {
		if !crosses[i] {
			strong = append(strong, m)
		}
	}

	return strong
}

// MatchesLeafSets reports whether sets and vertexSets name exactly the
// same family of vertex sets, independent of internal ordering (property
// P2: every strong module appears as some node's leaf set, and vice
// versa).
func MatchesLeafSets(sets, vertexSets [][]int) bool {
	a, b := normalize(sets), normalize(vertexSets)
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}

	return true
}

func normalize(in [][]int) map[string]bool {
	out := make(map[string]bool, len(in))
	for _, s := range in {
		cp := append([]int(nil), s...)
		sort.Ints(cp)
		out[key(cp)] = true
	}

	return out
}

func key(sorted []int) string {
	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}
