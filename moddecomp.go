// File: moddecomp.go
package moddecomp

import (
	"errors"
	"time"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/forest"
	"github.com/katalvlaran/lvlath/internal/metrics"
	"github.com/katalvlaran/lvlath/mderr"
	"github.com/katalvlaran/lvlath/mdtree"
	"github.com/katalvlaran/lvlath/pivot"
)

// Decompose computes the modular decomposition tree of g: decompose(G) ->
// MDTree. The empty graph (g.N() == 0) decomposes to an empty Tree.
//
// Every call is recorded via internal/metrics: call count, a histogram of
// g.N() and wall-clock duration, and a counter of InternalInvariant
// violations (which should never fire against valid input; its only
// purpose is to surface a regression immediately).
func Decompose(g *core.Graph) (*mdtree.Tree, error) {
	start := time.Now()

	s := make([]int, g.N())
	for v := range s {
		s[v] = v
	}

	f := forest.New(g.N())
	root, err := pivot.DecomposeRec(f, g, s)

	var invErr *mderr.InvariantError
	metrics.ObserveDecompose(g.N(), time.Since(start), errors.As(err, &invErr))

	if err != nil {
		return nil, err
	}

	return mdtree.Build(f, g, root)
}
