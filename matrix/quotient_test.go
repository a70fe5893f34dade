// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlath/matrix"
)

func TestAdjacencyMatrix_SetAndGet(t *testing.T) {
	am, err := matrix.NewAdjacencyMatrix(3)
	if err != nil {
		t.Fatalf("NewAdjacencyMatrix: %v", err)
	}
	if err := am.SetEdge(0, 2, true); err != nil {
		t.Fatalf("SetEdge: %v", err)
	}
	got, err := am.HasEdge(2, 0)
	if err != nil {
		t.Fatalf("HasEdge: %v", err)
	}
	if !got {
		t.Fatalf("HasEdge(2,0) = false, want true (symmetric with SetEdge(0,2,true))")
	}
	got, err = am.HasEdge(0, 1)
	if err != nil {
		t.Fatalf("HasEdge: %v", err)
	}
	if got {
		t.Fatalf("HasEdge(0,1) = true, want false (never set)")
	}
}

func TestNewDense_RejectsNonPositive(t *testing.T) {
	if _, err := matrix.NewDense(0); err == nil {
		t.Fatalf("NewDense(0) succeeded, want ErrBadShape")
	}
}
