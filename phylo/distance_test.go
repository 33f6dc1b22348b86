// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylo_test

import (
	"fmt"
	"testing"

	"github.com/js-arias/phylotree/phylo"
	"github.com/js-arias/phylotree/tree"
	"gonum.org/v1/gonum/floats/scalar"
	"pgregory.net/rapid"
)

func TestDistanceMatrix(t *testing.T) {
	tr := mustParse(t, "((A:0.1,B:0.2):0.05,C:0.3);")

	m, err := phylo.DistanceMatrix(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := m.Len(); got != 3 {
		t.Fatalf("got %d leaves, want 3", got)
	}

	tests := []struct {
		a, b string
		want float64
	}{
		{"A", "A", 0},
		{"A", "B", 0.3},
		{"A", "C", 0.45},
		{"B", "C", 0.55},
	}
	for _, test := range tests {
		got, ok := m.Distance(test.a, test.b)
		if !ok {
			t.Errorf("distance %s-%s: names not found", test.a, test.b)
			continue
		}
		if !scalar.EqualWithinAbs(got, test.want, 1e-9) {
			t.Errorf("distance %s-%s: got %.6f, want %.6f", test.a, test.b, got, test.want)
		}
	}

	if _, ok := m.Distance("A", "X"); ok {
		t.Errorf("distance to an unknown leaf must fail")
	}
}

// A branch without an explicit length
// counts as a full unit.
func TestDistanceMatrixDefaultLength(t *testing.T) {
	tr := mustParse(t, "((A,B),C);")
	m, err := phylo.DistanceMatrix(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, _ := m.Distance("A", "B"); !scalar.EqualWithinAbs(got, 2*phylo.DefLength, 1e-9) {
		t.Errorf("distance A-B: got %.6f, want %.6f", got, 2*phylo.DefLength)
	}
	if got, _ := m.Distance("A", "C"); !scalar.EqualWithinAbs(got, 3*phylo.DefLength, 1e-9) {
		t.Errorf("distance A-C: got %.6f, want %.6f", got, 3*phylo.DefLength)
	}
}

// randPhylo builds a random tree
// with uniquely named leaves.
func randPhylo(rt *rapid.T) *tree.Node {
	next := 0

	var build func(depth int) *tree.Node
	build = func(depth int) *tree.Node {
		n := &tree.Node{}
		if depth >= 4 || (depth > 0 && rapid.Bool().Draw(rt, "leaf")) {
			n.Name = fmt.Sprintf("term%d", next)
			next++
			if rapid.Bool().Draw(rt, "has length") {
				l := rapid.Float64Range(0, 10).Draw(rt, "length")
				n.Length = &l
			}
			return n
		}
		nc := rapid.IntRange(2, 4).Draw(rt, "children")
		for i := 0; i < nc; i++ {
			n.Children = append(n.Children, build(depth+1))
		}
		if depth > 0 && rapid.Bool().Draw(rt, "has length") {
			l := rapid.Float64Range(0, 10).Draw(rt, "length")
			n.Length = &l
		}
		return n
	}

	root := build(0)
	root.Renumber()
	return root
}

func TestDistanceMatrixProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tr := randPhylo(rt)
		m, err := phylo.DistanceMatrix(tr)
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}

		n := m.Len()
		for i := 0; i < n; i++ {
			if d := m.At(i, i); d != 0 {
				rt.Fatalf("diagonal %d: got %.6f, want 0", i, d)
			}
			for j := i + 1; j < n; j++ {
				if m.At(i, j) != m.At(j, i) {
					rt.Fatalf("matrix is not symmetric at (%d, %d)", i, j)
				}
				if m.At(i, j) < 0 {
					rt.Fatalf("negative distance at (%d, %d): %.6f", i, j, m.At(i, j))
				}
			}
		}
	})
}
