// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylo_test

import (
	"math"
	"testing"

	"github.com/js-arias/phylotree/phylo"
)

func TestMonophyly(t *testing.T) {
	tr := mustParse(t, "((A,B),(C,D));")

	tests := map[string]struct {
		names []string
		mono  bool
	}{
		"clade":       {names: []string{"A", "B"}, mono: true},
		"whole tree":  {names: []string{"A", "B", "C", "D"}, mono: true},
		"single leaf": {names: []string{"C"}, mono: true},
		"split pair":  {names: []string{"A", "C"}, mono: false},
		"three terms": {names: []string{"A", "B", "C"}, mono: false},
	}

	for name, test := range tests {
		mono, node := phylo.Monophyly(tr, test.names)
		if mono != test.mono {
			t.Errorf("%s: got %v, want %v", name, mono, test.mono)
		}
		if mono && node == nil {
			t.Errorf("%s: monophyletic group without a clade node", name)
		}
		if !mono && node != nil {
			t.Errorf("%s: non-monophyletic group with a clade node", name)
		}
	}

	if mono, _ := phylo.Monophyly(tr, []string{"A", "X"}); mono {
		t.Errorf("unknown terminal: group should not be monophyletic")
	}
}

func TestMonophylyClade(t *testing.T) {
	tr := mustParse(t, "((A,B),(C,D));")
	mono, node := phylo.Monophyly(tr, []string{"C", "D"})
	if !mono {
		t.Fatalf("{C, D} should be monophyletic")
	}

	terms := make(map[string]bool)
	for _, l := range node.Terms() {
		terms[l.Name] = true
	}
	if len(terms) != 2 || !terms["C"] || !terms["D"] {
		t.Errorf("got clade terminals %v, want C and D", terms)
	}
}

func TestBalanceIndex(t *testing.T) {
	tests := map[string]struct {
		newick string
		want   float64
	}{
		"caterpillar": {newick: "(((A,B),C),D);", want: 1.0 / 3},
		"balanced":    {newick: "((A,B),(C,D));", want: 1},
		"star":        {newick: "(A,B,C,D);", want: 1},
		"two leaves":  {newick: "(A,B);", want: 1},
	}

	for name, test := range tests {
		tr := mustParse(t, test.newick)
		got := phylo.BalanceIndex(tr)
		if math.Abs(got-test.want) > 1e-9 {
			t.Errorf("%s: got balance %.6f, want %.6f", name, got, test.want)
		}
		if got < 0 || got > 1 {
			t.Errorf("%s: balance %.6f out of [0, 1]", name, got)
		}
	}
}
