// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick_test

import (
	"errors"
	"testing"

	"github.com/js-arias/phylotree/newick"
	"github.com/js-arias/phylotree/tree"
)

func fp(v float64) *float64 { return &v }

func TestParse(t *testing.T) {
	in := "((A:0.1,B:0.2):0.05,C:0.3);"
	tr, err := newick.Parse(in)
	if err != nil {
		t.Fatalf("parse %q: unexpected error: %v", in, err)
	}

	if got := len(tr.Terms()); got != 3 {
		t.Errorf("parse %q: got %d terminals, want %d", in, got, 3)
	}
	if got := tr.Len(); got != 5 {
		t.Errorf("parse %q: got %d nodes, want %d", in, got, 5)
	}
	if got := tr.TermNames(); len(got) != 3 || got[0] != "A" || got[1] != "B" || got[2] != "C" {
		t.Errorf("parse %q: got terminals %v", in, got)
	}

	a := tr.Term("A")
	if a == nil {
		t.Fatalf("parse %q: terminal A not found", in)
	}
	if a.Length == nil || *a.Length != 0.1 {
		t.Errorf("parse %q: terminal A: got length %v, want 0.1", in, a.Length)
	}

	// the root has no branch length:
	// unspecified, not zero
	if tr.Length != nil {
		t.Errorf("parse %q: root: got length %v, want unspecified", in, *tr.Length)
	}

	// IDs are assigned in pre-order
	want := []int{0, 1, 2, 3, 4}
	var got []int
	tr.Walk(func(n *tree.Node) { got = append(got, n.ID) })
	for i, id := range got {
		if id != want[i] {
			t.Errorf("parse %q: node IDs %v, want %v", in, got, want)
			break
		}
	}
}

func TestParseSupport(t *testing.T) {
	tests := map[string]struct {
		in      string
		support newick.Convention
		name    string
		val     *float64
	}{
		"auto, label position":  {"((A,B)95,C);", newick.SupportAuto, "", fp(95)},
		"auto, after length":    {"((A,B):0.1:95,C);", newick.SupportAuto, "", fp(95)},
		"auto, name and length": {"((A,B)homo:0.1:95,C);", newick.SupportAuto, "homo", fp(95)},
		"as label":              {"((A,B)95,C);", newick.SupportAsLabel, "95", nil},
		"after length":          {"((A,B)95:0.1:0.87,C);", newick.SupportAfterLength, "95", fp(0.87)},
		"quoted is a name":      {"((A,B)'95',C);", newick.SupportAuto, "95", nil},
	}

	for name, test := range tests {
		r := newick.Reader{Support: test.support}
		tr, err := r.Parse(test.in)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		n := tr.Children[0]
		if n.Name != test.name {
			t.Errorf("%s: got name %q, want %q", name, n.Name, test.name)
		}
		switch {
		case test.val == nil:
			if n.Support != nil {
				t.Errorf("%s: got support %v, want none", name, *n.Support)
			}
		case n.Support == nil:
			t.Errorf("%s: got no support, want %v", name, *test.val)
		case *n.Support != *test.val:
			t.Errorf("%s: got support %v, want %v", name, *n.Support, *test.val)
		}
	}
}

func TestParsePolytomy(t *testing.T) {
	tr, err := newick.Parse("(A,B,C,D,E)root;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(tr.Children); got != 5 {
		t.Errorf("got %d children, want 5", got)
	}
	if tr.Name != "root" {
		t.Errorf("got root name %q, want %q", tr.Name, "root")
	}
}

func TestParseQuoted(t *testing.T) {
	tr, err := newick.Parse("('Homo sapiens':6.5,'don''t (sic)':6.5);")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	terms := tr.TermNames()
	want := []string{"Homo sapiens", "don't (sic)"}
	for i, nm := range want {
		if terms[i] != nm {
			t.Errorf("got terminals %v, want %v", terms, want)
			break
		}
	}
}

func TestParseError(t *testing.T) {
	tests := map[string]struct {
		in     string
		offset int
	}{
		"unterminated":     {"(A,B", 4},
		"empty subtree":    {"();", 1},
		"unbalanced":       {"((A,B);", 6},
		"bad length":       {"(A:abc,B);", 3},
		"negative length":  {"(A:-0.5,B);", 3},
		"missing length":   {"(A:,B);", 3},
		"empty input":      {"", 0},
		"garbage":          {"(A,,B);", 3},
		"trailing paren":   {"(A,B));", 5},
		"bad support":      {"((A,B):0.1:xx,C);", 11},
		"quote at the end": {"(A,'B;", 3},
	}

	for name, test := range tests {
		_, err := newick.Parse(test.in)
		if err == nil {
			t.Errorf("%s: parse %q: expecting error", name, test.in)
			continue
		}
		var pe *newick.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%s: parse %q: got error type %T, want *ParseError", name, test.in, err)
			continue
		}
		if pe.Offset != test.offset {
			t.Errorf("%s: parse %q: got offset %d [%v], want %d", name, test.in, pe.Offset, err, test.offset)
		}
	}
}

func TestParseGuards(t *testing.T) {
	r := newick.Reader{MaxDepth: 4}
	if _, err := r.Parse("((((((A,B))))));"); err == nil {
		t.Errorf("max depth: expecting error")
	}

	r = newick.Reader{MaxNodes: 3}
	if _, err := r.Parse("(A,B,C,D);"); err == nil {
		t.Errorf("max nodes: expecting error")
	}
}

func TestParseAll(t *testing.T) {
	trees, err := newick.ParseAll("(A,B);\n(C,(D,E));\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trees) != 2 {
		t.Fatalf("got %d trees, want 2", len(trees))
	}
	if got := len(trees[1].Terms()); got != 3 {
		t.Errorf("second tree: got %d terminals, want 3", got)
	}
}
