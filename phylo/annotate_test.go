// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylo_test

import (
	"testing"

	"github.com/js-arias/phylotree/phylo"
)

func TestAnnotate(t *testing.T) {
	tr := mustParse(t, "((A:0.1,B:0.2):0.05,C:0.3);")

	a := tr.Term("A")
	c := tr.Term("C")
	ann := map[int]map[string]string{
		a.ID: {"count": "10"},
		c.ID: {"count": "3", "source": "genome"},
		999:  {"count": "7"},
	}

	at := phylo.Annotate(tr, ann)

	if at == tr {
		t.Fatalf("annotation should return a new tree")
	}
	if tr.Term("A").Attributes != nil {
		t.Errorf("input tree was modified")
	}

	if got := at.Term("A").Attributes["count"]; got != "10" {
		t.Errorf("terminal A: got count %q, want %q", got, "10")
	}
	if got := at.Term("C").Attributes["source"]; got != "genome" {
		t.Errorf("terminal C: got source %q, want %q", got, "genome")
	}
	if at.Term("B").Attributes != nil {
		t.Errorf("terminal B: unexpected attributes %v", at.Term("B").Attributes)
	}

	// unknown IDs are ignored
	for _, n := range at.Terms() {
		if n.Attributes["count"] == "7" {
			t.Errorf("annotation for an unknown ID was attached to %q", n.Name)
		}
	}
}

func TestAnnotateMerge(t *testing.T) {
	tr := mustParse(t, "(A,B);")
	a := tr.Term("A")

	first := phylo.Annotate(tr, map[int]map[string]string{
		a.ID: {"count": "1", "family": "Felidae"},
	})
	second := phylo.Annotate(first, map[int]map[string]string{
		a.ID: {"count": "2"},
	})

	attr := second.Term("A").Attributes
	if attr["count"] != "2" {
		t.Errorf("got count %q, want %q", attr["count"], "2")
	}
	if attr["family"] != "Felidae" {
		t.Errorf("previous attributes should be kept: got %v", attr)
	}
	if first.Term("A").Attributes["count"] != "1" {
		t.Errorf("intermediate tree was modified")
	}
}
