// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree_test

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/js-arias/phylotree/tree"
)

func fp(v float64) *float64 { return &v }

// testTree returns the tree "((A:0.1,B:0.2):0.05,C:0.3);"
// with pre-order IDs.
func testTree() *tree.Node {
	t := &tree.Node{
		Children: []*tree.Node{
			{
				Length: fp(0.05),
				Children: []*tree.Node{
					{Name: "A", Length: fp(0.1)},
					{Name: "B", Length: fp(0.2)},
				},
			},
			{Name: "C", Length: fp(0.3)},
		},
	}
	t.Renumber()
	return t
}

func TestNode(t *testing.T) {
	tr := testTree()

	if got := tr.Len(); got != 5 {
		t.Errorf("got %d nodes, want 5", got)
	}

	terms := tr.Terms()
	if len(terms) != 3 {
		t.Fatalf("got %d terminals, want 3", len(terms))
	}
	wantOrder := []string{"A", "B", "C"}
	for i, lf := range terms {
		if lf.Name != wantOrder[i] {
			t.Errorf("terminal %d: got %q, want %q", i, lf.Name, wantOrder[i])
		}
		if !lf.IsTerm() {
			t.Errorf("terminal %q: IsTerm is false", lf.Name)
		}
	}
	if tr.IsTerm() {
		t.Errorf("root: IsTerm is true")
	}

	if got := tr.TermNames(); !reflect.DeepEqual(got, wantOrder) {
		t.Errorf("got terminal names %v, want %v", got, wantOrder)
	}

	if lf := tr.Term(" b "); lf == nil || lf.Name != "B" {
		t.Errorf("Term: lookup is not case-insensitive")
	}
	if lf := tr.Term("X"); lf != nil {
		t.Errorf("Term: got %q for an unknown name", lf.Name)
	}

	if n := tr.ByID(3); n == nil || n.Name != "B" {
		t.Errorf("ByID: got %v, want node B", n)
	}
}

func TestParentsDepths(t *testing.T) {
	tr := testTree()

	p := tr.Parents()
	if _, ok := p[tr.ID]; ok {
		t.Errorf("the root has a parent")
	}
	b := tr.ByID(3)
	if pp := p[b.ID]; pp == nil || pp.ID != 1 {
		t.Errorf("parent of B: got %v, want node 1", pp)
	}

	d := tr.Depths()
	want := map[int]int{0: 0, 1: 1, 2: 2, 3: 2, 4: 1}
	if !reflect.DeepEqual(d, want) {
		t.Errorf("got depths %v, want %v", d, want)
	}
}

func TestCopy(t *testing.T) {
	tr := testTree()
	tr.Attributes = map[string]string{"kind": "test"}

	c := tr.Copy()
	if !reflect.DeepEqual(tr, c) {
		t.Errorf("copy differs from the original")
	}

	// the copy must be independent
	*c.Children[0].Length = 99
	c.Attributes["kind"] = "changed"
	c.Children[1].Name = "Z"
	if *tr.Children[0].Length != 0.05 {
		t.Errorf("copy shares branch lengths with the original")
	}
	if tr.Attributes["kind"] != "test" {
		t.Errorf("copy shares attributes with the original")
	}
	if tr.Children[1].Name != "C" {
		t.Errorf("copy shares nodes with the original")
	}
}

func TestJSON(t *testing.T) {
	tr := testTree()
	tr.ByID(2).Attributes = map[string]string{"count": "23"}

	var buf bytes.Buffer
	if err := tree.WriteJSON(&buf, tr); err != nil {
		t.Fatalf("unable to write tree: %v", err)
	}
	js := buf.String()

	got, err := tree.ReadJSON(&buf)
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}
	if !reflect.DeepEqual(tr, got) {
		t.Errorf("json round trip: trees differ")
	}
	for _, want := range []string{`"branch_length"`, `"name"`, `"children"`, `"count"`} {
		if !bytes.Contains([]byte(js), []byte(want)) {
			t.Errorf("json output does not contain %s", want)
		}
	}
}
