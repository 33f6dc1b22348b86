// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylo

import (
	"fmt"

	"github.com/js-arias/phylotree/tree"
)

// Reroot returns a new tree
// rooted so that the indicated outgroup leaves
// form a clade separated from the rest of the tree.
//
// If an outgroup name is not a leaf of the tree,
// a NotFoundError will be returned.
// If neither the outgroup
// nor its complement
// form a clade of the tree
// (i.e., there is no branch separating them),
// the outgroup is not a valid rooting point
// and an error will be returned.
//
// The length of the branch split by the new root
// is divided in half between the two sides.
func Reroot(t *tree.Node, outgroup []string) (*tree.Node, error) {
	if t == nil || t.IsTerm() {
		return nil, ErrEmptyTree
	}

	root := t.Copy()
	want := make(map[string]bool, len(outgroup))
	for _, nm := range outgroup {
		lf := root.Term(nm)
		if lf == nil {
			return nil, &NotFoundError{Name: nm}
		}
		want[lf.Name] = true
	}
	if len(want) == 0 {
		return nil, fmt.Errorf("phylo: reroot: empty outgroup")
	}

	comp := make(map[string]bool)
	for _, lf := range root.Terms() {
		if !want[lf.Name] {
			comp[lf.Name] = true
		}
	}
	if len(comp) == 0 {
		return nil, fmt.Errorf("phylo: reroot: outgroup spans the whole tree")
	}

	target := cladeOf(root, want)
	if target == nil {
		target = cladeOf(root, comp)
	}
	if target == nil || target == root {
		return nil, fmt.Errorf("phylo: reroot: outgroup is not separable")
	}

	return rerootAt(root, target), nil
}

// rerootAt restructures a tree
// placing a new root in the middle of the branch
// between target and its parent.
// The tree is modified in place
// and the new root is returned.
func rerootAt(root, target *tree.Node) *tree.Node {
	parents := root.Parents()

	// parent chain, from the parent of target up to the root
	var path []*tree.Node
	for x := parents[target.ID]; x != nil; x = parents[x.ID] {
		path = append(path, x)
	}

	// the original properties of the branch
	// between each node of the path and its parent
	type branch struct {
		length  *float64
		support *float64
	}
	orig := make(map[int]branch, len(path))
	for _, p := range path {
		orig[p.ID] = branch{p.Length, p.Support}
	}

	// detach the path
	prev := target
	for _, p := range path {
		p.Children = removeChild(p.Children, prev)
		prev = p
	}

	// split the target branch in half
	var up *float64
	if target.Length != nil {
		h1 := *target.Length / 2
		h2 := h1
		target.Length = &h1
		up = &h2
	}

	newRoot := &tree.Node{}
	first := path[0]
	first.Length = up
	first.Support = nil
	newRoot.Children = []*tree.Node{target, first}

	// reverse the parent chain:
	// each former parent becomes a child
	// of its former child,
	// keeping the properties of the reversed branch.
	for i := 0; i+1 < len(path); i++ {
		p, q := path[i], path[i+1]
		p.Children = append(p.Children, q)
		q.Length = orig[p.ID].length
		q.Support = orig[p.ID].support
	}

	// if the old root is left with a single child,
	// splice it out,
	// merging the lengths of the two branches.
	oldRoot := path[len(path)-1]
	if len(oldRoot.Children) == 1 {
		c := oldRoot.Children[0]
		c.Length = sumLength(c.Length, oldRoot.Length)
		par := newRoot
		if len(path) > 1 {
			par = path[len(path)-2]
		}
		for i, ch := range par.Children {
			if ch == oldRoot {
				par.Children[i] = c
			}
		}
	}

	newRoot.Renumber()
	return newRoot
}

func removeChild(children []*tree.Node, c *tree.Node) []*tree.Node {
	out := children[:0]
	for _, ch := range children {
		if ch != c {
			out = append(out, ch)
		}
	}
	return out
}

// sumLength adds two branch lengths.
// An unspecified length is ignored,
// and the sum of two unspecified lengths
// is unspecified.
func sumLength(a, b *float64) *float64 {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	v := *a + *b
	return &v
}
