// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package layout

import (
	"slices"

	"github.com/js-arias/phylotree/tree"
)

// reorder returns a copy of the tree
// in which the children of each node
// are sorted by the barycenter
// (the mean rank of their subtree leaves
// in name order).
// Sorting siblings by their barycenter
// keeps subtrees with close leaf names
// adjacent in the drawing,
// reducing edge crossings
// between non-adjacent branches.
// It is a heuristic,
// not an exact minimum-crossing solver.
func reorder(t *tree.Node) *tree.Node {
	t = t.Copy()

	idx := make(map[int]float64)
	for i, nm := range t.TermNames() {
		if lf := t.Term(nm); lf != nil {
			idx[lf.ID] = float64(i)
		}
	}

	var walk func(n *tree.Node) (sum float64, count int)
	walk = func(n *tree.Node) (float64, int) {
		if n.IsTerm() {
			return idx[n.ID], 1
		}

		bary := make(map[int]float64, len(n.Children))
		sum := 0.0
		count := 0
		for _, c := range n.Children {
			s, k := walk(c)
			bary[c.ID] = s / float64(k)
			sum += s
			count += k
		}
		slices.SortStableFunc(n.Children, func(a, b *tree.Node) int {
			switch {
			case bary[a.ID] < bary[b.ID]:
				return -1
			case bary[a.ID] > bary[b.ID]:
				return 1
			}
			return 0
		})
		return sum, count
	}
	walk(t)
	return t
}
