// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylo

import "github.com/js-arias/phylotree/tree"

// Monophyly returns true if the given leaf names
// are exactly the descendant leaves
// of a single node of the tree,
// and returns that node.
// An empty name set,
// or a set with names absent from the tree,
// is never monophyletic.
func Monophyly(t *tree.Node, names []string) (bool, *tree.Node) {
	if t == nil || len(names) == 0 {
		return false, nil
	}
	want := make(map[string]bool, len(names))
	for _, nm := range names {
		lf := t.Term(nm)
		if lf == nil {
			return false, nil
		}
		want[lf.Name] = true
	}
	n := cladeOf(t, want)
	if n == nil {
		return false, nil
	}
	return true, n
}

// BalanceIndex returns a measure
// of how evenly the branching of a tree
// splits its leaves,
// scaled between 0
// (a fully pectinate, comb-like tree)
// and 1
// (a perfectly balanced tree).
//
// For each internal node the imbalance is the difference
// between the largest and the smallest child clade,
// scaled by the maximum possible difference
// at that node;
// the index is one minus the average imbalance
// over all internal nodes
// (a normalized Colless-like statistic).
func BalanceIndex(t *tree.Node) float64 {
	if t == nil {
		return 1
	}

	var sum float64
	var count int

	var walk func(n *tree.Node) int
	walk = func(n *tree.Node) int {
		if n.IsTerm() {
			return 1
		}
		tot := 0
		min, max := -1, 0
		for _, c := range n.Children {
			s := walk(c)
			tot += s
			if min < 0 || s < min {
				min = s
			}
			if s > max {
				max = s
			}
		}
		// with k children the most unbalanced split
		// is one clade with tot-k+1 leaves
		// and k-1 single leaves
		if worst := tot - len(n.Children); worst > 0 {
			sum += float64(max-min) / float64(worst)
		}
		count++
		return tot
	}
	walk(t)

	if count == 0 {
		return 1
	}
	return 1 - sum/float64(count)
}
