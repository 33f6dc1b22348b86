// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylo

import (
	"errors"
	"slices"
	"strings"

	"github.com/js-arias/phylotree/tree"
)

// ErrIncomparable is returned when two trees
// share fewer than three leaves,
// so a topological comparison between them
// is meaningless.
var ErrIncomparable = errors.New("phylo: trees share fewer than three leaves")

// A Comparison is the result
// of a Robinson-Foulds comparison
// between two trees.
type Comparison struct {
	// Distance is the number of bipartitions
	// present in only one of the two trees.
	Distance int

	// MaxDistance is the largest possible distance
	// for the shared leaves,
	// 2*(n-3) for n leaves
	// (the bound for fully resolved unrooted trees).
	MaxDistance int

	// Normalized is Distance/MaxDistance,
	// or zero if MaxDistance is zero.
	Normalized float64

	// CommonTerms is the number of leaves
	// shared by the two trees.
	CommonTerms int
}

// RobinsonFoulds compares the topologies of two trees
// using the Robinson-Foulds symmetric difference.
//
// The comparison is made over the leaves
// shared by both trees:
// if the leaf sets differ,
// each tree is restricted
// to the induced subtree over the intersection.
// If there are fewer than three shared leaves,
// ErrIncomparable will be returned.
func RobinsonFoulds(a, b *tree.Node) (Comparison, error) {
	if a == nil || b == nil {
		return Comparison{}, ErrEmptyTree
	}

	common := make(map[string]bool)
	bn := make(map[string]bool)
	for _, nm := range b.TermNames() {
		bn[nm] = true
	}
	for _, nm := range a.TermNames() {
		if bn[nm] {
			common[nm] = true
		}
	}
	if len(common) < 3 {
		return Comparison{}, ErrIncomparable
	}

	sa := bipartitions(a, common)
	sb := bipartitions(b, common)

	dist := 0
	for s := range sa {
		if !sb[s] {
			dist++
		}
	}
	for s := range sb {
		if !sa[s] {
			dist++
		}
	}

	cmp := Comparison{
		Distance:    dist,
		MaxDistance: 2 * (len(common) - 3),
		CommonTerms: len(common),
	}
	if cmp.MaxDistance > 0 {
		cmp.Normalized = float64(cmp.Distance) / float64(cmp.MaxDistance)
	}
	return cmp, nil
}

// bipartitions returns the set of non-trivial bipartitions
// induced by the branches of a tree,
// restricted to the given leaf set.
// Each bipartition is keyed by the sorted names
// of the side that does not contain
// the alphabetically smallest leaf.
func bipartitions(t *tree.Node, common map[string]bool) map[string]bool {
	ref := ""
	for nm := range common {
		if ref == "" || nm < ref {
			ref = nm
		}
	}

	splits := make(map[string]bool)
	var walk func(n *tree.Node) map[string]bool
	walk = func(n *tree.Node) map[string]bool {
		set := make(map[string]bool)
		if n.IsTerm() {
			if common[n.Name] {
				set[n.Name] = true
			}
			return set
		}
		for _, c := range n.Children {
			for nm := range walk(c) {
				set[nm] = true
			}
		}

		// trivial splits are shared by every tree
		// with the same leaves
		if len(set) < 2 || len(set) > len(common)-2 {
			return set
		}

		side := set
		if side[ref] {
			side = make(map[string]bool)
			for nm := range common {
				if !set[nm] {
					side[nm] = true
				}
			}
		}
		names := make([]string, 0, len(side))
		for nm := range side {
			names = append(names, nm)
		}
		slices.Sort(names)
		splits[strings.Join(names, "|")] = true
		return set
	}
	walk(t)
	return splits
}
