// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package phylo implements algorithms
// over phylogenetic trees:
// rerooting,
// annotation,
// patristic distance matrices,
// Robinson-Foulds comparisons,
// and tree shape statistics.
//
// All functions are pure:
// the input trees are never modified,
// and operations that transform a tree
// return a new tree.
package phylo

import (
	"errors"
	"fmt"

	"github.com/js-arias/phylotree/tree"
)

// ErrEmptyTree is returned when an operation
// receives a nil or empty tree.
var ErrEmptyTree = errors.New("phylo: empty tree")

// A NotFoundError is an error
// for a leaf name absent from a tree.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("phylo: leaf %q not found", e.Name)
}

// cladeOf returns the node
// whose set of descendant leaf names
// is exactly equal to want,
// or nil if there is no such node.
func cladeOf(t *tree.Node, want map[string]bool) *tree.Node {
	var found *tree.Node
	var walk func(n *tree.Node) map[string]bool
	walk = func(n *tree.Node) map[string]bool {
		set := make(map[string]bool)
		if n.IsTerm() {
			if n.Name != "" {
				set[n.Name] = true
			}
		}
		for _, c := range n.Children {
			for nm := range walk(c) {
				set[nm] = true
			}
		}
		if found == nil && len(set) == len(want) {
			eq := true
			for nm := range want {
				if !set[nm] {
					eq = false
					break
				}
			}
			if eq {
				found = n
			}
		}
		return set
	}
	walk(t)
	return found
}
