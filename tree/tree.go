// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree provides a rooted phylogenetic tree
// made of nodes with optional branch lengths
// and support values.
//
// A tree is represented by its root node.
// Each node owns its children,
// and no back-pointers to the parent are stored:
// parent relationships are computed on demand
// from the root.
package tree

import (
	"slices"
	"strings"
)

// A Node is a node of a phylogenetic tree.
// A node without children is a terminal
// (a taxon such as a species or a gene),
// and is the only kind of node expected to carry
// a biologically meaningful name.
type Node struct {
	// ID is a stable identifier,
	// unique within a tree,
	// assigned in pre-order when the tree is read.
	ID int

	// Name is the display label of the node.
	// It may be empty for internal nodes.
	Name string

	// Length is the length of the branch
	// between the node and its parent.
	// A nil value means the length is unspecified,
	// which is different from a zero length.
	Length *float64

	// Support is an optional support value
	// (for example a bootstrap proportion)
	// attached to the node.
	Support *float64

	// Attributes is an optional set of key-value
	// annotations attached to the node.
	Attributes map[string]string

	// Children are the descendants of the node,
	// in the same order as they appear
	// in the source data.
	Children []*Node
}

// IsTerm returns true if the node is a terminal
// (i.e., it has no descendants).
func (n *Node) IsTerm() bool {
	return len(n.Children) == 0
}

// Walk traverses the tree in pre-order,
// calling fn on each node.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Len returns the number of nodes in the tree.
func (n *Node) Len() int {
	sum := 0
	n.Walk(func(*Node) { sum++ })
	return sum
}

// Terms returns the leaves of the tree,
// in the traversal order of the tree
// (i.e., the order used for drawing).
func (n *Node) Terms() []*Node {
	var terms []*Node
	n.Walk(func(d *Node) {
		if d.IsTerm() {
			terms = append(terms, d)
		}
	})
	return terms
}

// TermNames returns the sorted names
// of the leaves of the tree.
// Unnamed leaves are ignored.
func (n *Node) TermNames() []string {
	var names []string
	for _, t := range n.Terms() {
		if t.Name == "" {
			continue
		}
		names = append(names, t.Name)
	}
	slices.Sort(names)
	return names
}

// Term returns the leaf with the given name,
// ignoring case and external spacing,
// or nil if the name is not a leaf of the tree.
func (n *Node) Term(name string) *Node {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil
	}
	var term *Node
	n.Walk(func(d *Node) {
		if term != nil || !d.IsTerm() {
			return
		}
		if strings.ToLower(strings.TrimSpace(d.Name)) == name {
			term = d
		}
	})
	return term
}

// ByID returns the node with the given identifier,
// or nil if the tree has no such node.
func (n *Node) ByID(id int) *Node {
	var node *Node
	n.Walk(func(d *Node) {
		if d.ID == id {
			node = d
		}
	})
	return node
}

// Parents returns a map from a node ID
// to the parent of that node.
// The root is not present in the map.
func (n *Node) Parents() map[int]*Node {
	p := make(map[int]*Node)
	n.Walk(func(d *Node) {
		for _, c := range d.Children {
			p[c.ID] = d
		}
	})
	return p
}

// Depths returns a map from a node ID
// to the depth of that node
// (the number of branches between the node
// and the root of the tree).
func (n *Node) Depths() map[int]int {
	d := make(map[int]int, n.Len())
	var walk func(node *Node, depth int)
	walk = func(node *Node, depth int) {
		d[node.ID] = depth
		for _, c := range node.Children {
			walk(c, depth+1)
		}
	}
	walk(n, 0)
	return d
}

// Copy returns a deep copy of the tree.
func (n *Node) Copy() *Node {
	c := &Node{
		ID:   n.ID,
		Name: n.Name,
	}
	if n.Length != nil {
		v := *n.Length
		c.Length = &v
	}
	if n.Support != nil {
		v := *n.Support
		c.Support = &v
	}
	if n.Attributes != nil {
		c.Attributes = make(map[string]string, len(n.Attributes))
		for k, v := range n.Attributes {
			c.Attributes[k] = v
		}
	}
	for _, d := range n.Children {
		c.Children = append(c.Children, d.Copy())
	}
	return c
}

// Renumber assigns new node identifiers
// in pre-order,
// starting from zero at the root.
func (n *Node) Renumber() {
	id := 0
	n.Walk(func(d *Node) {
		d.ID = id
		id++
	})
}
