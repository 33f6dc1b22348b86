// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylo

import "github.com/js-arias/phylotree/tree"

// Annotate returns a copy of a tree
// in which each node found in the ann map
// (indexed by node ID)
// carries the given key-value attributes.
// Identifiers without a matching node are ignored:
// annotation is a best effort enrichment,
// not a presence guarantee.
func Annotate(t *tree.Node, ann map[int]map[string]string) *tree.Node {
	c := t.Copy()
	c.Walk(func(n *tree.Node) {
		kv, ok := ann[n.ID]
		if !ok {
			return
		}
		if n.Attributes == nil {
			n.Attributes = make(map[string]string, len(kv))
		}
		for k, v := range kv {
			n.Attributes[k] = v
		}
	})
	return c
}
