// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylo

import (
	"github.com/js-arias/phylotree/tree"
	"gonum.org/v1/gonum/mat"
)

// DefLength is the branch length used
// for branches without an explicit length
// when computing patristic distances.
// Unspecified lengths count as a full unit,
// they are not treated as zero.
const DefLength = 1.0

// A DistMatrix is a symmetric matrix
// of patristic distances
// (the sum of the branch lengths
// in the path between two leaves)
// for the leaves of a tree.
type DistMatrix struct {
	terms []string
	d     *mat.SymDense
}

// DistanceMatrix returns the patristic distance matrix
// of a tree.
// The leaves are indexed in the traversal order
// of the tree.
func DistanceMatrix(t *tree.Node) (*DistMatrix, error) {
	if t == nil {
		return nil, ErrEmptyTree
	}
	terms := t.Terms()
	if len(terms) == 0 {
		return nil, ErrEmptyTree
	}

	m := &DistMatrix{
		terms: make([]string, len(terms)),
		d:     mat.NewSymDense(len(terms), nil),
	}
	leafPos := make(map[int]int, len(terms))
	for i, lf := range terms {
		m.terms[i] = lf.Name
		leafPos[lf.ID] = i
	}

	// post-order traversal;
	// each call returns the distance
	// from every descendant leaf
	// to the current node.
	var walk func(n *tree.Node) map[int]float64
	walk = func(n *tree.Node) map[int]float64 {
		if n.IsTerm() {
			return map[int]float64{leafPos[n.ID]: 0}
		}
		groups := make([]map[int]float64, 0, len(n.Children))
		for _, c := range n.Children {
			dc := walk(c)
			bl := DefLength
			if c.Length != nil {
				bl = *c.Length
			}
			for k := range dc {
				dc[k] += bl
			}
			groups = append(groups, dc)
		}

		acc := make(map[int]float64)
		for i, g := range groups {
			for j := i + 1; j < len(groups); j++ {
				for a, da := range g {
					for b, db := range groups[j] {
						m.d.SetSym(a, b, da+db)
					}
				}
			}
			for k, v := range g {
				acc[k] = v
			}
		}
		return acc
	}
	walk(t)

	return m, nil
}

// Len returns the number of leaves in the matrix.
func (m *DistMatrix) Len() int {
	return len(m.terms)
}

// Terms returns the leaf names of the matrix,
// in matrix order.
func (m *DistMatrix) Terms() []string {
	terms := make([]string, len(m.terms))
	copy(terms, m.terms)
	return terms
}

// At returns the distance between the i-th
// and j-th leaves of the matrix.
func (m *DistMatrix) At(i, j int) float64 {
	return m.d.At(i, j)
}

// Distance returns the distance between two leaves
// indicated by name.
// It returns false if a name is not in the matrix.
func (m *DistMatrix) Distance(a, b string) (float64, bool) {
	i, ok := m.pos(a)
	if !ok {
		return 0, false
	}
	j, ok := m.pos(b)
	if !ok {
		return 0, false
	}
	return m.d.At(i, j), true
}

// Matrix returns the underlying symmetric matrix.
func (m *DistMatrix) Matrix() *mat.SymDense {
	return m.d
}

func (m *DistMatrix) pos(name string) (int, bool) {
	for i, t := range m.terms {
		if t == name {
			return i, true
		}
	}
	return 0, false
}
