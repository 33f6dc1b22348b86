// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package layout assigns 2D coordinates
// to the nodes of a phylogenetic tree
// for a rectangular or a radial presentation.
//
// The package only produces numeric coordinates;
// drawing is left to the consumer.
// Given the same tree and options
// the output is always the same,
// so renders are reproducible.
package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/js-arias/phylotree/tree"
)

// Mode is the kind of presentation
// a layout is computed for.
type Mode int

const (
	// Rectangular is the classic tree diagram:
	// one axis for the depth of a node
	// and the other for its placement
	// among the leaves.
	Rectangular Mode = iota

	// Radial maps depth to a radius
	// and leaf placement to an angle
	// around a full circle.
	Radial
)

func (m Mode) String() string {
	switch m {
	case Rectangular:
		return "rectangular"
	case Radial:
		return "radial"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ErrDimensions is returned for a layout
// with non-positive dimensions.
var ErrDimensions = errors.New("layout: non-positive dimensions")

// defLength is the length assigned to branches
// without an explicit length
// when the depth axis uses branch lengths,
// the same policy used for patristic distances.
const defLength = 1.0

// Options define the presentation
// of a layout.
type Options struct {
	// Mode of the presentation.
	Mode Mode

	// Width and Height of the drawing area.
	Width  float64
	Height float64

	// UseLengths maps the depth axis
	// to the accumulated branch lengths
	// instead of the node depth.
	UseLengths bool

	// MinSep is the separation
	// between adjacent leaves
	// that descend from the same parent.
	// If zero,
	// a unit separation will be used.
	MinSep float64

	// CladeSep is the separation
	// between adjacent leaves
	// that descend from different parents,
	// used to group clades visually.
	// If zero,
	// one and a half times MinSep will be used.
	CladeSep float64

	// Reorder enables a heuristic pass
	// that reorders the children of each node
	// to reduce edge crossings.
	Reorder bool
}

// A NodePos is the position of a node
// in a layout.
type NodePos struct {
	ID     int     `json:"id"`
	Name   string  `json:"name,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Angle  float64 `json:"angle,omitempty"`
	Radius float64 `json:"radius,omitempty"`
	IsTerm bool    `json:"is_term,omitempty"`
}

// A Diagram is the result of a layout:
// a position for every node of a tree,
// sorted by node ID.
type Diagram struct {
	Mode   string    `json:"mode"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Nodes  []NodePos `json:"nodes"`
}

// New computes the layout of a tree.
func New(t *tree.Node, opt Options) (*Diagram, error) {
	if t == nil {
		return nil, errors.New("layout: empty tree")
	}
	if opt.Width <= 0 || opt.Height <= 0 {
		return nil, fmt.Errorf("%w: %g x %g", ErrDimensions, opt.Width, opt.Height)
	}
	if opt.MinSep <= 0 {
		opt.MinSep = 1
	}
	if opt.CladeSep <= 0 {
		opt.CladeSep = opt.MinSep * 1.5
	}
	if opt.CladeSep < opt.MinSep {
		opt.CladeSep = opt.MinSep
	}

	if opt.Reorder {
		t = reorder(t)
	}

	depth := depthCoords(t, opt.UseLengths)
	cross := crossCoords(t, opt)

	maxDepth := 0.0
	for _, d := range depth {
		if d > maxDepth {
			maxDepth = d
		}
	}
	if maxDepth == 0 {
		maxDepth = 1
	}

	terms := t.Terms()
	maxCross := cross[terms[len(terms)-1].ID]

	d := &Diagram{
		Mode:   opt.Mode.String(),
		Width:  opt.Width,
		Height: opt.Height,
	}
	t.Walk(func(n *tree.Node) {
		p := NodePos{
			ID:     n.ID,
			Name:   n.Name,
			IsTerm: n.IsTerm(),
		}
		switch opt.Mode {
		case Radial:
			span := maxCross + opt.CladeSep
			p.Angle = cross[n.ID] / span * 2 * math.Pi
			p.Radius = depth[n.ID] / maxDepth * math.Min(opt.Width, opt.Height) / 2
			p.X = p.Radius * math.Sin(p.Angle)
			p.Y = -p.Radius * math.Cos(p.Angle)
		default:
			span := maxCross
			if span == 0 {
				span = 1
			}
			p.X = depth[n.ID] / maxDepth * opt.Width
			p.Y = cross[n.ID] / span * opt.Height
		}
		d.Nodes = append(d.Nodes, p)
	})
	return d, nil
}

// depthCoords returns the depth axis coordinate
// of each node,
// either the number of branches from the root
// or the accumulated branch length.
func depthCoords(t *tree.Node, useLengths bool) map[int]float64 {
	depth := make(map[int]float64, t.Len())
	var walk func(n *tree.Node, d float64)
	walk = func(n *tree.Node, d float64) {
		depth[n.ID] = d
		for _, c := range n.Children {
			step := 1.0
			if useLengths {
				step = defLength
				if c.Length != nil {
					step = *c.Length
				}
			}
			walk(c, d+step)
		}
	}
	walk(t, 0)
	return depth
}

// crossCoords returns the cross axis coordinate
// of each node.
// Leaves are placed in traversal order,
// separated by MinSep
// if they share their parent
// and by CladeSep otherwise;
// each internal node is centered
// between its first and last child.
func crossCoords(t *tree.Node, opt Options) map[int]float64 {
	parents := t.Parents()
	cross := make(map[int]float64, t.Len())

	pos := 0.0
	var prev *tree.Node
	for _, lf := range t.Terms() {
		if prev != nil {
			if parents[prev.ID] == parents[lf.ID] {
				pos += opt.MinSep
			} else {
				pos += opt.CladeSep
			}
		}
		cross[lf.ID] = pos
		prev = lf
	}

	var walk func(n *tree.Node)
	walk = func(n *tree.Node) {
		if n.IsTerm() {
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
		first := n.Children[0]
		last := n.Children[len(n.Children)-1]
		cross[n.ID] = (cross[first.ID] + cross[last.ID]) / 2
	}
	walk(t)
	return cross
}
