// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to compute
// the 2D layout of a tree for rendering.
package draw

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/js-arias/command"
	"github.com/js-arias/phylotree/layout"
	"github.com/js-arias/phylotree/newick"
	"github.com/js-arias/phylotree/tree"
)

var Command = &command.Command{
	Usage: `draw [--mode <mode>]
	[--width <value>] [--height <value>]
	[--lengths] [--noreorder]
	[<tree-file>]`,
	Short: "compute the 2D layout of a tree",
	Long: `
Command draw reads a tree in a Newick file, computes the position of each
node for a 2D drawing, and writes the positions as JSON in the standard
output. The command only produces coordinates; it is up to the rendering
collaborator to produce an image from them.

By default, a rectangular layout is computed: the X axis is proportional to
the depth of a node and the Y axis places each internal node centered over
its children. Use the flag --mode with the value "radial" for a circular
layout, in which depth maps to the radius and the leaves are distributed
around a full circle.

By default, the drawing area is 800x600; use the flags --width and --height
to change it. Use the flag --lengths to make the depth axis proportional to
the branch lengths instead of the node depth.

Before the positions are computed, the children of each node are reordered
to reduce the number of edge crossings. Use the flag --noreorder to keep the
original child order of the tree.

The argument of the command is the name of the tree file. If no file is
given, the tree will be read from the standard input. If the file contains
multiple trees, only the first one will be used.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var mode string
var width float64
var height float64
var useLengths bool
var noReorder bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&mode, "mode", "rect", "")
	c.Flags().Float64Var(&width, "width", 800, "")
	c.Flags().Float64Var(&height, "height", 600, "")
	c.Flags().BoolVar(&useLengths, "lengths", false, "")
	c.Flags().BoolVar(&noReorder, "noreorder", false, "")
}

func run(c *command.Command, args []string) error {
	opt := layout.Options{
		Width:      width,
		Height:     height,
		UseLengths: useLengths,
		Reorder:    !noReorder,
	}
	switch strings.ToLower(mode) {
	case "rect", "rectangular", "":
		opt.Mode = layout.Rectangular
	case "radial", "circular":
		opt.Mode = layout.Radial
	default:
		return c.UsageError(fmt.Sprintf("invalid --mode value: %q", mode))
	}

	name := "-"
	if len(args) > 0 {
		name = args[0]
	}
	t, err := readTree(c.Stdin(), name)
	if err != nil {
		return err
	}

	d, err := layout.New(t, opt)
	if err != nil {
		return err
	}

	e := json.NewEncoder(c.Stdout())
	e.SetIndent("", "  ")
	if err := e.Encode(d); err != nil {
		return fmt.Errorf("while writing layout: %v", err)
	}
	return nil
}

// readTree reads the first tree of a Newick file.
func readTree(r io.Reader, name string) (*tree.Node, error) {
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	t, err := newick.Parse(string(d))
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return t, nil
}
