// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package importcmd implements a command to convert
// time-calibrated trees in TSV tree files
// into Newick trees.
package importcmd

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phylotree/newick"
	"github.com/js-arias/phylotree/tree"
	"github.com/js-arias/timetree"
)

var Command = &command.Command{
	Usage: "import [--tree <tree-name>] [<tree-file>...]",
	Short: "convert TSV tree files into Newick trees",
	Long: `
Command import reads one or more time-calibrated trees from tab-delimited
tree files (the format used by the timetree package and tools such as
PhyGeo) and writes them as Newick trees in the standard output. The branch
lengths of the output are in million years, taken from the difference
between the age of a node and the age of its parent.

One or more tree files can be given as arguments. If no file is given, the
trees will be read from the standard input.

By default, all trees in the input files will be converted. If the flag
--tree is set, only the indicated tree will be converted.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
}

// Ages of a time-calibrated tree are in years.
const millionYears = 1_000_000

func run(c *command.Command, args []string) error {
	if len(args) == 0 {
		args = append(args, "-")
	}

	for _, a := range args {
		tc, err := readTreeFile(c.Stdin(), a)
		if err != nil {
			return err
		}

		ls := tc.Names()
		if treeName != "" {
			ls = []string{treeName}
		}
		for _, tn := range ls {
			t := tc.Tree(tn)
			if t == nil {
				continue
			}
			if err := newick.Write(c.Stdout(), fromTimeTree(t)); err != nil {
				return err
			}
		}
	}
	return nil
}

// fromTimeTree converts a time-calibrated tree
// into a tree with branch lengths
// in million years.
func fromTimeTree(t *timetree.Tree) *tree.Node {
	var build func(id int, parent int64) *tree.Node
	build = func(id int, parent int64) *tree.Node {
		n := &tree.Node{Name: t.Taxon(id)}
		if parent >= 0 {
			l := float64(parent-t.Age(id)) / millionYears
			n.Length = &l
		}
		for _, cid := range t.Children(id) {
			n.Children = append(n.Children, build(cid, t.Age(id)))
		}
		return n
	}

	root := build(t.Root(), -1)
	if root.Name == "" {
		root.Name = t.Name()
	}
	root.Renumber()
	return root
}

func readTreeFile(r io.Reader, name string) (*timetree.Collection, error) {
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

	c, err := timetree.ReadTSV(r)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}
