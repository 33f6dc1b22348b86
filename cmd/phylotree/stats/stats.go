// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package stats implements a command to print
// shape statistics of the trees in a Newick file.
package stats

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phylotree/newick"
	"github.com/js-arias/phylotree/phylo"
	"github.com/js-arias/phylotree/tree"
)

var Command = &command.Command{
	Usage: "stats [--monophyly <taxon>[,<taxon>...]] [<tree-file>]",
	Short: "print shape statistics of a tree",
	Long: `
Command stats reads the trees in a Newick file and prints, for each tree,
the number of leaves, the number of nodes, the maximum depth (in branches
from the root), and the balance index of the tree. The balance index is
scaled between 0, a fully pectinate tree, and 1, a perfectly balanced tree.

If the flag --monophyly is given with a comma-separated list of leaf names,
the command also reports whether the given leaves form a monophyletic group
in each tree.

The argument of the command is the name of the tree file. If no file is
given, the trees will be read from the standard input.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var monophyly string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&monophyly, "monophyly", "", "")
}

func run(c *command.Command, args []string) error {
	name := "-"
	if len(args) > 0 {
		name = args[0]
	}
	trees, err := readTrees(c.Stdin(), name)
	if err != nil {
		return err
	}

	for i, t := range trees {
		tn := t.Name
		if tn == "" {
			tn = fmt.Sprintf("tree-%d", i)
		}

		depths := t.Depths()
		max := 0
		for _, d := range depths {
			if d > max {
				max = d
			}
		}

		fmt.Fprintf(c.Stdout(), "tree: %s\n", tn)
		fmt.Fprintf(c.Stdout(), "  terms: %d\n", len(t.Terms()))
		fmt.Fprintf(c.Stdout(), "  nodes: %d\n", t.Len())
		fmt.Fprintf(c.Stdout(), "  depth: %d\n", max)
		fmt.Fprintf(c.Stdout(), "  balance: %.6f\n", phylo.BalanceIndex(t))

		if monophyly != "" {
			names := splitList(monophyly)
			ok, n := phylo.Monophyly(t, names)
			if ok {
				fmt.Fprintf(c.Stdout(), "  monophyly: true (node %d)\n", n.ID)
			} else {
				fmt.Fprintf(c.Stdout(), "  monophyly: false\n")
			}
		}
	}
	return nil
}

func splitList(s string) []string {
	var ls []string
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f != "" {
			ls = append(ls, f)
		}
	}
	return ls
}

func readTrees(r io.Reader, name string) ([]*tree.Node, error) {
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
	trees, err := newick.ParseAll(string(d))
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return trees, nil
}
