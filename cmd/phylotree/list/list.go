// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the trees found in Newick files.
package list

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phylotree/newick"
	"github.com/js-arias/phylotree/tree"
)

var Command = &command.Command{
	Usage: "list [<tree-file>...]",
	Short: "print a list of the trees in Newick files",
	Long: `
Command list reads one or more Newick tree files and prints a line per tree
with the tree name (the label of the root node, if any), the number of
leaves, and the number of nodes.

One or more tree files can be given as arguments. If no file is given, the
trees will be read from the standard input.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) == 0 {
		args = append(args, "-")
	}

	for _, a := range args {
		trees, err := readTrees(c.Stdin(), a)
		if err != nil {
			return err
		}
		for i, t := range trees {
			name := t.Name
			if name == "" {
				name = fmt.Sprintf("tree-%d", i)
			}
			fmt.Fprintf(c.Stdout(), "%s\t%d\t%d\n", name, len(t.Terms()), t.Len())
		}
	}
	return nil
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
