// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package cmpcmd implements a command to compare
// the topologies of two trees.
package cmpcmd

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phylotree/newick"
	"github.com/js-arias/phylotree/phylo"
	"github.com/js-arias/phylotree/tree"
)

var Command = &command.Command{
	Usage: "cmp <tree-file> <tree-file>",
	Short: "compare the topologies of two trees",
	Long: `
Command cmp reads a tree from each of two Newick files and prints their
Robinson-Foulds distance: the number of bipartitions present in only one of
the two trees.

If the trees have different leaves, the comparison is made over the leaves
shared by both trees. Trees sharing fewer than three leaves cannot be
compared. If a file contains multiple trees, only the first one will be
used.

The output reports the distance, the maximum possible distance for the
shared leaves, the normalized distance, and the number of shared leaves:

	distance: 4
	max-distance: 10
	normalized: 0.400000
	shared-terms: 8

Two trees with the same topology have a distance of zero.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 2 {
		return c.UsageError("expecting two tree files")
	}

	a, err := readTree(args[0])
	if err != nil {
		return err
	}
	b, err := readTree(args[1])
	if err != nil {
		return err
	}

	cmp, err := phylo.RobinsonFoulds(a, b)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.Stdout(), "distance: %d\n", cmp.Distance)
	fmt.Fprintf(c.Stdout(), "max-distance: %d\n", cmp.MaxDistance)
	fmt.Fprintf(c.Stdout(), "normalized: %.6f\n", cmp.Normalized)
	fmt.Fprintf(c.Stdout(), "shared-terms: %d\n", cmp.CommonTerms)
	return nil
}

// readTree reads the first tree of a Newick file.
func readTree(name string) (*tree.Node, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	t, err := newick.Parse(string(d))
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return t, nil
}
