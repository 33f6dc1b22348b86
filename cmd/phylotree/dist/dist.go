// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package dist implements a command to print
// the patristic distance matrix of a tree.
package dist

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/phylotree/newick"
	"github.com/js-arias/phylotree/phylo"
	"github.com/js-arias/phylotree/tree"
)

var Command = &command.Command{
	Usage: "dist [<tree-file>]",
	Short: "print the patristic distance matrix of a tree",
	Long: `
Command dist reads a tree in a Newick file and prints its patristic distance
matrix (the sum of the branch lengths in the path between each pair of
leaves) as a tab-delimited table in the standard output. Branches without an
explicit length count as a length of one.

The first row contains the leaf names; each following row contains a leaf
name and its distance to every leaf. The matrix is symmetric and its
diagonal is zero.

The argument of the command is the name of the tree file. If no file is
given, the tree will be read from the standard input. If the file contains
multiple trees, only the first one will be used.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	name := "-"
	if len(args) > 0 {
		name = args[0]
	}
	t, err := readTree(c.Stdin(), name)
	if err != nil {
		return err
	}

	m, err := phylo.DistanceMatrix(t)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(c.Stdout())
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'

	terms := m.Terms()
	head := append([]string{""}, terms...)
	if err := tsv.Write(head); err != nil {
		return err
	}
	for i, nm := range terms {
		row := make([]string, 0, len(terms)+1)
		row = append(row, nm)
		for j := range terms {
			row = append(row, strconv.FormatFloat(m.At(i, j), 'g', -1, 64))
		}
		if err := tsv.Write(row); err != nil {
			return err
		}
	}
	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
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
