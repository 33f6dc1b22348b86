// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package annotate implements a command to attach
// external per-taxon counts
// to the leaves of a tree.
package annotate

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phylotree/match"
	"github.com/js-arias/phylotree/newick"
	"github.com/js-arias/phylotree/phylo"
	"github.com/js-arias/phylotree/tree"
)

var Command = &command.Command{
	Usage: `annotate --counts <count-file>
	[--strict] [<tree-file>]`,
	Short: "attach taxon counts to the leaves of a tree",
	Long: `
Command annotate reads a tree in a Newick file, matches the taxon names of a
count file (see 'phylotree help count-files') to the leaves of the tree, and
writes the annotated tree as JSON in the standard output. Each matched leaf
carries a "count" attribute, and, if the name was matched by a loose rule, a
"count_source" attribute with the matched taxon name. Unmatched leaves are
left untouched; a leaf without a match is a normal outcome, not an error.

The flag --counts is required and indicates the count file.

By default, the names are matched first by case-insensitive equality, then
by containment, and finally by the genus (the first word of the name). With
the flag --strict, only the equality rule will be used.

The argument of the command is the name of the tree file. If no file is
given, the tree will be read from the standard input. If the file contains
multiple trees, only the first one will be used.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var countFile string
var strict bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&countFile, "counts", "", "")
	c.Flags().BoolVar(&strict, "strict", false, "")
}

func run(c *command.Command, args []string) error {
	if countFile == "" {
		return c.UsageError("flag --counts must be defined")
	}
	counts, err := readCounts(countFile)
	if err != nil {
		return err
	}

	name := "-"
	if len(args) > 0 {
		name = args[0]
	}
	t, err := readTree(c.Stdin(), name)
	if err != nil {
		return err
	}

	m := match.Default()
	if strict {
		m = match.Matcher{}
	}

	at := phylo.Annotate(t, counts.Assign(t, m))
	if err := tree.WriteJSON(c.Stdout(), at); err != nil {
		return fmt.Errorf("while writing tree: %v", err)
	}
	return nil
}

func readCounts(name string) (match.Counts, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	counts, err := match.ReadCounts(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return counts, nil
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
