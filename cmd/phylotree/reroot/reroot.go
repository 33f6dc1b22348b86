// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package reroot implements a command to reroot a tree
// using an outgroup.
package reroot

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
	Usage: `reroot --outgroup <taxon>[,<taxon>...]
	[--support <convention>] [<tree-file>]`,
	Short: "reroot a tree using an outgroup",
	Long: `
Command reroot reads a tree in a Newick file and writes a new tree, rooted
so that the indicated outgroup is separated from all other leaves, to the
standard output. The length of the branch split by the new root is divided
in half between the two sides of the root.

The flag --outgroup is required and indicates the outgroup as a list of
comma-separated leaf names. If either the outgroup or its complement do not
form a clade of the tree, the command will fail.

The argument of the command is the name of the tree file. If no file is
given, the tree will be read from the standard input. If the file contains
multiple trees, each one will be rerooted.

The flag --support sets the position of the support values in the input (see
'phylotree help newick-files').
	`,
	SetFlags: setFlags,
	Run:      run,
}

var outgroup string
var supportFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&outgroup, "outgroup", "", "")
	c.Flags().StringVar(&supportFlag, "support", "auto", "")
}

func run(c *command.Command, args []string) error {
	if outgroup == "" {
		return c.UsageError("flag --outgroup must be defined")
	}
	og := strings.Split(outgroup, ",")
	for i, nm := range og {
		og[i] = strings.TrimSpace(nm)
	}

	sup, err := supportConvention(supportFlag)
	if err != nil {
		return c.UsageError(err.Error())
	}

	name := "-"
	if len(args) > 0 {
		name = args[0]
	}
	trees, err := readTrees(c.Stdin(), name, sup)
	if err != nil {
		return err
	}

	for _, t := range trees {
		rt, err := phylo.Reroot(t, og)
		if err != nil {
			return err
		}
		if err := newick.Write(c.Stdout(), rt); err != nil {
			return err
		}
	}
	return nil
}

func supportConvention(s string) (newick.Convention, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return newick.SupportAuto, nil
	case "label":
		return newick.SupportAsLabel, nil
	case "length":
		return newick.SupportAfterLength, nil
	}
	return 0, fmt.Errorf("invalid --support value: %q", s)
}

func readTrees(r io.Reader, name string, sup newick.Convention) ([]*tree.Node, error) {
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
	nr := newick.Reader{Support: sup}
	trees, err := nr.ParseAll(string(d))
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return trees, nil
}
