// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package terms implements a command to print
// the list of terminals of the trees in Newick files.
package terms

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/js-arias/command"
	"github.com/js-arias/phylotree/newick"
)

var Command = &command.Command{
	Usage: "terms [<tree-file>...]",
	Short: "print a list of tree terminals",
	Long: `
Command terms reads one or more Newick tree files and prints the names of
the terminals in the standard output. Each terminal is printed only once,
even if it is present in more than one tree.

One or more tree files can be given as arguments. If no file is given, the
trees will be read from the standard input.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) == 0 {
		args = append(args, "-")
	}

	terms := make(map[string]bool)
	for _, a := range args {
		if err := addTerms(terms, c.Stdin(), a); err != nil {
			return err
		}
	}

	ls := make([]string, 0, len(terms))
	for nm := range terms {
		ls = append(ls, nm)
	}
	slices.Sort(ls)
	for _, nm := range ls {
		fmt.Fprintf(c.Stdout(), "%s\n", nm)
	}
	return nil
}

func addTerms(terms map[string]bool, r io.Reader, name string) error {
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("while reading file %q: %v", name, err)
	}
	trees, err := newick.ParseAll(string(d))
	if err != nil {
		return fmt.Errorf("while reading file %q: %v", name, err)
	}
	for _, t := range trees {
		for _, nm := range t.TermNames() {
			terms[nm] = true
		}
	}
	return nil
}
