// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"io"
	"strconv"
	"strings"

	"github.com/js-arias/phylotree/tree"
)

// Write writes a tree as a Newick string,
// terminated by a semicolon and a newline.
//
// Support values of unnamed internal nodes
// are written as node labels;
// support values of named nodes
// are written after the branch length
// (the "label:length:support" form),
// so that the output can be read back
// with the automatic support detection.
func Write(w io.Writer, t *tree.Node) error {
	var sb strings.Builder
	writeNode(&sb, t)
	sb.WriteString(";\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// String returns the tree as a Newick string.
func String(t *tree.Node) string {
	var sb strings.Builder
	writeNode(&sb, t)
	sb.WriteString(";")
	return sb.String()
}

func writeNode(sb *strings.Builder, n *tree.Node) {
	if !n.IsTerm() {
		sb.WriteString("(")
		for i, c := range n.Children {
			if i > 0 {
				sb.WriteString(",")
			}
			writeNode(sb, c)
		}
		sb.WriteString(")")
	}

	asLabel := false
	if n.Name != "" {
		name := quote(n.Name)
		if !n.IsTerm() && name == n.Name {
			// A bare numeric label on an internal node
			// would read back as a support value.
			if _, err := strconv.ParseFloat(name, 64); err == nil {
				name = "'" + name + "'"
			}
		}
		sb.WriteString(name)
	} else if n.Support != nil && !n.IsTerm() {
		sb.WriteString(formatNum(*n.Support))
		asLabel = true
	}

	if n.Length != nil {
		sb.WriteString(":")
		sb.WriteString(formatNum(*n.Length))
	}
	if n.Support != nil && !asLabel && n.Length != nil {
		sb.WriteString(":")
		sb.WriteString(formatNum(*n.Support))
	}
}

// quote returns a label,
// quoted only if it contains characters
// with a special meaning in the format.
func quote(name string) string {
	if !strings.ContainsAny(name, bareBanned+" \t\n\r") {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
