// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// PhyloTree is a tool to manipulate phylogenetic trees
// in Newick (parenthetical) format:
// rerooting,
// annotation,
// distance matrices,
// tree comparisons,
// and 2D layouts for rendering.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phylotree/cmd/phylotree/annotate"
	"github.com/js-arias/phylotree/cmd/phylotree/cmpcmd"
	"github.com/js-arias/phylotree/cmd/phylotree/dist"
	"github.com/js-arias/phylotree/cmd/phylotree/draw"
	"github.com/js-arias/phylotree/cmd/phylotree/importcmd"
	"github.com/js-arias/phylotree/cmd/phylotree/list"
	"github.com/js-arias/phylotree/cmd/phylotree/reroot"
	"github.com/js-arias/phylotree/cmd/phylotree/serve"
	"github.com/js-arias/phylotree/cmd/phylotree/stats"
	"github.com/js-arias/phylotree/cmd/phylotree/terms"
)

var app = &command.Command{
	Usage: "phylotree <command> [<argument>...]",
	Short: "a tool to manipulate phylogenetic trees",
}

func init() {
	app.Add(annotate.Command)
	app.Add(cmpcmd.Command)
	app.Add(dist.Command)
	app.Add(draw.Command)
	app.Add(importcmd.Command)
	app.Add(list.Command)
	app.Add(reroot.Command)
	app.Add(serve.Command)
	app.Add(stats.Command)
	app.Add(terms.Command)
}

func main() {
	app.Main()
}
