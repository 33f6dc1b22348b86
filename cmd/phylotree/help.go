// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(countFilesGuide)
	app.Add(newickFilesGuide)
}

var newickFilesGuide = &command.Command{
	Usage: "newick-files",
	Short: "about Newick tree files",
	Long: `
PhyloTree reads and writes phylogenetic trees in the Newick (parenthetical)
format, a text format in which a subtree is either a leaf name or a list of
subtrees between parentheses, and each tree ends with a semicolon:

	((A:0.1,B:0.2):0.05,C:0.3);

A name can be followed by a colon and the length of the branch that connects
the node with its parent. A missing branch length means that the length is
unknown, which is different from a zero length branch.

Names with spaces or punctuation must be quoted:

	('Homo sapiens':6.5,'Pan troglodytes':6.5);

Internal nodes can have a label after the closing parenthesis. By default, a
numeric label is interpreted as a support value (for example, a bootstrap
proportion), following the most common usage:

	((A,B)95,(C,D)87);

Support values can also appear after a second colon, following the branch
length ("label:length:support"). Commands reading trees accept the flag
--support with one of the following values:

	auto    detect support values (the default)
	label   numeric internal labels are names, not support values
	length  support values only appear after the branch length

A file can contain more than one tree; each tree ends in a semicolon.
Polytomies (nodes with more than two children) are valid.
	`,
}

var countFilesGuide = &command.Command{
	Usage: "count-files",
	Short: "about taxon count files",
	Long: `
Several PhyloTree commands attach external per-taxon values, such as the
number of genes of a species in an orthologous group, to the leaves of a
tree. These values are stored in a tab-delimited file with the following
columns:

	-name   the taxon name
	-count  an integer value

Any other columns will be ignored.

Here is an example file:

	# gene counts
	name	count
	Homo sapiens	23
	Pan troglodytes	21
	Mus musculus	19

The taxon names do not need to be identical to the leaf names of the tree:
the names are matched first by case-insensitive equality, then by
containment, and finally by the genus (the first word of the name). As the
loose rules can produce false positives, the matched name is stored in the
"count_source" attribute of the annotated node, so the assignment can always
be audited.
	`,
}
