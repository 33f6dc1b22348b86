// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package match

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/js-arias/phylotree/tree"
)

// Counts is a collection of per-taxon counts
// (for example the number of genes of a species
// inside an orthologous group),
// indexed by taxon name.
type Counts map[string]int

// ReadCounts reads a collection of counts
// from a TSV file.
//
// The TSV must contain the following columns:
//
//   - name, the taxon name
//   - count, an integer value
//
// Any other columns will be ignored.
// Here is an example file:
//
//	# gene counts
//	name	count
//	Homo sapiens	23
//	Pan troglodytes	21
//	Mus musculus	19
func ReadCounts(r io.Reader) (Counts, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		fields[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, h := range []string{"name", "count"} {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	c := make(Counts)
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		name := strings.Join(strings.Fields(row[fields["name"]]), " ")
		if name == "" {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(row[fields["count"]]))
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, "count", err)
		}
		c[name] = v
	}
	return c, nil
}

// Names returns the sorted taxon names of the counts.
func (c Counts) Names() []string {
	names := make([]string, 0, len(c))
	for nm := range c {
		names = append(names, nm)
	}
	slices.Sort(names)
	return names
}

// TSV writes the counts as a TSV file.
func (c Counts) TSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# taxon counts\n")

	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	if err := tsv.Write([]string{"name", "count"}); err != nil {
		return err
	}
	for _, nm := range c.Names() {
		row := []string{nm, strconv.Itoa(c[nm])}
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

// Assign matches the counts to the leaves of a tree
// and returns an annotation map
// (node ID to key-value attributes)
// with a "count" attribute
// for every matched leaf.
// If a leaf was matched by a loose rule,
// a "count_source" attribute stores the name
// of the matched taxon.
// Unmatched leaves are simply absent from the map.
func (c Counts) Assign(t *tree.Node, m Matcher) map[int]map[string]string {
	names := c.Names()
	ann := make(map[int]map[string]string)
	for _, lf := range t.Terms() {
		src, ok := m.Match(lf.Name, names)
		if !ok {
			continue
		}
		kv := map[string]string{"count": strconv.Itoa(c[src])}
		if normalize(src) != normalize(lf.Name) {
			kv["count_source"] = src
		}
		ann[lf.ID] = kv
	}
	return ann
}
