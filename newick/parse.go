// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package newick implements reading and writing
// of phylogenetic trees in the Newick
// (parenthetical) format.
//
// The format used is roughly equivalent
// to the conventions established at
// <http://evolution.genetics.washington.edu/phylip/newick_doc.html>,
// with single or double quoted labels,
// polytomies,
// bracketed comments,
// and support values either as internal node labels
// or after the branch length
// (the "label:length:support" extended form).
package newick

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/js-arias/phylotree/tree"
)

// A ParseError is an error found
// while parsing a Newick string.
// Offset is the byte offset
// of the offending token.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("newick: at byte %d: %s", e.Offset, e.Msg)
}

// Convention indicates the position
// of node support values
// in a Newick string.
type Convention int

const (
	// SupportAuto detects support values heuristically:
	// an unquoted numeric label
	// just after a closing parenthesis
	// is read as a support value,
	// and a second number after the branch length
	// is read as a support value.
	SupportAuto Convention = iota

	// SupportAsLabel reads internal node labels
	// always as names,
	// even if they are numeric.
	SupportAsLabel

	// SupportAfterLength reads internal node labels
	// as names,
	// and expects support values
	// after a second colon
	// following the branch length.
	SupportAfterLength
)

// Default guards against pathological input.
const (
	DefMaxDepth = 10_000
	DefMaxNodes = 1_000_000
)

// A Reader reads trees from Newick strings.
// The zero value is a reader
// with the default guards
// and automatic support detection.
type Reader struct {
	// MaxDepth is the maximum nesting depth
	// accepted by the reader.
	// If zero,
	// DefMaxDepth will be used.
	MaxDepth int

	// MaxNodes is the maximum number of nodes
	// accepted by the reader.
	// If zero,
	// DefMaxNodes will be used.
	MaxNodes int

	// Support indicates the position
	// of the support values.
	Support Convention
}

// Parse reads a single tree from a Newick string
// using the default reader.
func Parse(text string) (*tree.Node, error) {
	var r Reader
	return r.Parse(text)
}

// ParseAll reads all trees from a Newick string
// using the default reader.
func ParseAll(text string) ([]*tree.Node, error) {
	var r Reader
	return r.ParseAll(text)
}

// Parse reads a single tree from a Newick string.
// Any text after the first semicolon is ignored.
func (r Reader) Parse(text string) (*tree.Node, error) {
	p := r.newParser(text)
	return p.parseTree()
}

// ParseAll reads all trees from a Newick string.
// Trees are separated by semicolons.
func (r Reader) ParseAll(text string) ([]*tree.Node, error) {
	p := r.newParser(text)

	var trees []*tree.Node
	for {
		if tk := p.peek(); tk.typ == itemEOF {
			break
		}
		t, err := p.parseTree()
		if err != nil {
			return nil, err
		}
		trees = append(trees, t)
	}
	if len(trees) == 0 {
		return nil, &ParseError{Offset: 0, Msg: "empty input"}
	}
	return trees, nil
}

type parser struct {
	lx       *lexer
	peeked   *item
	maxDepth int
	maxNodes int
	support  Convention
	nodes    int
}

func (r Reader) newParser(text string) *parser {
	p := &parser{
		lx:       lex(text),
		maxDepth: r.MaxDepth,
		maxNodes: r.MaxNodes,
		support:  r.Support,
	}
	if p.maxDepth <= 0 {
		p.maxDepth = DefMaxDepth
	}
	if p.maxNodes <= 0 {
		p.maxNodes = DefMaxNodes
	}
	return p
}

func (p *parser) next() item {
	if p.peeked != nil {
		it := *p.peeked
		p.peeked = nil
		return it
	}
	return p.lx.nextItem()
}

func (p *parser) peek() item {
	if p.peeked == nil {
		it := p.lx.nextItem()
		p.peeked = &it
	}
	return *p.peeked
}

func (p *parser) errorf(it item, format string, values ...any) error {
	if it.typ == itemError {
		return &ParseError{Offset: it.pos, Msg: it.val}
	}
	return &ParseError{Offset: it.pos, Msg: fmt.Sprintf(format, values...)}
}

func (p *parser) parseTree() (*tree.Node, error) {
	if tk := p.peek(); tk.typ == itemEOF {
		return nil, p.errorf(tk, "empty input")
	}

	root, err := p.parseSubtree(0)
	if err != nil {
		return nil, err
	}

	tk := p.next()
	if tk.typ != itemSemicolon {
		return nil, p.errorf(tk, "unexpected %s, expecting ';'", tk.typ)
	}
	root.Renumber()
	return root, nil
}

func (p *parser) parseSubtree(depth int) (*tree.Node, error) {
	if depth > p.maxDepth {
		return nil, p.errorf(p.peek(), "maximum nesting depth (%d) exceeded", p.maxDepth)
	}
	p.nodes++
	if p.nodes > p.maxNodes {
		return nil, p.errorf(p.peek(), "maximum number of nodes (%d) exceeded", p.maxNodes)
	}

	n := &tree.Node{}
	tk := p.peek()
	switch tk.typ {
	case itemOpen:
		p.next()
		if tk := p.peek(); tk.typ == itemClose {
			return nil, p.errorf(tk, "empty subtree")
		}
		for {
			c, err := p.parseSubtree(depth + 1)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, c)

			tk := p.next()
			if tk.typ == itemComma {
				continue
			}
			if tk.typ == itemClose {
				break
			}
			return nil, p.errorf(tk, "unexpected %s, expecting ',' or ')'", tk.typ)
		}
		if err := p.parseLabel(n, true); err != nil {
			return nil, err
		}
	case itemLabel, itemQuoted:
		if err := p.parseLabel(n, false); err != nil {
			return nil, err
		}
	default:
		return nil, p.errorf(tk, "unexpected %s, expecting a subtree", tk.typ)
	}
	return n, nil
}

// parseLabel reads the optional name,
// branch length,
// and support value
// that follow a subtree.
func (p *parser) parseLabel(n *tree.Node, internal bool) error {
	switch tk := p.peek(); tk.typ {
	case itemQuoted:
		p.next()
		n.Name = tk.val
	case itemLabel:
		p.next()
		v, err := strconv.ParseFloat(tk.val, 64)
		if internal && p.support == SupportAuto && err == nil {
			n.Support = &v
		} else {
			n.Name = strings.TrimSpace(tk.val)
		}
	}

	if tk := p.peek(); tk.typ == itemColon {
		p.next()
		v, pos, err := p.parseNumber("branch length")
		if err != nil {
			return err
		}
		if v < 0 {
			return &ParseError{Offset: pos, Msg: fmt.Sprintf("negative branch length: %g", v)}
		}
		n.Length = &v
	}

	if tk := p.peek(); tk.typ == itemColon {
		if p.support == SupportAsLabel {
			return p.errorf(tk, "unexpected ':'")
		}
		p.next()
		v, _, err := p.parseNumber("support value")
		if err != nil {
			return err
		}
		n.Support = &v
	}
	return nil
}

func (p *parser) parseNumber(kind string) (float64, int, error) {
	tk := p.next()
	if tk.typ != itemLabel {
		return 0, tk.pos, p.errorf(tk, "unexpected %s, expecting a %s", tk.typ, kind)
	}
	v, err := strconv.ParseFloat(tk.val, 64)
	if err != nil {
		return 0, tk.pos, p.errorf(tk, "invalid %s: %q", kind, tk.val)
	}
	return v, tk.pos, nil
}
