// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import "testing"

func TestLexer(t *testing.T) {
	tests := map[string]struct {
		in    string
		items []item
	}{
		"simple": {
			in: "(A,B)C;",
			items: []item{
				{itemOpen, "(", 0},
				{itemLabel, "A", 1},
				{itemComma, ",", 2},
				{itemLabel, "B", 3},
				{itemClose, ")", 4},
				{itemLabel, "C", 5},
				{itemSemicolon, ";", 6},
				{itemEOF, "", 7},
			},
		},
		"lengths": {
			in: "A:0.1;",
			items: []item{
				{itemLabel, "A", 0},
				{itemColon, ":", 1},
				{itemLabel, "0.1", 2},
				{itemSemicolon, ";", 5},
				{itemEOF, "", 6},
			},
		},
		"quoted": {
			in: "'Homo sapiens';",
			items: []item{
				{itemQuoted, "Homo sapiens", 0},
				{itemSemicolon, ";", 14},
				{itemEOF, "", 15},
			},
		},
		"quote escape": {
			in: "'don''t';",
			items: []item{
				{itemQuoted, "don't", 0},
				{itemSemicolon, ";", 8},
				{itemEOF, "", 9},
			},
		},
		"double quotes": {
			in: `"X 1";`,
			items: []item{
				{itemQuoted, "X 1", 0},
				{itemSemicolon, ";", 5},
				{itemEOF, "", 6},
			},
		},
		"spaces": {
			in: " (A ,\n\tB) ;\n",
			items: []item{
				{itemOpen, "(", 1},
				{itemLabel, "A", 2},
				{itemComma, ",", 4},
				{itemLabel, "B", 7},
				{itemClose, ")", 8},
				{itemSemicolon, ";", 10},
				{itemEOF, "", 12},
			},
		},
		"comment": {
			in: "A[a comment];",
			items: []item{
				{itemLabel, "A", 0},
				{itemSemicolon, ";", 12},
				{itemEOF, "", 13},
			},
		},
	}

	for name, test := range tests {
		lx := lex(test.in)
		for i, want := range test.items {
			got := lx.nextItem()
			if got != want {
				t.Errorf("%s: item %d: got %v %q at %d, want %v %q at %d", name, i, got.typ, got.val, got.pos, want.typ, want.val, want.pos)
			}
			if got.typ == itemEOF || got.typ == itemError {
				break
			}
		}
	}
}

func TestLexerError(t *testing.T) {
	tests := map[string]string{
		"unterminated quote":   "'Homo sapiens;",
		"unterminated comment": "A[no end;",
	}
	for name, in := range tests {
		lx := lex(in)
		found := false
		for {
			it := lx.nextItem()
			if it.typ == itemError {
				found = true
				break
			}
			if it.typ == itemEOF {
				break
			}
		}
		if !found {
			t.Errorf("%s: expecting a lexer error", name)
		}
	}
}
