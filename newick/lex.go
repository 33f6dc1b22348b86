// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type itemType int

const (
	itemError itemType = iota
	itemEOF
	itemOpen      // '('
	itemClose     // ')'
	itemComma     // ','
	itemColon     // ':'
	itemSemicolon // ';'
	itemLabel     // an unquoted label (names and numbers)
	itemQuoted    // a quoted label, already unquoted
)

// Characters that end an unquoted label.
const bareBanned = "()[]{},:;'\""

type item struct {
	typ itemType
	val string
	pos int // byte offset of the start of the item
}

type stateFn func(lx *lexer) stateFn

// A lexer scans a Newick string
// and emits a stream of tokens.
// The grammar itself lives in the parser;
// the lexer only knows about delimiters,
// quoted labels and unquoted labels.
type lexer struct {
	input string
	start int
	pos   int
	width int
	state stateFn
	items chan item
}

func lex(input string) *lexer {
	return &lexer{
		input: input,
		state: lexToken,
		items: make(chan item, 10),
	}
}

func (lx *lexer) nextItem() item {
	for {
		select {
		case it := <-lx.items:
			return it
		default:
			lx.state = lx.state(lx)
		}
	}
}

const eof rune = 0

func (lx *lexer) next() rune {
	if lx.pos >= len(lx.input) {
		lx.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(lx.input[lx.pos:])
	lx.width = w
	lx.pos += w
	return r
}

// backup steps back one rune.
// It can be called only once per call of next.
func (lx *lexer) backup() {
	lx.pos -= lx.width
}

// ignore skips over the pending input before this point.
func (lx *lexer) ignore() {
	lx.start = lx.pos
}

func (lx *lexer) emit(typ itemType) {
	lx.items <- item{typ, lx.input[lx.start:lx.pos], lx.start}
	lx.start = lx.pos
}

// emitValue emits an item with an explicit value,
// used for quoted labels
// whose value differs from the scanned text.
func (lx *lexer) emitValue(typ itemType, val string, pos int) {
	lx.items <- item{typ, val, pos}
	lx.start = lx.pos
}

func (lx *lexer) errorf(pos int, format string, values ...any) stateFn {
	lx.items <- item{itemError, fmt.Sprintf(format, values...), pos}
	return nil
}

func lexToken(lx *lexer) stateFn {
	r := lx.next()
	if isSpace(r) {
		lx.ignore()
		return lexToken
	}

	switch r {
	case eof:
		lx.emit(itemEOF)
		return nil
	case '(':
		lx.emit(itemOpen)
		return lexToken
	case ')':
		lx.emit(itemClose)
		return lexToken
	case ',':
		lx.emit(itemComma)
		return lexToken
	case ':':
		lx.emit(itemColon)
		return lexToken
	case ';':
		lx.emit(itemSemicolon)
		return lexToken
	case '[':
		return lexComment
	case '\'', '"':
		return lexQuote(lx, r)
	}
	lx.backup()
	return lexBare
}

// lexComment skips a bracketed comment,
// a common extension to the format.
func lexComment(lx *lexer) stateFn {
	pos := lx.start
	for {
		r := lx.next()
		if r == eof {
			return lx.errorf(pos, "unterminated comment")
		}
		if r == ']' {
			lx.ignore()
			return lexToken
		}
	}
}

// lexQuote scans a quoted label.
// Inside single quotes
// a quote character is escaped by doubling it.
func lexQuote(lx *lexer, quote rune) stateFn {
	return func(lx *lexer) stateFn {
		pos := lx.start
		var sb strings.Builder
		for {
			r := lx.next()
			if r == eof {
				return lx.errorf(pos, "unterminated quoted label")
			}
			if r != quote {
				sb.WriteRune(r)
				continue
			}
			if quote == '\'' {
				if lx.next() == quote {
					sb.WriteRune(quote)
					continue
				}
				lx.backup()
			}
			lx.emitValue(itemQuoted, sb.String(), pos)
			return lexToken
		}
	}
}

func lexBare(lx *lexer) stateFn {
	for {
		r := lx.next()
		if r == eof {
			break
		}
		if isSpace(r) || strings.ContainsRune(bareBanned, r) {
			lx.backup()
			break
		}
	}
	lx.emit(itemLabel)
	return lexToken
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func (typ itemType) String() string {
	switch typ {
	case itemError:
		return "error"
	case itemEOF:
		return "end of input"
	case itemOpen:
		return "'('"
	case itemClose:
		return "')'"
	case itemComma:
		return "','"
	case itemColon:
		return "':'"
	case itemSemicolon:
		return "';'"
	case itemLabel:
		return "label"
	case itemQuoted:
		return "quoted label"
	}
	panic(fmt.Sprintf("unknown item type %d", int(typ)))
}
