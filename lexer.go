// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package rijson

import (
	"strings"
	"unicode"

	"github.com/creachadair/rijson/internal/escape"
	"go4.org/mem"
)

// A Lexer reads lexical tokens from a sequence of runes. Each call to
// NextToken advances the lexer past one token and returns it.
//
// The lexer never fails: malformed input is reported as Illegal and
// InvalidKeyword tokens, and it is up to the consumer to decide whether those
// are errors.
type Lexer struct {
	input []rune

	pos  int  // offset of ch; len(input) at end of input
	next int  // offset of the next rune to read
	ch   rune // current rune, valid when pos < len(input)

	// Apparent line and column offsets (0-based) of pos.
	line, col int

	// Start of the most recent token.
	tpos, tline, tcol int
}

// NewLexer constructs a new Lexer that consumes the given input.
func NewLexer(input []rune) *Lexer {
	l := &Lexer{input: input, pos: -1}
	l.read()
	return l
}

// NextToken returns the next token of the input, and advances the lexer past
// it.  At the end of the input NextToken returns EOF, and continues to do so
// on every subsequent call.
func (l *Lexer) NextToken() Token {
	for l.more() && isSpace(l.ch) {
		l.read()
	}
	l.tpos, l.tline, l.tcol = l.pos, l.line, l.col
	if !l.more() {
		return EOF{}
	}

	var tok Token
	switch ch := l.ch; {
	case isPunct(ch):
		tok = Punct(ch)
	case ch == 'n':
		tok = l.scanKeyword(kwNull, NullLit{})
	case ch == 't':
		tok = l.scanKeyword(kwTrue, BoolLit{Value: true})
	case ch == 'f':
		tok = l.scanKeyword(kwFalse, BoolLit{Value: false})
	case isLetter(ch):
		tok = l.scanIdent(l.pos)
	case isNumStart(ch):
		tok = l.scanNumber()
	case ch == '"':
		tok = l.scanString()
	default:
		tok = Illegal{Char: ch}
	}
	l.read() // step past the last rune of the token
	return tok
}

// Location returns the complete location of the most recent token.
func (l *Lexer) Location() Location {
	return Location{
		Span:  Span{Pos: l.tpos, End: l.pos},
		First: LineCol{Line: l.tline + 1, Column: l.tcol},
		Last:  LineCol{Line: l.line + 1, Column: l.col},
	}
}

var (
	kwNull  = mem.S("null")
	kwTrue  = mem.S("true")
	kwFalse = mem.S("false")
)

// scanKeyword matches the remainder of kw against the input.  If the whole
// keyword matches and is not followed by another name rune, it returns tok.
// Otherwise it consumes the longest name beginning at the first rune and
// reports it as an InvalidKeyword.
func (l *Lexer) scanKeyword(kw mem.RO, tok Token) Token {
	start := l.pos
	for i := 1; i < kw.Len(); i++ {
		if next, ok := l.peek(); !ok || next != rune(kw.At(i)) {
			return l.scanIdent(start)
		}
		l.read()
	}
	if next, ok := l.peek(); ok && isNameRune(next) {
		return l.scanIdent(start)
	}
	return tok
}

// scanIdent consumes name runes following the current rune, and returns the
// text from start through the last rune consumed.
func (l *Lexer) scanIdent(start int) Token {
	l.readWhile(isNameRune)
	return InvalidKeyword{Text: string(l.input[start : l.pos+1])}
}

// scanNumber consumes a number: an optional minus sign, digits, an optional
// fraction, and an optional exponent with an optional sign. The text is
// reported exactly as written.
func (l *Lexer) scanNumber() Token {
	start := l.pos
	l.readWhile(isDigit)

	if next, ok := l.peek(); ok && next == '.' {
		l.read()
		l.readWhile(isDigit)
	}
	if next, ok := l.peek(); ok && (next == 'e' || next == 'E') {
		l.read()
		if sign, ok := l.peek(); ok && (sign == '+' || sign == '-') {
			l.read()
		}
		l.readWhile(isDigit)
	}
	return NumberLit{Text: string(l.input[start : l.pos+1])}
}

// scanString consumes a quoted string, resolving escape sequences.  On
// return the current rune is the closing quote, or the input is exhausted.
func (l *Lexer) scanString() Token {
	var buf strings.Builder
	l.read() // skip the open quote
	for l.more() {
		switch l.ch {
		case '"':
			return StringLit{Value: buf.String()}
		case '\\':
			l.read()
			if !l.more() {
				return StringLit{Value: buf.String(), Unterminated: true}
			}
			if r, ok := escape.Lookup(l.ch); ok {
				buf.WriteRune(r)
			} else {
				buf.WriteByte('\\')
				buf.WriteRune(l.ch)
			}
		default:
			buf.WriteRune(l.ch)
		}
		l.read()
	}
	return StringLit{Value: buf.String(), Unterminated: true}
}

// more reports whether the current rune is valid.
func (l *Lexer) more() bool { return l.pos < len(l.input) }

// read advances to the next rune of the input, if any.
func (l *Lexer) read() {
	if l.pos >= 0 && l.pos < len(l.input) {
		if l.input[l.pos] == '\n' {
			l.line++
			l.col = 0
		} else {
			l.col++
		}
	}
	l.pos = l.next
	if l.next < len(l.input) {
		l.ch = l.input[l.next]
		l.next++
	}
}

// peek returns the rune following the current one without consuming it.
func (l *Lexer) peek() (rune, bool) {
	if l.next < len(l.input) {
		return l.input[l.next], true
	}
	return 0, false
}

// readWhile consumes runes following the current rune while they match f.
// On return the current rune is the last one consumed.
func (l *Lexer) readWhile(f func(rune) bool) {
	for {
		next, ok := l.peek()
		if !ok || !f(next) {
			return
		}
		l.read()
	}
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isPunct(ch rune) bool    { return strings.ContainsRune("{}[],:", ch) }
func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }
func isLetter(ch rune) bool   { return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') }

func isNameRune(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsNumber(ch)
}
