// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package rijson

import (
	"fmt"
	"strconv"
)

// A Token is a lexical token of the JSON grammar. The concrete type of a
// Token is one of Punct, StringLit, NumberLit, BoolLit, NullLit, EOF,
// Illegal, or InvalidKeyword; no other types satisfy the interface.
type Token interface {
	fmt.Stringer

	isToken()
}

// Punct is the type of a structural punctuation token.
type Punct byte

// Constants defining the valid Punct values.
const (
	LBrace  Punct = '{' // left brace "{"
	RBrace  Punct = '}' // right brace "}"
	LSquare Punct = '[' // left square bracket "["
	RSquare Punct = ']' // right square bracket "]"
	Comma   Punct = ',' // comma ","
	Colon   Punct = ':' // colon ":"
)

func (p Punct) String() string { return strconv.Quote(string(rune(p))) }

// StringLit is a quoted string. Value holds the text with escapes resolved.
// If the input ended before the closing quotation mark, Unterminated is true
// and Value holds whatever was read up to that point.
type StringLit struct {
	Value        string
	Unterminated bool
}

func (s StringLit) String() string { return Quote(s.Value) }

// NumberLit is a number, exactly as written in the input.
type NumberLit struct{ Text string }

func (n NumberLit) String() string { return n.Text }

// BoolLit is one of the constants true or false.
type BoolLit struct{ Value bool }

func (b BoolLit) String() string { return strconv.FormatBool(b.Value) }

// NullLit is the constant null.
type NullLit struct{}

func (NullLit) String() string { return "null" }

// EOF marks the end of the input.
type EOF struct{}

func (EOF) String() string { return "EOF" }

// Illegal is a character that does not begin any token.
type Illegal struct{ Char rune }

func (c Illegal) String() string { return string(c.Char) }

// InvalidKeyword is a run of letters, digits, and underscores that is not one
// of the constants true, false, or null.
type InvalidKeyword struct{ Text string }

func (k InvalidKeyword) String() string { return k.Text }

func (Punct) isToken()          {}
func (StringLit) isToken()      {}
func (NumberLit) isToken()      {}
func (BoolLit) isToken()        {}
func (NullLit) isToken()        {}
func (EOF) isToken()            {}
func (Illegal) isToken()        {}
func (InvalidKeyword) isToken() {}
