// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package rijson implements a JSON lexer and parser.
//
// # Lexing
//
// The Lexer type implements a lexical scanner for JSON. Construct a lexer
// from the input runes and call its NextToken method to iterate over the
// tokens.  NextToken returns EOF when the input has been fully consumed:
//
//	l := rijson.NewLexer([]rune(input))
//	for {
//	   tok := l.NextToken()
//	   if tok == (rijson.EOF{}) {
//	      break
//	   }
//	   log.Printf("Next token at %v: %v", l.Location(), tok)
//	}
//
// The lexer does not report errors. Characters that do not begin any token
// are returned as Illegal tokens, and names other than true, false, and null
// are returned as InvalidKeyword tokens.
//
// The lexer is more lenient than the JSON grammar: numbers may have leading
// zeroes, and a backslash followed by a character with no defined escape is
// kept as written. In particular \u escapes are not decoded.
//
// # Parsing
//
// The Parser type implements a recursive-descent parser that builds Value
// trees.  Call Parse to parse a single object or array:
//
//	p := rijson.NewParser([]rune(input))
//	v, err := p.Parse()
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// In case of error, parsing is terminated and an error of concrete type
// *rijson.SyntaxError is returned.  Use errors.Is with an ErrorKind to test
// what kind of error occurred.
//
// # Streaming
//
// When the input is an array of objects, the Next method of a Parser returns
// the objects one at a time, without holding the whole array in memory:
//
//	for obj, err := range p.All() {
//	   if err != nil {
//	      log.Fatalf("Next failed: %v", err)
//	   }
//	   log.Printf("Object: %v", obj)
//	}
//
// # Values
//
// A Value is one of Object, Array, String, Number, Bool, or Null.  Numbers
// keep the text of the input exactly as written; use the Int64 and Float64
// methods to convert them. When an object repeats a key, the last value
// given for that key wins. Objects must have at least one member, and keys
// must not be empty: both {} and {"": 1} are errors of kind MissingMember.
//
// The String method of a Value renders it compactly on one line. Use Format
// or a Formatter for multi-line output.
package rijson
