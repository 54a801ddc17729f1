// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles the backslash escapes of string literals.
package escape

var unescape = [...]rune{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Lookup reports the rune denoted by the escape sequence `\r`.  If r does not
// name a known escape, Lookup returns 0, false and the caller must keep the
// sequence as written.
func Lookup(r rune) (rune, bool) {
	if r < 0 || int(r) >= len(unescape) || unescape[r] == 0 {
		return 0, false
	}
	return unescape[r], true
}
