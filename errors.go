// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package rijson

import "fmt"

// ErrorKind classifies the errors reported by a Parser. Each kind is itself
// an error, so the kind of a *SyntaxError can be tested with errors.Is:
//
//	if errors.Is(err, rijson.UnexpectedEOF) { ... }
type ErrorKind int

// Constants defining the valid ErrorKind values.
const (
	UnexpectedToken ErrorKind = iota + 1 // a token not valid at this point
	UnexpectedEOF                        // input ended inside a value
	MissingMember                        // "," or "}" without a key and value
	BadAdjacency                         // array element not followed by "," or "]"
	IllegalChar                          // a character that begins no token
	BadKeyword                           // a name other than true, false, null
	DepthExceeded                        // values nested too deeply
	Canceled                             // the context ended during parsing
)

var errorKindStr = [...]string{
	UnexpectedToken: "unexpected token",
	UnexpectedEOF:   "unexpected end of input",
	MissingMember:   "missing key or value",
	BadAdjacency:    "missing separator",
	IllegalChar:     "illegal character",
	BadKeyword:      "invalid keyword",
	DepthExceeded:   "nesting depth exceeded",
	Canceled:        "parsing canceled",
}

// Error satisfies the error interface.
func (k ErrorKind) Error() string {
	if k <= 0 || int(k) >= len(errorKindStr) {
		return "unknown error"
	}
	return errorKindStr[k]
}

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Kind     ErrorKind
	Location LineCol
	Message  string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping. The result includes the kind of s, and the
// underlying cause if there is one.
func (s *SyntaxError) Unwrap() []error {
	if s.err != nil {
		return []error{s.Kind, s.err}
	}
	return []error{s.Kind}
}
