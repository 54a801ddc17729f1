// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package rijson

import (
	"context"
	"fmt"
)

// DefaultMaxDepth is the nesting depth limit of a new Parser.
const DefaultMaxDepth = 10000

// checkInterval is the number of tokens read between checks of the context
// given to ParseContext or NextContext.
const checkInterval = 1024

// A Parser is a recursive-descent parser that consumes tokens from a Lexer
// and constructs values. A Parser can build a single complete value (see
// Parse), or stream the objects of a top-level array one at a time (see
// Next).
type Parser struct {
	lex *Lexer

	// One token of lookahead, used to check what follows an array element.
	peeked  Token
	peekLoc Location
	loc     Location // location of the most recent token

	depth    int
	maxDepth int

	ctx  context.Context // if non-nil, checked every checkInterval tokens
	ntok int

	started, finished bool  // streaming state
	err               error // terminal streaming error
}

// NewParser constructs a new Parser that consumes the given input.
func NewParser(input []rune) *Parser { return NewParserWithLexer(NewLexer(input)) }

// NewParserWithLexer constructs a new Parser that consumes tokens from l.
func NewParserWithLexer(l *Lexer) *Parser {
	return &Parser{lex: l, maxDepth: DefaultMaxDepth}
}

// SetMaxDepth sets the maximum depth of nested objects and arrays accepted by
// p. If n <= 0, the depth is not limited.
func (p *Parser) SetMaxDepth(n int) { p.maxDepth = n }

// Parse parses a single object or array from the front of the input and
// returns it. Any other leading token, including the end of the input, is an
// error. Input following the value is not consumed. In case of error, the
// returned error has type [*SyntaxError].
func (p *Parser) Parse() (_ Value, err error) {
	defer p.recoverParseError(&err)

	p.depth = 0
	switch tok := p.next(); tok {
	case LSquare:
		return p.parseArray(), nil
	case LBrace:
		return p.parseObject(), nil
	default:
		panic(p.unexpected(tok, "at top level"))
	}
}

// ParseContext behaves as Parse, but fails with an error of kind Canceled if
// ctx ends before parsing is complete.
func (p *Parser) ParseContext(ctx context.Context) (Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, p.canceled(err)
	}
	p.ctx = ctx
	defer func() { p.ctx = nil }()
	return p.Parse()
}

// Parse parses a single object or array from s.
func Parse(s string) (Value, error) { return NewParser([]rune(s)).Parse() }

// MustParse parses a single object or array from s, and panics if parsing
// fails.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("rijson: %v", err))
	}
	return v
}

// parseObject consumes the members of an object.
// Precondition: the last token was "{".
// Postcondition: the last token was "}".
func (p *Parser) parseObject() Object {
	p.enter()
	obj := make(Object)

	var key string
	var val Value
	hasKey, wantKey := false, true
	commit := func(end Punct) {
		if !hasKey || key == "" || val == nil {
			panic(p.errorf(MissingMember, "missing key or value before %v", end))
		}
		obj[key] = val
		key, val, hasKey, wantKey = "", nil, false, true
	}

	for {
		switch tok := p.next().(type) {
		case StringLit:
			if tok.Unterminated {
				panic(p.unexpected(tok, "in object"))
			}
			if wantKey {
				key, hasKey = tok.Value, true
			} else {
				val = String(tok.Value)
			}
		case NumberLit, BoolLit, NullLit:
			val = p.scalar(tok)
		case Punct:
			switch tok {
			case Colon:
				if !wantKey || !hasKey {
					panic(p.unexpected(tok, "in object"))
				}
				wantKey = false
			case Comma:
				commit(tok)
			case RBrace:
				commit(tok)
				p.depth--
				return obj
			case LBrace:
				val = p.parseObject()
			case LSquare:
				val = p.parseArray()
			default:
				panic(p.unexpected(tok, "in object"))
			}
		default:
			panic(p.unexpected(tok, "in object"))
		}
	}
}

// parseArray consumes the elements of an array.
// Precondition: the last token was "[".
// Postcondition: the last token was "]".
func (p *Parser) parseArray() Array {
	p.enter()
	arr := Array{}
	for {
		switch tok := p.next().(type) {
		case StringLit, NumberLit, BoolLit, NullLit:
			v := p.scalar(tok)
			p.requireSeparator()
			arr = append(arr, v)
		case Punct:
			switch tok {
			case Comma:
				continue
			case RSquare:
				p.depth--
				return arr
			case LBrace:
				arr = append(arr, p.parseObject())
			case LSquare:
				arr = append(arr, p.parseArray())
			default:
				panic(p.unexpected(tok, "in array"))
			}
		default:
			panic(p.unexpected(tok, "in array"))
		}
	}
}

// scalar converts a literal token into a value.
func (p *Parser) scalar(tok Token) Value {
	switch t := tok.(type) {
	case StringLit:
		if t.Unterminated {
			panic(p.unexpected(t, ""))
		}
		return String(t.Value)
	case NumberLit:
		return Number(t.Text)
	case BoolLit:
		return Bool(t.Value)
	case NullLit:
		return Null{}
	default:
		panic(fmt.Sprintf("rijson: %T is not a literal token", tok))
	}
}

// requireSeparator checks that the token after an array element is a comma or
// a closing bracket, without consuming it. A malformed token is consumed and
// reported with its own error kind.
func (p *Parser) requireSeparator() {
	tok := p.peek()
	switch t := tok.(type) {
	case Punct:
		if t == Comma || t == RSquare {
			return
		}
	case EOF, Illegal, InvalidKeyword:
		p.next()
		panic(p.unexpected(tok, "in array"))
	case StringLit:
		if t.Unterminated {
			p.next()
			panic(p.unexpected(tok, "in array"))
		}
	}
	panic(p.errorAt(p.peekLoc, BadAdjacency, nil, "expected %v or %v after array element, got %v", Comma, RSquare, tok))
}

func (p *Parser) enter() {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		panic(p.errorf(DepthExceeded, "nesting depth exceeds %d", p.maxDepth))
	}
}

// next consumes and returns the next token.
func (p *Parser) next() Token {
	var tok Token
	if p.peeked != nil {
		tok, p.loc = p.peeked, p.peekLoc
		p.peeked = nil
	} else {
		tok = p.lex.NextToken()
		p.loc = p.lex.Location()
		p.ntok++
	}
	if p.ctx != nil && p.ntok%checkInterval == 0 {
		if err := p.ctx.Err(); err != nil {
			panic(p.canceled(err))
		}
	}
	return tok
}

// peek returns the next token without consuming it.
func (p *Parser) peek() Token {
	if p.peeked == nil {
		p.peeked = p.lex.NextToken()
		p.peekLoc = p.lex.Location()
		p.ntok++
	}
	return p.peeked
}

// unexpected reports a syntax error for a token that is not valid in the
// current production. The where text describes where the token appeared.
func (p *Parser) unexpected(tok Token, where string) *SyntaxError {
	suffix := ""
	if where != "" {
		suffix = " " + where
	}
	switch t := tok.(type) {
	case EOF:
		return p.errorf(UnexpectedEOF, "unexpected end of input%s", suffix)
	case StringLit:
		if t.Unterminated {
			return p.errorf(UnexpectedEOF, "unterminated string")
		}
	case Illegal:
		return p.errorf(IllegalChar, "illegal character %q", t.Char)
	case InvalidKeyword:
		return p.errorf(BadKeyword, "invalid keyword %q", t.Text)
	}
	return p.errorf(UnexpectedToken, "unexpected %v%s", tok, suffix)
}

// canceled reports the end of a context as an error of kind Canceled.
func (p *Parser) canceled(err error) *SyntaxError {
	loc := p.loc
	if p.ntok == 0 {
		loc = p.lex.Location()
	}
	return p.errorAt(loc, Canceled, err, "parsing canceled: %v", err)
}

func (p *Parser) errorf(kind ErrorKind, msg string, args ...any) *SyntaxError {
	return p.errorAt(p.loc, kind, nil, msg, args...)
}

func (p *Parser) errorAt(loc Location, kind ErrorKind, err error, msg string, args ...any) *SyntaxError {
	return &SyntaxError{
		Kind:     kind,
		Location: loc.First,
		Message:  fmt.Sprintf(msg, args...),
		err:      err,
	}
}

func (p *Parser) recoverParseError(errp *error) {
	if serr := recover(); serr != nil {
		if err, ok := serr.(*SyntaxError); ok {
			*errp = err
			return
		}
		panic(serr)
	}
}
