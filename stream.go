// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package rijson

import (
	"context"
	"io"
	"iter"
)

// Next parses and returns the next object from a top-level array of objects.
// Only the returned object is held in memory; the rest of the array is read
// as later calls to Next require it.
//
// Next returns io.EOF when the array is closed or the input ends. Any other
// error has type [*SyntaxError] and ends the stream: after an error, every
// later call to Next reports the same error and no more objects are read.
//
//	p := rijson.NewParser(input)
//	for {
//	   obj, err := p.Next()
//	   if err == io.EOF {
//	      break
//	   } else if err != nil {
//	      log.Fatalf("Next failed: %v", err)
//	   }
//	   log.Printf("Next object: %v", obj)
//	}
func (p *Parser) Next() (_ Object, err error) {
	if p.finished {
		if p.err != nil {
			return nil, p.err
		}
		return nil, io.EOF
	}
	defer p.recoverStreamError(&err)

	if !p.started {
		switch tok := p.next(); tok {
		case LSquare:
			p.started = true
		case EOF{}:
			p.finished = true
			return nil, io.EOF
		default:
			panic(p.unexpected(tok, "at start of stream, want \"[\""))
		}
	}
	for {
		switch tok := p.next(); tok {
		case LBrace:
			p.depth = 1 // the enclosing array
			return p.parseObject(), nil
		case Comma:
			continue
		case RSquare, EOF{}:
			p.finished = true
			return nil, io.EOF
		default:
			panic(p.unexpected(tok, "in stream"))
		}
	}
}

// NextContext behaves as Next, but fails with an error of kind Canceled if ctx
// ends before the next object is complete.
func (p *Parser) NextContext(ctx context.Context) (Object, error) {
	if err := ctx.Err(); err != nil && !p.finished {
		p.finished = true
		p.err = p.canceled(err)
		return nil, p.err
	}
	p.ctx = ctx
	defer func() { p.ctx = nil }()
	return p.Next()
}

// Err returns the error that ended the stream, or nil if the stream has not
// ended or ended without error.
func (p *Parser) Err() error { return p.err }

// All returns an iterator over the remaining objects of the stream. If the
// stream ends with an error, the iterator yields that error (with a nil
// object) as its last pair.
//
//	for obj, err := range p.All() {
//	   if err != nil {
//	      return err
//	   }
//	   process(obj)
//	}
func (p *Parser) All() iter.Seq2[Object, error] {
	return func(yield func(Object, error) bool) {
		for {
			obj, err := p.Next()
			if err == io.EOF {
				return
			} else if !yield(obj, err) || err != nil {
				return
			}
		}
	}
}

func (p *Parser) recoverStreamError(errp *error) {
	if serr := recover(); serr != nil {
		err, ok := serr.(*SyntaxError)
		if !ok {
			panic(serr)
		}
		p.finished = true
		p.err = err
		*errp = err
	}
}
