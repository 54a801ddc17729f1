// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

// Quote encodes src as the body of a string literal, without the enclosing
// quotation marks. Only runes with an entry in the escape table are escaped;
// everything else is copied through unchanged, so that scanning the result
// recovers src exactly.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	putByte := func(bs ...byte) { buf = append(buf, bs...) }

	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		switch {
		case r == '\\' || r == '"':
			putByte('\\', byte(r))
		case r < ' ' && controlEsc[r] != 0:
			putByte('\\', controlEsc[r])
		case r == utf8.RuneError && n <= 1:
			putByte(src.At(0))
			n = 1
		default:
			var rbuf [utf8.UTFMax]byte
			putByte(rbuf[:utf8.EncodeRune(rbuf[:], r)]...)
		}
		src = src.SliceFrom(n)
	}
	return buf
}
