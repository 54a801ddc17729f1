// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package rijson

import (
	"github.com/creachadair/rijson/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string literal, adding double quotation marks.
// Quotation marks, backslashes, and the control characters with short escapes
// (\b, \f, \n, \r, \t) are escaped; all other runes are written as-is, so the
// result lexes back to exactly src.
func Quote(src string) string {
	buf := make([]byte, 0, len(src)+2)
	buf = append(buf, '"')
	buf = append(buf, escape.Quote(mem.S(src))...)
	return string(append(buf, '"'))
}
