// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package rijson

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"go4.org/mem"
)

// A Value is an arbitrary JSON value.  The concrete type of a Value is one of
// Object, Array, String, Number, Bool, or Null; no other types satisfy the
// interface.
//
// The String method of a Value renders it as JSON text. Object members are
// rendered in key order, but callers should not depend on that.
type Value interface {
	fmt.Stringer

	// Kind reports which variant the value is.
	Kind() Kind

	writeTo(*strings.Builder)
}

// Kind identifies the variant of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
)

var kindStr = [...]string{
	NullKind:   "null",
	BoolKind:   "bool",
	NumberKind: "number",
	StringKind: "string",
	ArrayKind:  "array",
	ObjectKind: "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid kind"
	}
	return kindStr[k]
}

// An Object is a collection of key-value members. Keys are unique; when the
// input repeats a key, the last value given for it is kept. The parser
// requires every member to have a non-empty key and a value, so it never
// produces an empty Object.
type Object map[string]Value

// Kind satisfies the Value interface.
func (Object) Kind() Kind { return ObjectKind }

func (o Object) String() string { return render(o) }

func (o Object) writeTo(buf *strings.Builder) {
	buf.WriteByte('{')
	for i, key := range slices.Sorted(maps.Keys(o)) {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(Quote(key))
		buf.WriteString(": ")
		o[key].writeTo(buf)
	}
	buf.WriteByte('}')
}

// An Array is an ordered sequence of values.
type Array []Value

// Kind satisfies the Value interface.
func (Array) Kind() Kind { return ArrayKind }

func (a Array) String() string { return render(a) }

func (a Array) writeTo(buf *strings.Builder) {
	buf.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			buf.WriteString(", ")
		}
		v.writeTo(buf)
	}
	buf.WriteByte(']')
}

// A String is a string value, with escapes already resolved.
type String string

// Kind satisfies the Value interface.
func (String) Kind() Kind { return StringKind }

func (s String) String() string { return Quote(string(s)) }

func (s String) writeTo(buf *strings.Builder) { buf.WriteString(Quote(string(s))) }

// A Number is a numeric value, holding the text of the number exactly as it
// was written in the input.
type Number string

// Kind satisfies the Value interface.
func (Number) Kind() Kind { return NumberKind }

func (n Number) String() string { return string(n) }

func (n Number) writeTo(buf *strings.Builder) { buf.WriteString(string(n)) }

// Int64 parses n as a base-10 integer.
func (n Number) Int64() (int64, error) { return mem.ParseInt(mem.S(string(n)), 10, 64) }

// Float64 parses n as a floating-point value.
func (n Number) Float64() (float64, error) { return mem.ParseFloat(mem.S(string(n)), 64) }

// A Bool is a Boolean constant, true or false.
type Bool bool

// Kind satisfies the Value interface.
func (Bool) Kind() Kind { return BoolKind }

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

func (b Bool) writeTo(buf *strings.Builder) { buf.WriteString(b.String()) }

// Null represents the null constant.
type Null struct{}

// Kind satisfies the Value interface.
func (Null) Kind() Kind { return NullKind }

func (Null) String() string { return "null" }

func (Null) writeTo(buf *strings.Builder) { buf.WriteString("null") }

func render(v Value) string {
	var buf strings.Builder
	v.writeTo(&buf)
	return buf.String()
}
