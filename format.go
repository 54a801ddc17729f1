// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package rijson

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"slices"
	"text/tabwriter"
)

// A Formatter carries the settings for pretty-printing values.
// A zero value is ready for use with default settings.
type Formatter struct {
	// Indent is the indentation added for each level of nesting.
	// If empty, two spaces are used.
	Indent string

	// MaxLineItems is the largest number of elements an array may have and
	// still be rendered on a single line. If zero, 3 is used.
	MaxLineItems int
}

func (f Formatter) indent() string {
	if f.Indent == "" {
		return "  "
	}
	return f.Indent
}

func (f Formatter) maxLineItems() int {
	if f.MaxLineItems <= 0 {
		return 3
	}
	return f.MaxLineItems
}

// Format renders a pretty-printed representation of v to w with default
// settings.
func Format(w io.Writer, v Value) error {
	var f Formatter
	return f.Format(w, v)
}

// FormatToString formats v to a string with default settings.
// In case of error in formatting, it returns an empty string.
func FormatToString(v Value) string {
	var buf bytes.Buffer
	if Format(&buf, v) != nil {
		return ""
	}
	return buf.String()
}

// Format renders a pretty-printed representation of v to w using the settings
// from f. Simple values are kept on one line, and the scalar members of an
// object are aligned in a column.
func (f Formatter) Format(w io.Writer, v Value) error {
	tw := tabwriter.NewWriter(w, 4, 4, 1, ' ', tabwriter.StripEscape)
	f.formatValue(tw, v, "", "")
	return tw.Flush()
}

type writeFlusher interface {
	io.Writer
	Flush() error
}

// formatValue writes a representation of v to w, prefixed by init. Nested
// lines are indented by indent.
func (f Formatter) formatValue(w writeFlusher, v Value, init, indent string) {
	switch t := v.(type) {
	case Array:
		f.formatArray(w, t, init, indent)
	case Object:
		f.formatObject(w, t, init, indent)
	case String, Number, Bool, Null:
		fmt.Fprint(w, init, escaped(t.String()))
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}

func (f Formatter) formatArray(w writeFlusher, a Array, init, indent string) {
	if f.isBoring(a) {
		fmt.Fprint(w, init, "[")
		for i, v := range a {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			f.formatValue(w, v, "", "")
		}
		io.WriteString(w, "]")
		return
	}

	fmt.Fprint(w, init, "[\n")
	adent := indent + f.indent()
	for i, v := range a {
		f.formatValue(w, v, adent, adent)
		io.WriteString(w, sep(i, len(a)))
	}
	w.Flush()
	fmt.Fprint(w, indent, "]")
}

func (f Formatter) formatObject(w writeFlusher, o Object, init, indent string) {
	keys := slices.Sorted(maps.Keys(o))
	if f.isBoring(o) {
		fmt.Fprint(w, init, "{")
		for i, key := range keys {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			fmt.Fprint(w, escaped(Quote(key)), ": ")
			f.formatValue(w, o[key], "", "")
		}
		io.WriteString(w, "}")
		return
	}

	fmt.Fprint(w, init, "{\n")
	mdent := indent + f.indent()
	for i, key := range keys {
		v := o[key]
		fmt.Fprint(w, mdent, escaped(Quote(key)), f.objSep(v))
		f.formatValue(w, v, "", mdent)
		io.WriteString(w, sep(i, len(keys)))
	}
	w.Flush()
	fmt.Fprint(w, indent, "}")
}

// objSep returns a key-value separator for the given value.
// Boring values get indented so they line up in columns;
// non-boring values are stapled directly to the key.
func (f Formatter) objSep(v Value) string {
	if f.isBoring(v) {
		return ":\t"
	}
	return ": "
}

// isBoring reports whether v has a simple enough structure that it can be
// rendered on one line.
func (f Formatter) isBoring(v Value) bool {
	switch t := v.(type) {
	case Array:
		if len(t) > f.maxLineItems() {
			return false
		}
		for _, elt := range t {
			if !f.isBoring(elt) {
				return false
			}
		}
		return true
	case Object:
		if len(t) > 1 {
			return false
		}
		for _, elt := range t {
			if !f.isBoring(elt) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// sep returns the text that ends element i of n in a multi-line rendering.
func sep(i, n int) string {
	if i+1 < n {
		return ",\n"
	}
	return "\n"
}

// escaped brackets s so the tabwriter copies it through uninterpreted.
func escaped(s string) string {
	const esc = "\xff" // tabwriter.Escape
	return esc + s + esc
}
