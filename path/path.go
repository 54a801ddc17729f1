// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package path implements traversal of nested JSON values.
//
// A path is a sequence of object keys and array offsets that describes a
// route from the root of a value. For example, given the value
//
//	[{"a": 1, "b": 2}, {"c": {"d": true}, "e": false}]
//
// the path
//
//	path.Get(v, 1, "c", "d")
//
// yields the value true.
package path

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/rijson"
)

// Get traverses a sequence of nested object keys or array offsets from v, and
// returns the value at the end of the path. If no keys are given, Get returns
// v. Each key must be a string (an object key) or an int (an array offset).
// Negative offsets select from the end of the array. An int key applied to an
// object selects the member whose key is its decimal representation.
func Get(v rijson.Value, keys ...any) (rijson.Value, error) {
	cur := v
	for i, key := range keys {
		next, err := step(cur, key)
		if err != nil {
			return nil, fmt.Errorf("path %s: %w", Format(keys[:i+1]...), err)
		}
		cur = next
	}
	return cur, nil
}

func step(v rijson.Value, key any) (rijson.Value, error) {
	switch t := key.(type) {
	case string:
		return with(v, func(obj rijson.Object) (rijson.Value, error) {
			mem, ok := obj[t]
			if !ok {
				return nil, fmt.Errorf("key %q not found", t)
			}
			return mem, nil
		})
	case int:
		if obj, ok := v.(rijson.Object); ok {
			return step(obj, strconv.Itoa(t))
		}
		return with(v, func(a rijson.Array) (rijson.Value, error) {
			idx := t
			if idx < 0 {
				idx += len(a)
			}
			if idx < 0 || idx >= len(a) {
				return nil, fmt.Errorf("index %d out of range (0..%d)", t, len(a))
			}
			return a[idx], nil
		})
	default:
		return nil, fmt.Errorf("invalid path element %T", key)
	}
}

func with[T rijson.Value](v rijson.Value, f func(T) (rijson.Value, error)) (rijson.Value, error) {
	if v == nil {
		return nil, errors.New("value is nil")
	}
	tv, ok := v.(T)
	if !ok {
		var zero T
		return nil, fmt.Errorf("got %v, want %v", v.Kind(), zero.Kind())
	}
	return f(tv)
}

// Parse parses a dotted selector such as "items.0.name" into path keys.
// Elements that are decimal integers, optionally signed, become int keys;
// all others become string keys. The empty string yields an empty path.
func Parse(s string) []any {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ".")
	keys := make([]any, len(parts))
	for i, p := range parts {
		if n, err := strconv.Atoi(p); err == nil {
			keys[i] = n
		} else {
			keys[i] = p
		}
	}
	return keys
}

// Format renders keys as a dotted selector, the inverse of Parse.
func Format(keys ...any) string {
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = fmt.Sprint(key)
	}
	return strings.Join(parts, ".")
}
