// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package rijson_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/creachadair/rijson"
	"github.com/google/go-cmp/cmp"
)

// streamAll pulls from p until it reports an error, and returns a transcript
// of the objects it produced followed by the terminal outcome.
func streamAll(t *testing.T, p *rijson.Parser) []string {
	t.Helper()
	var out []string
	for i := 0; i < 1000; i++ {
		obj, err := p.Next()
		if err == io.EOF {
			return append(out, ".")
		} else if err != nil {
			return append(out, "error: "+err.Error())
		}
		out = append(out, obj.String())
	}
	t.Fatal("Stream did not terminate")
	return nil
}

func TestStream(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"."}},
		{"   \n ", []string{"."}},
		{"[]", []string{"."}},
		{"[", []string{"."}},
		{`[{"a":1},{"b":2}]`, []string{`{"a": 1}`, `{"b": 2}`, "."}},
		{`[{"a":1} {"b":2}]`, []string{`{"a": 1}`, `{"b": 2}`, "."}},
		{`[,,{"a":1},,]`, []string{`{"a": 1}`, "."}},
		{`[{"a":1}`, []string{`{"a": 1}`, "."}},
		{`[{"a":1}] [{"b":2}]`, []string{`{"a": 1}`, "."}},
		{`[{"x": [1, {"y": null}], "z": "w"}]`, []string{`{"x": [1, {"y": null}], "z": "w"}`, "."}},

		// Errors end the stream.
		{`{"a":1}`, []string{`error: at 1:0: unexpected "{" at start of stream, want "["`}},
		{`?`, []string{`error: at 1:0: illegal character '?'`}},
		{`[{"a":1,}]`, []string{`error: at 1:8: missing key or value before "}"`}},
		{`[{}, {"a":1}]`, []string{`error: at 1:2: missing key or value before "}"`}},
		{`[{"a":1}, {"":2}]`, []string{`{"a": 1}`, `error: at 1:15: missing key or value before "}"`}},
		{`[{"a":1}, 2, {"b":2}]`, []string{`{"a": 1}`, `error: at 1:10: unexpected 2 in stream`}},
		{`[{"a":1}, [], {"b":2}]`, []string{`{"a": 1}`, `error: at 1:10: unexpected "[" in stream`}},
		{`[{"a":1}, {"b":}, {"c":3}]`, []string{`{"a": 1}`, `error: at 1:15: missing key or value before "}"`}},
		{`[{"a":1}, {"b":2`, []string{`{"a": 1}`, `error: at 1:16: unexpected end of input in object`}},
		{`[{"a":1}, nul]`, []string{`{"a": 1}`, `error: at 1:10: invalid keyword "nul"`}},
		{`[{"a":"b`, []string{`error: at 1:6: unterminated string`}},
	}
	for _, test := range tests {
		got := streamAll(t, rijson.NewParser([]rune(test.input)))
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nStream: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestStreamValues(t *testing.T) {
	p := rijson.NewParser([]rune(`[{"a":1},{"b":2}]`))
	var got []rijson.Object
	for {
		obj, err := p.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		got = append(got, obj)
	}
	want := []rijson.Object{{"a": num("1")}, {"b": num("2")}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Objects: (-want, +got)\n%s", diff)
	}
	if err := p.Err(); err != nil {
		t.Errorf("Err: got %v, want nil", err)
	}
}

func TestStreamTerminal(t *testing.T) {
	t.Run("EOF", func(t *testing.T) {
		p := rijson.NewParser([]rune(`[{"a":1}] [{"b":2}]`))
		if _, err := p.Next(); err != nil {
			t.Fatalf("Next: unexpected error: %v", err)
		}
		for i := range 5 {
			if obj, err := p.Next(); err != io.EOF {
				t.Errorf("Pull %d: got (%v, %v), want EOF", i+1, obj, err)
			}
		}
	})
	t.Run("Error", func(t *testing.T) {
		p := rijson.NewParser([]rune(`[{"a":1,}, {"b":2}]`))
		_, first := p.Next()
		if !errors.Is(first, rijson.MissingMember) {
			t.Fatalf("Next: got %v, want %v", first, rijson.MissingMember)
		}
		for i := range 5 {
			if obj, err := p.Next(); obj != nil || err != first {
				t.Errorf("Pull %d: got (%v, %v), want (nil, %v)", i+1, obj, err, first)
			}
		}
		if err := p.Err(); err != first {
			t.Errorf("Err: got %v, want %v", err, first)
		}
	})
}

func TestStreamAll(t *testing.T) {
	const input = `[{"n": 1}, {"n": 2}, {"n": 3}, ]`

	t.Run("Complete", func(t *testing.T) {
		var got []string
		for obj, err := range rijson.NewParser([]rune(input)).All() {
			if err != nil {
				t.Fatalf("All: unexpected error: %v", err)
			}
			got = append(got, obj["n"].String())
		}
		if diff := cmp.Diff([]string{"1", "2", "3"}, got); diff != "" {
			t.Errorf("All: (-want, +got)\n%s", diff)
		}
	})
	t.Run("Break", func(t *testing.T) {
		p := rijson.NewParser([]rune(input))
		for obj := range p.All() {
			if obj["n"] != num("1") {
				t.Errorf("First object: got %v", obj)
			}
			break
		}
		obj, err := p.Next()
		if err != nil || obj["n"] != num("2") {
			t.Errorf("Next after break: got (%v, %v), want n=2", obj, err)
		}
	})
	t.Run("Error", func(t *testing.T) {
		var got []string
		for obj, err := range rijson.NewParser([]rune(`[{"a":1}, {"b"}]`)).All() {
			if err != nil {
				got = append(got, fmt.Sprintf("error: %v", err))
			} else {
				got = append(got, obj.String())
			}
		}
		want := []string{`{"a": 1}`, `error: at 1:14: missing key or value before "}"`}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("All: (-want, +got)\n%s", diff)
		}
	})
}

func TestStreamDepth(t *testing.T) {
	p := rijson.NewParser([]rune(`[{"a": 1}, {"a": {"b": 2}}]`))
	p.SetMaxDepth(2)
	if _, err := p.Next(); err != nil {
		t.Fatalf("Next 1: unexpected error: %v", err)
	}
	if _, err := p.Next(); !errors.Is(err, rijson.DepthExceeded) {
		t.Errorf("Next 2: got %v, want %v", err, rijson.DepthExceeded)
	}
}

func TestStreamContext(t *testing.T) {
	big := `{"k": [` + strings.Repeat("1,", 2000) + "1]}"
	input := "[" + big + "," + big + "]"

	ctx, cancel := context.WithCancel(context.Background())
	p := rijson.NewParser([]rune(input))
	if _, err := p.NextContext(ctx); err != nil {
		t.Fatalf("NextContext 1: unexpected error: %v", err)
	}
	cancel()
	_, err := p.NextContext(ctx)
	if !errors.Is(err, rijson.Canceled) {
		t.Fatalf("NextContext 2: got %v, want %v", err, rijson.Canceled)
	}
	if _, again := p.Next(); again != err {
		t.Errorf("Next after cancel: got %v, want %v", again, err)
	}
}

func TestStreamContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := rijson.NewParser([]rune(`[{"a": 1}, {"b": 2}]`))
	obj, err := p.NextContext(ctx)
	if !errors.Is(err, rijson.Canceled) || !errors.Is(err, context.Canceled) {
		t.Fatalf("NextContext: got (%v, %v), want %v", obj, err, rijson.Canceled)
	}
	if again, aerr := p.Next(); again != nil || aerr != err {
		t.Errorf("Next after cancel: got (%v, %v), want (nil, %v)", again, aerr, err)
	}
	if got := p.Err(); got != err {
		t.Errorf("Err: got %v, want %v", got, err)
	}
}
