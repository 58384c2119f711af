package emit

import (
	"reflect"
	"testing"
)

func TestSequenceOf(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "string", "string[]"},
		{"named", "Order", "Order[]"},
		{"union wrapped", "string | number", "(string | number)[]"},
		{"already wrapped", "(string | number)", "(string | number)[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sequenceOf(tt.in); got != tt.want {
				t.Errorf("sequenceOf(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNamedRef(t *testing.T) {
	if got := namedRef(""); got != AnyType {
		t.Errorf("namedRef(\"\") = %q, want %q", got, AnyType)
	}
	if got := namedRef("User"); got != "User" {
		t.Errorf("namedRef(User) = %q", got)
	}
}

func TestLiteralUnion(t *testing.T) {
	tests := []struct {
		name   string
		values []any
		want   string
	}{
		{"strings", []any{"a", "b"}, `"a" | "b"`},
		{"numbers", []any{float64(1), float64(2)}, "1 | 2"},
		{"ints from yaml", []any{1, 2}, "1 | 2"},
		{"mixed", []any{"on", float64(0), true, nil}, `"on" | 0 | true | null`},
		{"single", []any{"only"}, `"only"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := literalUnion(tt.values); got != tt.want {
				t.Errorf("literalUnion(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestJSDoc(t *testing.T) {
	if got := jsdoc("one line"); !reflect.DeepEqual(got, []string{"/** one line */"}) {
		t.Errorf("jsdoc single line = %q", got)
	}
	got := jsdoc("first\n\nthird")
	want := []string{"/**", " * first", " *", " * third", " */"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("jsdoc multi line = %q, want %q", got, want)
	}
}
