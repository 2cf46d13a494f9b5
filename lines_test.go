package cwrap

import (
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	cases := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\n\n", []string{"a", ""}},
		{"\n", []string{""}},
		{"a\nb", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\r\r\n", []string{"a\r"}},
		{"a\rb", []string{"a\rb"}},
		{"    code\n\n- x", []string{"    code", "", "- x"}},
	}
	for _, tc := range cases {
		got := SplitLines(tc.input)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("SplitLines(%q)=%q want %q", tc.input, got, tc.want)
		}
	}
}

func TestSplitLinesKeepCR(t *testing.T) {
	got := SplitLines("a\r\nb\r\n", WithKeepCR(true))
	want := []string{"a\r", "b\r"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitLines keepCR=%q want %q", got, want)
	}
}
