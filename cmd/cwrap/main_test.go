package main

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/cwrap"
)

func TestOpenInputFileAndURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	reader, closer, err := openInputs([]string{path})
	if err != nil {
		t.Fatalf("openInputs file: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ := io.ReadAll(reader)
	if string(buf) != "hello" {
		t.Fatalf("unexpected file content: %q", string(buf))
	}

	fileURL := "file://" + path
	reader, closer, err = openInputs([]string{fileURL})
	if err != nil {
		t.Fatalf("openInputs file URL: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ = io.ReadAll(reader)
	if string(buf) != "hello" {
		t.Fatalf("unexpected file URL content: %q", string(buf))
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("stream"))
	}))
	defer srv.Close()
	reader, closer, err = openInputs([]string{srv.URL})
	if err != nil {
		t.Fatalf("openInputs http: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ = io.ReadAll(reader)
	if string(buf) != "stream" {
		t.Fatalf("unexpected http content: %q", string(buf))
	}
}

func TestOpenInputsConcatenates(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(first, []byte("one\n"), 0o644); err != nil {
		t.Fatalf("write first: %v", err)
	}
	if err := os.WriteFile(second, []byte("- two"), 0o644); err != nil {
		t.Fatalf("write second: %v", err)
	}
	reader, closer, err := openInputs([]string{first, second})
	if err != nil {
		t.Fatalf("openInputs concat: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ := io.ReadAll(reader)
	if string(buf) != "one\n- two" {
		t.Fatalf("unexpected concatenated content: %q", string(buf))
	}
}

func TestOpenInputsRejectsEmptyArgument(t *testing.T) {
	if _, _, err := openInputs([]string{"  "}); err == nil {
		t.Fatalf("expected error for empty input argument")
	}
}

func TestRunFormats(t *testing.T) {
	src := "- item one\n    let x = 1\n"
	cases := map[string]string{
		formatDump: "bullet\nspace\nword: item\nspace\nword: one\nnewline\ncode:     let x = 1\n",
		formatText: "- item one\n    let x = 1",
	}
	for format, want := range cases {
		var out bytes.Buffer
		_, err := run(strings.NewReader(src), &out, boringTheme(), 0, options{format: format})
		if err != nil {
			t.Fatalf("run %s: %v", format, err)
		}
		if out.String() != want {
			t.Fatalf("format %s\nwant: %q\n got: %q", format, want, out.String())
		}
	}
}

func TestRunPrettyPrint(t *testing.T) {
	var out bytes.Buffer
	_, err := run(strings.NewReader("hello"), &out, boringTheme(), 0, options{format: formatPP, boring: true})
	if err != nil {
		t.Fatalf("run pp: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Kind:") || !strings.Contains(got, `"hello"`) {
		t.Fatalf("unexpected pp output: %q", got)
	}
	if strings.Contains(got, "\x1b[") {
		t.Fatalf("expected uncolored pp output, got %q", got)
	}
}

func TestRunUnknownFormat(t *testing.T) {
	_, err := run(strings.NewReader("x"), io.Discard, boringTheme(), 0, options{format: "yaml"})
	if !errors.Is(err, errUsage) {
		t.Fatalf("expected errUsage, got %v", err)
	}
}

func TestCheckFormat(t *testing.T) {
	for _, format := range []string{"", "dump", "text", "pp", " PP "} {
		if err := checkFormat(format); err != nil {
			t.Fatalf("checkFormat(%q): %v", format, err)
		}
	}
	if err := checkFormat("bogus"); !errors.Is(err, errUsage) {
		t.Fatalf("expected errUsage for bogus format, got %v", err)
	}
}

func TestRunSummary(t *testing.T) {
	src := "- a b\n\n    code\nlast"
	summary, err := run(strings.NewReader(src), io.Discard, boringTheme(), 0, options{format: formatText})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := cwrap.Summarize(cwrap.Itemize(src))
	want.Lines = 4
	want.Bytes = len(src)
	if summary != want {
		t.Fatalf("summary mismatch\nwant: %+v\n got: %+v", want, summary)
	}
}

func TestRunStrictRejectsBinary(t *testing.T) {
	_, err := run(bytes.NewReader([]byte("ab\x00c")), io.Discard, boringTheme(), 0, options{format: formatText, strict: true})
	if !errors.Is(err, cwrap.ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestCountingReaderLines(t *testing.T) {
	cases := map[string]int{
		"":       0,
		"a":      1,
		"a\n":    1,
		"a\nb":   2,
		"a\n\n":  2,
		"\n\n\n": 3,
	}
	for input, want := range cases {
		c := &countingReader{r: strings.NewReader(input)}
		_, _ = io.ReadAll(c)
		if got := c.lines(); got != want {
			t.Fatalf("lines(%q)=%d want %d", input, got, want)
		}
		if got := len(cwrap.SplitLines(input)); got != want {
			t.Fatalf("SplitLines(%q) has %d lines, counting reader %d", input, got, want)
		}
	}
}

func TestBoringThemeHasNoPrefixes(t *testing.T) {
	styles := boringTheme().Styles()
	for _, kind := range []cwrap.ItemKind{cwrap.KindWord, cwrap.KindSpace, cwrap.KindNewline, cwrap.KindBullet, cwrap.KindCode} {
		if prefix := styles.For(kind).Prefix; strings.TrimSpace(prefix) != "" {
			t.Fatalf("expected empty %s prefix, got %q", kind, prefix)
		}
	}
}

func TestResolveWidthPrefersFlag(t *testing.T) {
	if got := resolveWidth(42); got != 42 {
		t.Fatalf("resolveWidth(42)=%d", got)
	}
	t.Setenv("COLUMNS", "33")
	if got := terminalWidth(80); got <= 0 {
		t.Fatalf("terminalWidth=%d", got)
	}
	t.Setenv("COLUMNS", "wide")
	if got := terminalWidth(80); got <= 0 {
		t.Fatalf("terminalWidth with bad COLUMNS=%d", got)
	}
}
