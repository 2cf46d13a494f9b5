package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/cwrap"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
	defaultFormat    = formatDump
)

const (
	formatDump = "dump"
	formatText = "text"
	formatPP   = "pp"
)

func init() {
	version.SetDefaultModule("pkt.systems/cwrap")
}

type options struct {
	format     string
	themeName  string
	width      int
	noTruncate bool
	boring     bool
	outPath    string
	keepCR     bool
	strict     bool
	stats      bool
}

func main() {
	var (
		opts        options
		listThemes  bool
		showVersion bool
	)

	flags := pflag.NewFlagSet("cwrap", pflag.ExitOnError)
	flags.StringVarP(&opts.format, "format", "f", defaultFormat, "Output format: dump|text|pp")
	flags.StringVarP(&opts.themeName, "theme", "t", defaultThemeName, "Theme name for dump output")
	flags.IntVarP(&opts.width, "width", "w", 0, "Truncate dump lines to width (0 uses terminal width if available)")
	flags.BoolVar(&opts.noTruncate, "no-truncate", false, "Never truncate dump lines")
	flags.BoolVarP(&opts.boring, "boring", "b", false, "Generate non-ANSI output")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&opts.keepCR, "keep-cr", false, "Keep carriage returns as word characters")
	flags.BoolVar(&opts.strict, "strict", false, "Reject invalid UTF-8 and binary input")
	flags.BoolVarP(&opts.stats, "stats", "s", false, "Print an item summary to stderr")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: cwrap [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, text is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return
	}
	if listThemes {
		printThemes(os.Stdout)
		return
	}

	theme, ok := cwrap.ThemeByName(opts.themeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n\n", opts.themeName)
		printThemes(os.Stderr)
		os.Exit(2)
	}

	if err := checkFormat(opts.format); err != nil {
		fmt.Fprintf(os.Stderr, "invalid --format %q: expected dump|text|pp\n", opts.format)
		os.Exit(2)
	}

	reader, closer, err := openInputs(flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	writer, closeOut, err := resolveOutput(opts.outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	if !isTerminal(writer) {
		opts.boring = true
	}
	if opts.boring {
		theme = boringTheme()
	}

	width := 0
	if !opts.noTruncate {
		width = resolveWidth(opts.width)
	}

	summary, err := run(reader, writer, theme, width, opts)
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "invalid --format %q: expected dump|text|pp\n", opts.format)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "itemize: %v\n", err)
		os.Exit(1)
	}
	if opts.stats {
		fmt.Fprintln(os.Stderr, summary.String())
	}
}

var errUsage = errors.New("unknown format")

func checkFormat(format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", formatDump, formatText, formatPP:
		return nil
	}
	return errUsage
}

func run(r io.Reader, w io.Writer, theme cwrap.Theme, width int, opts options) (cwrap.Summary, error) {
	counter := &countingReader{r: r}
	parseOpts := []cwrap.Option{cwrap.WithKeepCR(opts.keepCR), cwrap.WithValidation(opts.strict)}
	var sink cwrap.Sink
	switch strings.ToLower(strings.TrimSpace(opts.format)) {
	case "", formatDump:
		sink = cwrap.NewItemRenderer(w, width, theme)
	case formatText:
		sink = cwrap.NewTextWriter(w)
	case formatPP:
		sink = &ppSink{w: w, colored: !opts.boring}
	default:
		return cwrap.Summary{}, errUsage
	}
	summing := &cwrap.SummarySink{Next: sink}
	if err := cwrap.Parse(cwrap.ParseRequest{
		Reader:  counter,
		Sink:    summing,
		Options: parseOpts,
	}); err != nil {
		return cwrap.Summary{}, err
	}
	summary := summing.Summary
	summary.Bytes = counter.bytes
	summary.Lines = counter.lines()
	return summary, nil
}

// ppSink collects the whole sequence and pretty-prints it as a Go value.
type ppSink struct {
	w       io.Writer
	colored bool
	items   cwrap.Items
}

func (p *ppSink) WriteItem(it cwrap.Item) error {
	p.items = append(p.items, it)
	return nil
}

func (p *ppSink) Flush() error {
	pp.ColoringEnabled = p.colored
	_, err := pp.Fprintln(p.w, p.items)
	return err
}

type countingReader struct {
	r        io.Reader
	bytes    int
	newlines int
	last     byte
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.bytes += n
		c.newlines += bytes.Count(p[:n], []byte{'\n'})
		c.last = p[n-1]
	}
	return n, err
}

func (c *countingReader) lines() int {
	if c.bytes == 0 {
		return 0
	}
	if c.last == '\n' {
		return c.newlines
	}
	return c.newlines + 1
}

func printThemes(w io.Writer) {
	for _, name := range cwrap.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func boringTheme() cwrap.Theme {
	return cwrap.NewTheme("boring", cwrap.Styles{})
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

// multiInputReader concatenates inputs, opening each lazily.
type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return os.Stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	m := &multiInputReader{sources: sources}
	return m, m, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	if raw == "-" {
		return inputSource{open: func() (io.Reader, io.Closer, error) {
			return os.Stdin, nil, nil
		}}, nil
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				body, err := cwrap.OpenURL(context.Background(), nil, raw)
				if err != nil {
					return nil, nil, err
				}
				return body, body, nil
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
