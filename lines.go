package cwrap

import "strings"

// SplitLines splits text on '\n'. The break itself is not part of a line, empty
// text has no lines and a trailing break does not start another line.
func SplitLines(text string, opts ...Option) []string {
	cfg := newConfig(opts)
	var out []string
	for start := 0; ; {
		line, next, ok := nextLine(text, start, cfg.keepCR)
		if !ok {
			return out
		}
		out = append(out, line)
		start = next
	}
}

func nextLine(text string, start int, keepCR bool) (string, int, bool) {
	if start >= len(text) {
		return "", start, false
	}
	i := strings.IndexByte(text[start:], '\n')
	if i < 0 {
		return trimLineEnd(text[start:], keepCR), len(text), true
	}
	end := start + i
	return trimLineEnd(text[start:end], keepCR), end + 1, true
}

func trimLineEnd(line string, keepCR bool) string {
	if keepCR {
		return line
	}
	return trimCR(line)
}

func trimCR(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\r' {
		return s[:len(s)-1]
	}
	return s
}
