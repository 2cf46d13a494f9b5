package cwrap

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

// codeIndent marks a line as verbatim code.
const codeIndent = "    "

// Itemize splits text into lines and itemizes each one. Lines indented by
// four spaces become a single Code item; other lines are scanned into words,
// spaces, newlines and bullets. One Newline separates the items of
// consecutive lines once any item has been produced.
func Itemize(text string, opts ...Option) Items {
	cfg := newConfig(opts)
	var items Items
	iter := graphemes.FromString("")
	for start := 0; ; {
		line, next, ok := nextLine(text, start, cfg.keepCR)
		if !ok {
			return items
		}
		items = appendLine(items, iter, line, len(items) > 0)
		start = next
	}
}

// ItemizeLine scans a single line. A '\n' inside the line is emitted as a
// Newline item; the line is never classified as code.
func ItemizeLine(line string) Items {
	return appendWords(nil, graphemes.FromString(""), line)
}

func appendLine(dst Items, iter *graphemes.Iterator[string], line string, separate bool) Items {
	if separate {
		dst = append(dst, Newline)
	}
	if isCodeLine(line) {
		return append(dst, Code(line))
	}
	return appendWords(dst, iter, line)
}

func isCodeLine(line string) bool {
	return strings.HasPrefix(line, codeIndent)
}

// appendWords scans line left to right one grapheme cluster at a time. A
// space or hyphen carrying a combining mark, or a "\r\n" pair, is a single
// cluster and belongs to the current word. The pending word is always
// a contiguous run of the line, so it is tracked as line[wordStart:i].
func appendWords(dst Items, iter *graphemes.Iterator[string], line string) Items {
	wordStart := -1
	content := false
	flush := func(end int) {
		if wordStart >= 0 {
			dst = append(dst, Word(line[wordStart:end]))
			wordStart = -1
			content = true
		}
	}
	iter.SetText(line)
	for iter.Next() {
		i := iter.Start()
		switch g := iter.Value(); {
		case g == " ":
			flush(i)
			dst = append(dst, Space)
		case g == "\n":
			flush(i)
			dst = append(dst, Newline)
		case g == "-" && wordStart < 0 && !content:
			dst = append(dst, Bullet)
			content = true
		default:
			if wordStart < 0 {
				wordStart = i
			}
		}
	}
	flush(len(line))
	return dst
}
