package cwrap

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// Summary counts the items of an itemized text.
type Summary struct {
	Lines    int
	Bytes    int
	Items    int
	Words    int
	Spaces   int
	Newlines int
	Bullets  int
	Code     int
}

// Summarize counts items per kind. Lines and Bytes describe the source text
// and are left for the caller to fill.
func Summarize(items Items) Summary {
	s := Summary{Items: len(items)}
	for _, it := range items {
		s.add(it)
	}
	return s
}

func (s *Summary) add(it Item) {
	switch it.Kind {
	case KindWord:
		s.Words++
	case KindSpace:
		s.Spaces++
	case KindNewline:
		s.Newlines++
	case KindBullet:
		s.Bullets++
	case KindCode:
		s.Code++
	}
}

// String returns a one-line human readable summary.
func (s Summary) String() string {
	var b strings.Builder
	if s.Lines > 0 || s.Bytes > 0 {
		b.WriteString(humanize.Comma(int64(s.Lines)))
		b.WriteString(" lines, ")
		b.WriteString(humanize.Bytes(uint64(s.Bytes)))
		b.WriteString(" -> ")
	}
	b.WriteString(humanize.Comma(int64(s.Items)))
	b.WriteString(" items (")
	b.WriteString(humanize.Comma(int64(s.Words)))
	b.WriteString(" words, ")
	b.WriteString(humanize.Comma(int64(s.Bullets)))
	b.WriteString(" bullets, ")
	b.WriteString(humanize.Comma(int64(s.Code)))
	b.WriteString(" code lines)")
	return b.String()
}

// SummarySink counts items while forwarding them to another sink.
type SummarySink struct {
	Next    Sink
	Summary Summary
}

// WriteItem counts the item and passes it on.
func (c *SummarySink) WriteItem(it Item) error {
	c.Summary.Items++
	c.Summary.add(it)
	if c.Next == nil {
		return nil
	}
	return c.Next.WriteItem(it)
}

// Flush flushes the next sink.
func (c *SummarySink) Flush() error {
	if c.Next == nil {
		return nil
	}
	return c.Next.Flush()
}
