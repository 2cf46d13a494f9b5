package cwrap

import (
	"bufio"
	"io"
)

// ItemRenderer writes one styled line per item in its debug form.
type ItemRenderer struct {
	w      *bufio.Writer
	width  int
	styles Styles
}

// NewItemRenderer creates an item dump renderer. Lines wider than width are
// truncated with an ellipsis; a width of zero or less disables truncation.
func NewItemRenderer(w io.Writer, width int, theme Theme) *ItemRenderer {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &ItemRenderer{
		w:      bufio.NewWriter(w),
		width:  width,
		styles: theme.Styles(),
	}
}

// Width returns the truncation width.
func (r *ItemRenderer) Width() int {
	return r.width
}

// SetWidth updates the truncation width.
func (r *ItemRenderer) SetWidth(width int) {
	r.width = width
}

// WriteItem writes a single item line.
func (r *ItemRenderer) WriteItem(it Item) error {
	line := it.String()
	if r.width > 0 {
		line = truncateWithEllipsis(line, r.width)
	}
	prefix := r.styles.For(it.Kind).Prefix
	if prefix != "" {
		_, _ = r.w.WriteString(prefix)
	}
	_, _ = r.w.WriteString(line)
	if prefix != "" {
		_, _ = r.w.WriteString(ansiReset)
	}
	return r.w.WriteByte('\n')
}

// Flush writes buffered output to the underlying writer.
func (r *ItemRenderer) Flush() error {
	return r.w.Flush()
}

// TextWriter is a Sink that writes items back as text.
type TextWriter struct {
	w *bufio.Writer
}

// NewTextWriter creates a TextWriter.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// WriteItem writes the source text of a single item.
func (t *TextWriter) WriteItem(it Item) error {
	_, err := t.w.WriteString(it.Source())
	return err
}

// Flush writes buffered output to the underlying writer.
func (t *TextWriter) Flush() error {
	return t.w.Flush()
}
