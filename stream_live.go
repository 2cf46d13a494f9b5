package cwrap

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

var readerPool = sync.Pool{
	New: func() any {
		return bufio.NewReaderSize(nil, 4096)
	},
}

// maxPooledLineItems caps the item buffers returned to lineItemsPool.
const maxPooledLineItems = 1024

var lineItemsPool = sync.Pool{
	New: func() any {
		items := make(Items, 0, 64)
		return &items
	},
}

// ParseRequest configures Parse.
type ParseRequest struct {
	Reader  io.Reader
	Sink    Sink
	Options []Option
}

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Width   int
	Theme   Theme
	Options []Option
}

// Render itemizes text from a stream and writes the item dump to Writer.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	theme := req.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	return Parse(ParseRequest{
		Reader:  req.Reader,
		Sink:    NewItemRenderer(req.Writer, req.Width, theme),
		Options: req.Options,
	})
}

// Parse itemizes text from a stream line by line and writes the items to a
// sink. The sink sees the same items Itemize returns for the whole text.
func Parse(req ParseRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("parse: reader is nil")
	}
	if req.Sink == nil {
		return fmt.Errorf("parse: sink is nil")
	}
	cfg := newConfig(req.Options)
	reader := readerPool.Get().(*bufio.Reader)
	reader.Reset(req.Reader)
	bufp := lineItemsPool.Get().(*Items)
	iter := graphemes.FromString("")
	var v validator
	emitted := false
	var retErr error
	for {
		raw, err := reader.ReadString('\n')
		if len(raw) > 0 {
			if cfg.validate {
				if verr := v.addString(raw); verr != nil {
					retErr = fmt.Errorf("parse: %w", verr)
					goto done
				}
			}
			line := raw
			if line[len(line)-1] == '\n' {
				line = line[:len(line)-1]
			}
			line = trimLineEnd(line, cfg.keepCR)
			items := appendLine((*bufp)[:0], iter, line, emitted)
			for _, it := range items {
				if werr := req.Sink.WriteItem(it); werr != nil {
					retErr = fmt.Errorf("parse: %w", werr)
					goto done
				}
			}
			if len(items) > 0 {
				emitted = true
			}
			*bufp = items[:0]
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			retErr = fmt.Errorf("parse: read: %w", err)
			goto done
		}
	}
	if err := req.Sink.Flush(); err != nil {
		retErr = fmt.Errorf("parse: %w", err)
	}
done:
	reader.Reset(nil)
	readerPool.Put(reader)
	putLineItems(bufp)
	return retErr
}

func putLineItems(bufp *Items) {
	if cap(*bufp) > maxPooledLineItems {
		return
	}
	*bufp = (*bufp)[:0]
	lineItemsPool.Put(bufp)
}
