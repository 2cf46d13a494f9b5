package cwrap

import (
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "…"

// truncateWithEllipsis shortens text to limit cells, ending in an ellipsis.
// Text that already fits is returned unchanged.
func truncateWithEllipsis(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	return truncate.StringWithTail(text, uint(limit), ellipsis)
}
