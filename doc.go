// Package cwrap itemizes documentation comment bodies for re-wrapping.
//
// Itemize turns text into an ordered sequence of items: words, single spaces,
// newlines, list bullets and verbatim code lines. A consumer can then reflow
// the prose while keeping bullets and code intact.
//
// Core properties:
//   - Lines indented by four spaces are kept verbatim as Code items
//   - A '-' leading a line (after optional spaces) is a Bullet
//   - One Newline separates the items of consecutive lines
//   - Pure and allocation-light; words are substrings of the input
//
// Example:
//
//	items := cwrap.Itemize("- item one\n    let x = 1")
//	for _, it := range items {
//		fmt.Println(it)
//	}
//
// Parse and Render do the same over an io.Reader, writing items to a Sink or
// an item dump to an io.Writer.
package cwrap
