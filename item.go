package cwrap

import (
	"strings"

	"github.com/muesli/reflow/ansi"
)

// Item is one structural element of an itemized text.
//
// Text is only meaningful for word and code items; the other kinds carry no
// payload and compare equal by kind alone.
type Item struct {
	Kind ItemKind
	Text string
}

type itemKind uint8

// ItemKind is the exported alias of itemKind for tooling and downstream wrappers.
type ItemKind = itemKind

const (
	itemWord itemKind = iota
	itemSpace
	itemNewline
	itemBullet
	itemCode
)

const (
	// KindWord is a run of non-space characters that is not a bullet.
	KindWord ItemKind = itemWord
	// KindSpace is a single space character.
	KindSpace ItemKind = itemSpace
	// KindNewline is a line break, including the separator between source lines.
	KindNewline ItemKind = itemNewline
	// KindBullet is a leading '-' list marker.
	KindBullet ItemKind = itemBullet
	// KindCode is a whole source line kept verbatim.
	KindCode ItemKind = itemCode
)

var kindNames = [...]string{
	itemWord:    "word",
	itemSpace:   "space",
	itemNewline: "newline",
	itemBullet:  "bullet",
	itemCode:    "code",
}

func (k itemKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

var (
	// Space is the single space item.
	Space = Item{Kind: KindSpace}
	// Newline is the line break item.
	Newline = Item{Kind: KindNewline}
	// Bullet is the list marker item.
	Bullet = Item{Kind: KindBullet}
)

// Word returns a word item.
func Word(text string) Item {
	return Item{Kind: KindWord, Text: text}
}

// Code returns a verbatim code line item.
func Code(text string) Item {
	return Item{Kind: KindCode, Text: text}
}

func (it Item) hasText() bool {
	return it.Kind == KindWord || it.Kind == KindCode
}

// Equal reports whether two items are structurally equal.
func (it Item) Equal(other Item) bool {
	if it.Kind != other.Kind {
		return false
	}
	if it.hasText() {
		return it.Text == other.Text
	}
	return true
}

// IsWhitespace reports whether the item is a space or a newline.
func (it Item) IsWhitespace() bool {
	return it.Kind == KindSpace || it.Kind == KindNewline
}

// Width returns the printable cell width of the item.
func (it Item) Width() int {
	switch it.Kind {
	case KindWord, KindCode:
		return ansi.PrintableRuneWidth(it.Text)
	case KindSpace, KindBullet:
		return 1
	default:
		return 0
	}
}

// String returns the debug form of the item, e.g. "word: foo" or "space".
func (it Item) String() string {
	if it.hasText() {
		return it.Kind.String() + ": " + it.Text
	}
	return it.Kind.String()
}

// Source returns the text the item was scanned from.
func (it Item) Source() string {
	switch it.Kind {
	case KindWord, KindCode:
		return it.Text
	case KindSpace:
		return " "
	case KindNewline:
		return "\n"
	case KindBullet:
		return "-"
	}
	return ""
}

// Items is an ordered item sequence.
type Items []Item

// OnlyWhitespace reports whether every item is a space or a newline.
func (items Items) OnlyWhitespace() bool {
	for _, it := range items {
		if !it.IsWhitespace() {
			return false
		}
	}
	return true
}

// Equal reports whether both sequences hold structurally equal items in the same order.
func (items Items) Equal(other Items) bool {
	if len(items) != len(other) {
		return false
	}
	for i := range items {
		if !items[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Text serializes the items back into text: words and code lines verbatim,
// spaces, newlines and bullets as their source characters.
func (items Items) Text() string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString(it.Source())
	}
	return b.String()
}
