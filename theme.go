package cwrap

import (
	"sort"
	"strconv"
	"strings"
)

const ansiReset = "\x1b[0m"

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the per-kind styles used by the item renderer.
type Styles struct {
	Word    Style
	Space   Style
	Newline Style
	Bullet  Style
	Code    Style
}

// For returns the style used for items of the given kind.
func (s Styles) For(kind ItemKind) Style {
	switch kind {
	case KindWord:
		return s.Word
	case KindSpace:
		return s.Space
	case KindNewline:
		return s.Newline
	case KindBullet:
		return s.Bullet
	case KindCode:
		return s.Code
	}
	return Style{}
}

// Theme provides named styles for item dumps.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		b.WriteString(p)
	}
	return Style{Prefix: b.String()}
}

func fg(r, g, b int) string {
	return "\x1b[38;2;" + strconv.Itoa(r) + ";" + strconv.Itoa(g) + ";" + strconv.Itoa(b) + "m"
}

const (
	bold  = "\x1b[1m"
	faint = "\x1b[2m"
)

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: Styles{
		Word:    style(fg(0xd0, 0xd0, 0xd0)),
		Space:   style(faint),
		Newline: style(faint),
		Bullet:  style(bold, fg(0xff, 0xaf, 0x00)),
		Code:    style(fg(0x87, 0xd7, 0x87)),
	}},
	"gruvbox": theme{name: "gruvbox", styles: Styles{
		Word:    style(fg(0xeb, 0xdb, 0xb2)),
		Space:   style(fg(0x66, 0x5c, 0x54)),
		Newline: style(fg(0x66, 0x5c, 0x54)),
		Bullet:  style(bold, fg(0xfe, 0x80, 0x19)),
		Code:    style(fg(0xb8, 0xbb, 0x26)),
	}},
	"nord": theme{name: "nord", styles: Styles{
		Word:    style(fg(0xd8, 0xde, 0xe9)),
		Space:   style(fg(0x4c, 0x56, 0x6a)),
		Newline: style(fg(0x4c, 0x56, 0x6a)),
		Bullet:  style(bold, fg(0x88, 0xc0, 0xd0)),
		Code:    style(fg(0xa3, 0xbe, 0x8c)),
	}},
	"mono": theme{name: "mono", styles: Styles{
		Space:   style(faint),
		Newline: style(faint),
		Bullet:  style(bold),
		Code:    style(bold),
	}},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
