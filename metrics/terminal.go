package metrics

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Terminal measures characters in monospace terminal cells: 2 for wide East
// Asian characters and most emoji, 0 for combining marks, 1 otherwise.
//
// Control characters, including TAB, have no width; their extent depends on
// the terminal. Expand them before wrapping.
type Terminal struct {
	EastAsian bool // ambiguous width characters take 2 cells (CJK locales)
}

// Width returns the number of cells r occupies.
func (t Terminal) Width(r rune) (int, bool) {
	if unicode.IsControl(r) {
		return 0, false
	}
	cond := runewidth.Condition{
		EastAsianWidth:     t.EastAsian,
		StrictEmojiNeutral: true,
	}
	return cond.RuneWidth(r), true
}
