package metrics

import (
	"unicode"

	"golang.org/x/text/width"
)

// EastAsian measures characters by their East Asian Width property (UAX #11):
// wide and fullwidth characters count as two units, all others as one.
// Non-spacing marks have zero width, control characters none at all.
type EastAsian struct {
	Unit      int  // width of a narrow character; 0 means 1
	Ambiguous bool // ambiguous characters are wide
}

// Width returns the width of r.
func (ea EastAsian) Width(r rune) (int, bool) {
	if unicode.IsControl(r) {
		return 0, false
	}
	if unicode.Is(unicode.Mn, r) {
		return 0, true
	}
	unit := max(ea.Unit, 1)
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2 * unit, true
	case width.EastAsianAmbiguous:
		if ea.Ambiguous {
			return 2 * unit, true
		}
	}
	return unit, true
}
