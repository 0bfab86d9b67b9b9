package linewrap

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/linewrap/linebreak"
	"github.com/npillmayer/linewrap/metrics"
	"github.com/pkg/errors"
)

// ErrNoLegalLinebreakOpportunity is returned if a run of text without any
// break opportunity is wider than the maximum line width.
var ErrNoLegalLinebreakOpportunity = errors.New("no legal linebreak opportunity found")

// ErrInvalidWidth is returned for a maximum line width < 1.
var ErrInvalidWidth = errors.New("maximum line width must be positive")

// ErrNoWidths is returned if a wrapper has no width source.
var ErrNoWidths = errors.New("no character widths given")

// MissingCharacterWidthError is returned if the width source does not know
// the width of a character which has to be measured.
type MissingCharacterWidthError struct {
	Char rune
}

func (e *MissingCharacterWidthError) Error() string {
	return fmt.Sprintf("missing character width for `%c`", e.Char)
}

// Wrapper breaks text into lines of at most MaxWidth units.
//
// A Wrapper holds no state between calls and may be used concurrently,
// provided its width source may.
type Wrapper struct {
	MaxWidth int               // maximum line width, > 0
	Widths   metrics.Widths    // width per character
	Tables   *linebreak.Tables // break data; nil means linebreak.Default()
}

// Wrap inserts newlines into text at legal break opportunities, such that no
// line is wider than maxWidth. Example:
//
//	Wrap("This is a simple newline string. But then it gets a little longer.", 35, widths)
//
// returns
//
//	"This is a simple newline string. \nBut then it gets a little longer."
//
// The whitespace in front of a break is kept. Existing newlines restart the
// width count. No trailing newline is appended.
func Wrap(text string, maxWidth int, widths metrics.Widths) (string, error) {
	w := Wrapper{MaxWidth: maxWidth, Widths: widths}
	return w.Wrap(text)
}

// WrapLines is like Wrap, but returns the lines of the result, without their
// trailing newlines.
func WrapLines(text string, maxWidth int, widths metrics.Widths) ([]string, error) {
	w := Wrapper{MaxWidth: maxWidth, Widths: widths}
	return w.WrapLines(text)
}

// WrapLines is like Wrap, but returns the lines of the result, without their
// trailing newlines.
func (w *Wrapper) WrapLines(text string) ([]string, error) {
	wrapped, err := w.Wrap(text)
	if err != nil {
		return nil, err
	}
	return strings.Split(wrapped, "\n"), nil
}

// glyph is a character together with the break verdict for the position in
// front of it.
type glyph struct {
	char rune
	op   linebreak.Opportunity
}

// Wrap inserts newlines into text, see package-level Wrap.
//
// Either the complete text is wrapped, or an error is returned; there is no
// partial result.
func (w *Wrapper) Wrap(text string) (string, error) {
	if w.MaxWidth <= 0 {
		return "", ErrInvalidWidth
	}
	if w.Widths == nil {
		return "", ErrNoWidths
	}
	tables := w.Tables
	if tables == nil {
		tables = linebreak.Default()
	}
	glyphs := annotate(tables, text)
	var out strings.Builder
	out.Grow(len(text) + len(text)/w.MaxWidth + 1)
	for {
		cut, err := w.nextCut(glyphs)
		if err != nil {
			return "", err
		}
		if cut == 0 { // remaining glyphs fit
			break
		}
		writeGlyphs(&out, glyphs[:cut])
		out.WriteByte('\n')
		glyphs = glyphs[cut:]
	}
	writeGlyphs(&out, glyphs)
	return out.String(), nil
}

// nextCut measures glyphs until the first overflow and returns the position
// of the last break opportunity before it. It returns 0 if all glyphs fit.
//
// The break position recorded before a newline is not cleared by the
// newline.
func (w *Wrapper) nextCut(glyphs []glyph) (int, error) {
	width, cut := 0, 0
	for cursor, g := range glyphs {
		if g.char == 0 { // NUL ends processing, the rest is copied as-is
			return 0, nil
		}
		if g.char == '\n' {
			width = 0
			continue
		}
		cw, ok := w.Widths.Width(g.char)
		if !ok {
			return 0, &MissingCharacterWidthError{Char: g.char}
		}
		width += cw
		if width > w.MaxWidth {
			if cut == 0 {
				tracer().Debugf("no break opportunity within %d glyphs", cursor+1)
				return 0, ErrNoLegalLinebreakOpportunity
			}
			tracer().Debugf("breaking line at glyph %d, width %d > %d", cut, width, w.MaxWidth)
			return cut, nil
		}
		if g.op != linebreak.NoBreak && cursor != 0 {
			cut = cursor
		}
	}
	return 0, nil
}

// annotate pairs every character of text with its break opportunity.
func annotate(tables *linebreak.Tables, text string) []glyph {
	glyphs := make([]glyph, 0, utf8.RuneCountInString(text))
	scanner := tables.NewScanner(text)
	for _, r := range text {
		_, op, _ := scanner.Next()
		glyphs = append(glyphs, glyph{char: r, op: op})
	}
	return glyphs
}

func writeGlyphs(out *strings.Builder, glyphs []glyph) {
	for _, g := range glyphs {
		out.WriteRune(g.char)
	}
}
