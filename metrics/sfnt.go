package metrics

import (
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SFNT measures characters by the advance widths of a TrueType or OpenType
// font, rounded to whole pixels at a given size. Characters without a glyph
// in the font have no width.
//
// SFNT is safe for concurrent use.
type SFNT struct {
	font *sfnt.Font
	ppem fixed.Int26_6

	mu     sync.Mutex
	buf    sfnt.Buffer
	widths map[rune]int // -1 for missing glyphs
}

// NewSFNT parses font data and prepares measuring at ppem pixels per em.
func NewSFNT(data []byte, ppem int) (*SFNT, error) {
	if ppem <= 0 {
		return nil, errors.Errorf("font size must be positive, is %d", ppem)
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "parsing font")
	}
	s := &SFNT{
		font:   f,
		ppem:   fixed.I(ppem),
		widths: make(map[rune]int),
	}
	name, err := f.Name(&s.buf, sfnt.NameIDFull)
	if err != nil {
		name = "?"
	}
	tracer().Infof("font %q: %d glyphs, measuring at %d ppem", name, f.NumGlyphs(), ppem)
	return s, nil
}

// Width returns the advance width of the glyph for r.
func (s *SFNT) Width(r rune) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.widths[r]; ok {
		return w, w >= 0
	}
	w := s.advance(r)
	s.widths[r] = w
	return w, w >= 0
}

func (s *SFNT) advance(r rune) int {
	gid, err := s.font.GlyphIndex(&s.buf, r)
	if err != nil || gid == 0 { // glyph 0 is .notdef
		return -1
	}
	adv, err := s.font.GlyphAdvance(&s.buf, gid, s.ppem, font.HintingNone)
	if err != nil {
		tracer().Errorf("advance of glyph %d for %q: %v", gid, r, err)
		return -1
	}
	return adv.Round()
}
