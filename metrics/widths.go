package metrics

// Widths reports the width of characters. ok is false if the width of r is
// unknown.
type Widths interface {
	Width(r rune) (w int, ok bool)
}

// Map is a width table with an entry per character.
type Map map[rune]int

// Width looks up r.
func (m Map) Width(r rune) (int, bool) {
	w, ok := m[r]
	return w, ok
}

// Uniform returns a table assigning width to every character in first..last.
//
//	font := metrics.Uniform(1, 0, 255)   // Latin-1, one unit each
func Uniform(width int, first, last rune) Map {
	m := make(Map, max(0, int(last-first)+1))
	for r := first; r <= last; r++ {
		m[r] = width
	}
	return m
}

type fallback struct {
	primary, secondary Widths
}

// Fallback returns a width source which asks primary first and secondary for
// characters unknown to primary.
func Fallback(primary, secondary Widths) Widths {
	return fallback{primary: primary, secondary: secondary}
}

func (f fallback) Width(r rune) (int, bool) {
	if w, ok := f.primary.Width(r); ok {
		return w, true
	}
	return f.secondary.Width(r)
}
