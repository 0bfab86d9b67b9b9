package linebreak

import (
	"iter"
	"unicode/utf8"
)

// Opportunity tells whether a line may be broken at a position.
type Opportunity uint8

// Break opportunities. NoBreak stands for "no break permitted here".
const (
	NoBreak        Opportunity = iota // You may not break the line here.
	AllowedBreak                      // A line is allowed to end here.
	MandatoryBreak                    // A line must end here.
)

func (o Opportunity) String() string {
	switch o {
	case AllowedBreak:
		return "allowed"
	case MandatoryBreak:
		return "mandatory"
	}
	return "none"
}

// Scanner runs the line break automaton over a string, one code point per
// call to Next.
//
// For every code point starting at byte offset i, Next reports the verdict for
// the boundary in front of it, i.e. whether a line may end right after the
// preceding code point. A final call reports the end-of-text verdict at
// offset len(s). A scanner is single-pass; create a new one to start over.
type Scanner struct {
	tables *Tables
	text   string
	pos    int   // byte offset of the next code point
	state  uint8 // automaton state
	zwj    bool  // previous code point was a zero width joiner (LB8a)
	done   bool
}

// NewScanner creates a scanner over s using the default tables.
func NewScanner(s string) *Scanner {
	return Default().NewScanner(s)
}

// NewScanner creates a scanner over s.
func (t *Tables) NewScanner(s string) *Scanner {
	return &Scanner{
		tables: t,
		text:   s,
		state:  t.pairs.Start,
	}
}

// Next returns the byte offset of the next code point together with the
// break opportunity in front of it. After the end-of-text verdict has been
// returned, ok is false.
func (s *Scanner) Next() (offset int, op Opportunity, ok bool) {
	if s.done {
		return len(s.text), NoBreak, false
	}
	offset = s.pos
	class := EOT
	if s.pos < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		class = s.tables.Classify(uint32(r))
		s.pos += size
	} else {
		s.done = true
	}
	return offset, s.feed(class), true
}

// feed advances the automaton by one class and returns the verdict for the
// boundary in front of it. ZWJ is handled outside the table to keep it small.
func (s *Scanner) feed(class Class) Opportunity {
	cell := s.tables.pairs.Lookup(s.state, class)
	isMandatory := cell&MandatoryBreakBit != 0
	isBreak := cell&AllowedBreakBit != 0 && (!s.zwj || isMandatory)
	s.state = cell &^ (AllowedBreakBit | MandatoryBreakBit)
	s.zwj = class == ZWJ
	switch {
	case isBreak && isMandatory:
		return MandatoryBreak
	case isBreak:
		return AllowedBreak
	}
	return NoBreak
}

// Opportunities returns an iterator over (byte offset, opportunity) pairs of
// s, one per code point plus the end-of-text verdict at len(s).
func Opportunities(s string) iter.Seq2[int, Opportunity] {
	return Default().Opportunities(s)
}

// Opportunities returns an iterator over (byte offset, opportunity) pairs of
// s, one per code point plus the end-of-text verdict at len(s).
func (t *Tables) Opportunities(s string) iter.Seq2[int, Opportunity] {
	return func(yield func(int, Opportunity) bool) {
		sc := t.NewScanner(s)
		for {
			offset, op, ok := sc.Next()
			if !ok || !yield(offset, op) {
				return
			}
		}
	}
}

// Segments returns an iterator over the pieces of s between consecutive
// break opportunities. Concatenating all segments yields s.
func Segments(s string) iter.Seq[string] {
	return Default().Segments(s)
}

// Segments returns an iterator over the pieces of s between consecutive
// break opportunities. Concatenating all segments yields s.
func (t *Tables) Segments(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := 0
		for offset, op := range t.Opportunities(s) {
			if op == NoBreak || offset == start {
				continue
			}
			if !yield(s[start:offset]) {
				return
			}
			start = offset
		}
		if start < len(s) {
			yield(s[start:])
		}
	}
}
