package linebreak

import (
	"bytes"
	_ "embed"
	"io"
	"sync"
	"unicode"

	"github.com/npillmayer/linewrap/ucd"
	"github.com/pkg/errors"
	"golang.org/x/text/width"
)

// RangeReader yields line breaking classes for code point ranges one-by-one.
// Class values are UCD short names like "AL" or "SP".
// It should return io.EOF when the stream is exhausted.
//
// *ucd.Reader implements this interface for LineBreak.txt data.
type RangeReader interface {
	Next() (first, last rune, class string, err error)
}

// Tables bundles the two read-only tables driving line breaking: the
// compressed code point classification and the pair transition table.
//
// Tables are immutable once loaded and may be shared between goroutines.
type Tables struct {
	pages *pageTable
	pairs *pairTable
}

// TableStats reports size metrics of loaded tables.
type TableStats struct {
	Pages        int // stored 256-entry pages
	UniformPages int // blocks encoded directly in the page index
	States       int // automaton states of the pair table
}

// LineBreak.txt of UCD 15.0.0
//
//go:embed data/LineBreak.txt
var defaultData []byte

var (
	setupOnce     sync.Once
	defaultTables *Tables
)

// Default returns the tables compiled from the Unicode 15.0.0 LineBreak.txt
// shipped with this package. They are built on first use.
func Default() *Tables {
	setupOnce.Do(func() {
		t, err := LoadTables(ucd.NewReader(bytes.NewReader(defaultData)))
		if err != nil {
			tracer().Errorf("cannot compile built-in line break data: %v", err)
			panic(err)
		}
		defaultTables = t
	})
	return defaultTables
}

// LoadTables compiles line break tables from a stream of class ranges, e.g.
// from LineBreak.txt:
//
//	f, _ := os.Open("LineBreak.txt")
//	defer f.Close()
//	tables, err := linebreak.LoadTables(ucd.NewReader(f))
//
// Code points not covered are XX. Ranges read later override earlier ones.
//
// Some classes depend on further Unicode properties, which are applied after
// reading: SA code points which are non-spacing or spacing marks become CM
// (LB1), OP code points with East Asian Width F, W or H become OPW (LB30).
func LoadTables(reader RangeReader) (*Tables, error) {
	classes := make([]Class, MaxCodePoint+1)
	for i := range classes {
		classes[i] = Unknown
	}
	for {
		first, last, name, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading line break data")
		}
		c, ok := ParseClass(name)
		if !ok {
			if c, ok = foldedClasses[name]; !ok {
				return nil, errors.Errorf("unknown line break class %q for %04X..%04X", name, first, last)
			}
			tracer().P("class", name).Infof("folding %04X..%04X to %s", first, last, c)
		}
		if first < 0 || last > MaxCodePoint || last < first {
			return nil, errors.Errorf("illegal code point range %04X..%04X", first, last)
		}
		for cp := first; cp <= last; cp++ {
			classes[cp] = c
		}
	}
	deriveHangulSyllables(classes)
	marks, wide := refineClasses(classes)
	tracer().Debugf("refined classes: %d SA marks as CM, %d OP as OPW", marks, wide)
	pairs, err := compilePairs()
	if err != nil {
		return nil, errors.Wrap(err, "compiling pair table")
	}
	t := &Tables{
		pages: compilePages(classes),
		pairs: pairs,
	}
	stats := t.Stats()
	tracer().Infof("line break tables: pages=%d uniform=%d states=%d",
		stats.Pages, stats.UniformPages, stats.States)
	return t, nil
}

// Hangul syllables are LV (H2) every 28 code points starting at U+AC00,
// and LVT (H3) in between.
const (
	hangulFirst = 0xAC00
	hangulLast  = 0xD7A3
	hangulTCnt  = 28
)

func deriveHangulSyllables(classes []Class) {
	for cp := hangulFirst; cp <= hangulLast; cp++ {
		if (cp-hangulFirst)%hangulTCnt == 0 {
			classes[cp] = H2
		} else {
			classes[cp] = H3
		}
	}
}

// refineClasses splits classes by properties outside LineBreak.txt, see
// LoadTables.
func refineClasses(classes []Class) (marks, wide int) {
	for cp, c := range classes {
		switch c {
		case SA:
			if unicode.In(rune(cp), unicode.Mn, unicode.Mc) {
				classes[cp] = CM
				marks++
			}
		case OP:
			switch width.LookupRune(rune(cp)).Kind() {
			case width.EastAsianWide, width.EastAsianFullwidth, width.EastAsianHalfwidth:
				classes[cp] = OPW
				wide++
			}
		}
	}
	return marks, wide
}

// Stats reports size metrics of the tables.
func (t *Tables) Stats() TableStats {
	return TableStats{
		Pages:        t.pages.NumPages(),
		UniformPages: t.pages.NumUniform(),
		States:       t.pairs.NumStates(),
	}
}

// Classify returns the line breaking class of a code point. It never fails:
// code points not covered by the break data, including values beyond
// U+10FFFF, are Unknown. Classes are reported after the refinements described
// at LoadTables, e.g. U+300C LEFT CORNER BRACKET is OPW.
func (t *Tables) Classify(cp uint32) Class {
	return t.pages.Lookup(cp)
}

// Classify returns the line breaking class of a code point using the default
// tables.
func Classify(cp uint32) Class {
	return Default().Classify(cp)
}
