package metrics

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// widthFile is the YAML layout of a width table:
//
//	ranges:
//	  - { first: U+0020, last: U+007E, width: 1 }
//	  - { first: 0x4E00, last: 0x9FFF, width: 2 }
//	chars:
//	  "≤": 1
//	  "€": 1
//
// Entries in chars override ranges.
type widthFile struct {
	Ranges []struct {
		First codePoint `yaml:"first"`
		Last  codePoint `yaml:"last"`
		Width int       `yaml:"width"`
	} `yaml:"ranges"`
	Chars map[string]int `yaml:"chars"`
}

// codePoint decodes "U+XXXX", a single character or an integer.
type codePoint rune

func (cp *codePoint) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Errorf("line %d: code point expected", value.Line)
	}
	s := value.Value
	if hex, ok := strings.CutPrefix(strings.ToUpper(s), "U+"); ok {
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return errors.Wrapf(err, "line %d: bad code point %q", value.Line, s)
		}
		*cp = codePoint(n)
		return nil
	}
	if value.ShortTag() == "!!int" {
		var n int64
		if err := value.Decode(&n); err != nil {
			return err
		}
		*cp = codePoint(n)
		return nil
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		*cp = codePoint(r)
		return nil
	}
	return errors.Errorf("line %d: bad code point %q", value.Line, s)
}

// ReadYAML reads a width table in YAML format (see the example in the package
// tests).
func ReadYAML(r io.Reader) (Map, error) {
	var file widthFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return Map{}, nil
		}
		return nil, errors.Wrap(err, "reading width table")
	}
	m := make(Map)
	for _, rng := range file.Ranges {
		if rng.Last < rng.First || rng.Last > utf8.MaxRune || rng.First < 0 {
			return nil, errors.Errorf("illegal range %04X..%04X", rng.First, rng.Last)
		}
		if rng.Width < 0 {
			return nil, errors.Errorf("negative width for %04X..%04X", rng.First, rng.Last)
		}
		for c := rune(rng.First); c <= rune(rng.Last); c++ {
			m[c] = rng.Width
		}
	}
	for s, w := range file.Chars {
		if utf8.RuneCountInString(s) != 1 {
			return nil, errors.Errorf("width table key %q is not a single character", s)
		}
		if w < 0 {
			return nil, errors.Errorf("negative width for %q", s)
		}
		r, _ := utf8.DecodeRuneInString(s)
		m[r] = w
	}
	tracer().Debugf("read width table with %d entries", len(m))
	return m, nil
}
