/*
Package ucd reads property files of the Unicode Character Database.

Files like LineBreak.txt, EastAsianWidth.txt or WordBreakProperty.txt share a
simple line format:

	0041..005A    ; AL # L&    [26] LATIN CAPITAL LETTER A..LATIN CAPITAL LETTER Z
	0020          ; SP # Zs         SPACE

The reader streams (first, last, value) triples and knows nothing about the
meaning of the values. Clients compile them into whatever lookup structure
they need.

Further Reading

	https://www.unicode.org/reports/tr44/
	https://www.unicode.org/Public/UCD/latest/ucd/LineBreak.txt
*/
package ucd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxCodePoint is the largest Unicode code point.
const maxCodePoint = 0x10FFFF

// Reader streams property ranges from UCD-style source files.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader creates a reader for UCD property data.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Line returns the 1-based number of the line read last.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next code point range together with its property value.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (first, last rune, value string, err error) {
	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		first, last, value, err = r.decodeLine(line)
		return
	}
	if err = r.scanner.Err(); err != nil {
		return
	}
	return 0, 0, "", io.EOF
}

func (r *Reader) decodeLine(line string) (first, last rune, value string, err error) {
	fields := strings.Split(line, ";")
	if len(fields) < 2 {
		return 0, 0, "", fmt.Errorf("ucd: line %d: missing property field", r.line)
	}
	value = strings.TrimSpace(fields[1])
	if value == "" {
		return 0, 0, "", fmt.Errorf("ucd: line %d: empty property value", r.line)
	}
	cps := strings.TrimSpace(fields[0])
	lo, hi, isRange := strings.Cut(cps, "..")
	if first, err = r.parseCodePoint(lo); err != nil {
		return
	}
	last = first
	if isRange {
		if last, err = r.parseCodePoint(hi); err != nil {
			return
		}
		if last < first {
			return 0, 0, "", fmt.Errorf("ucd: line %d: reversed range %s", r.line, cps)
		}
	}
	return first, last, value, nil
}

func (r *Reader) parseCodePoint(s string) (rune, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("ucd: line %d: bad code point %q: %w", r.line, s, err)
	}
	if n > maxCodePoint {
		return 0, fmt.Errorf("ucd: line %d: code point %X out of range", r.line, n)
	}
	return rune(n), nil
}
