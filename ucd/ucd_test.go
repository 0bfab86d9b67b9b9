package ucd

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type entry struct {
	first, last rune
	value       string
}

func readAll(t *testing.T, src string) ([]entry, error) {
	t.Helper()
	r := NewReader(strings.NewReader(src))
	var entries []entry
	for {
		first, last, value, err := r.Next()
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return entries, err
		}
		entries = append(entries, entry{first, last, value})
	}
}

func TestReaderRangesAndSingles(t *testing.T) {
	src := `# LineBreak-15.0.0.txt
# @missing: 0000..10FFFF; XX

0000..0008;CM     # Cc     [9] <control-0000>..<control-0008>
0009;BA           # Cc         <control-0009>
  0041..005A ; AL # L&    [26] LATIN CAPITAL LETTER A..
1F1E6..1F1FF;RI
`
	entries, err := readAll(t, src)
	require.NoError(t, err)
	require.Equal(t, []entry{
		{0x0000, 0x0008, "CM"},
		{0x0009, 0x0009, "BA"},
		{0x0041, 0x005A, "AL"},
		{0x1F1E6, 0x1F1FF, "RI"},
	}, entries)
}

func TestReaderErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{name: "missing field", src: "0041\n", msg: "line 1: missing property field"},
		{name: "empty value", src: "\n0041; # nothing\n", msg: "line 2: empty property value"},
		{name: "bad hex", src: "00G1;AL\n", msg: "bad code point"},
		{name: "reversed", src: "005A..0041;AL\n", msg: "reversed range"},
		{name: "out of range", src: "110000;XX\n", msg: "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readAll(t, tt.src)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestReaderLine(t *testing.T) {
	r := NewReader(strings.NewReader("# header\n\n0020;SP\n"))
	first, _, value, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, rune(0x20), first)
	require.Equal(t, "SP", value)
	require.Equal(t, 3, r.Line())
	_, _, _, err = r.Next()
	require.Equal(t, io.EOF, err)
}
