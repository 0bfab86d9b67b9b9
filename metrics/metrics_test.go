package metrics

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestMap(t *testing.T) {
	m := Map{'a': 3}
	w, ok := m.Width('a')
	assert.True(t, ok)
	assert.Equal(t, 3, w)
	_, ok = m.Width('b')
	assert.False(t, ok)
}

func TestUniform(t *testing.T) {
	m := Uniform(1, 0, 255)
	assert.Len(t, m, 256)
	w, ok := m.Width('ÿ')
	assert.True(t, ok)
	assert.Equal(t, 1, w)
	_, ok = m.Width('≤')
	assert.False(t, ok)
	assert.Empty(t, Uniform(1, 10, 9))
}

func TestFallback(t *testing.T) {
	widths := Fallback(Map{'a': 5}, Uniform(1, 'a', 'z'))
	w, _ := widths.Width('a')
	assert.Equal(t, 5, w)
	w, _ = widths.Width('b')
	assert.Equal(t, 1, w)
	_, ok := widths.Width('≤')
	assert.False(t, ok)
}

func TestTerminal(t *testing.T) {
	tests := []struct {
		r    rune
		ea   bool
		want int
		ok   bool
	}{
		{'a', false, 1, true},
		{' ', false, 1, true},
		{'世', false, 2, true},
		{'\u0301', false, 0, true},
		{'≤', false, 1, true},
		{'≤', true, 2, true},
		{'\t', false, 0, false},
		{'\r', false, 0, false},
	}
	for _, tt := range tests {
		w, ok := Terminal{EastAsian: tt.ea}.Width(tt.r)
		assert.Equal(t, tt.ok, ok, "%q", tt.r)
		assert.Equal(t, tt.want, w, "%q", tt.r)
	}
}

func TestEastAsian(t *testing.T) {
	tests := []struct {
		ea   EastAsian
		r    rune
		want int
	}{
		{EastAsian{}, 'a', 1},
		{EastAsian{}, '世', 2},
		{EastAsian{}, 'Ａ', 2},
		{EastAsian{}, 'ｱ', 1},
		{EastAsian{}, '≤', 1},
		{EastAsian{Ambiguous: true}, '≤', 2},
		{EastAsian{Unit: 10}, 'a', 10},
		{EastAsian{Unit: 10}, '世', 20},
		{EastAsian{}, '\u0301', 0},
	}
	for _, tt := range tests {
		w, ok := tt.ea.Width(tt.r)
		assert.True(t, ok, "%q", tt.r)
		assert.Equal(t, tt.want, w, "%q", tt.r)
	}
	_, ok := EastAsian{}.Width('\n')
	assert.False(t, ok)
}

func TestSFNT(t *testing.T) {
	face, err := NewSFNT(goregular.TTF, 16)
	require.NoError(t, err)
	wi, ok := face.Width('i')
	require.True(t, ok)
	wW, ok := face.Width('W')
	require.True(t, ok)
	assert.Greater(t, wi, 0)
	assert.Greater(t, wW, wi)
	again, _ := face.Width('W')
	assert.Equal(t, wW, again)
	_, ok = face.Width('世')
	assert.False(t, ok, "Go fonts have no CJK glyphs")
}

func TestSFNTErrors(t *testing.T) {
	_, err := NewSFNT([]byte("not a font"), 16)
	assert.Error(t, err)
	_, err = NewSFNT(goregular.TTF, 0)
	assert.Error(t, err)
}

func TestReadYAML(t *testing.T) {
	f, err := os.Open("testdata/widths.yaml")
	require.NoError(t, err)
	defer f.Close()
	m, err := ReadYAML(f)
	require.NoError(t, err)
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'W', 2},
		{'≤', 1},
		{'€', 1},
		{'世', 2},
		{0x00FF, 1},
	}
	for _, tt := range tests {
		w, ok := m.Width(tt.r)
		assert.True(t, ok, "%q", tt.r)
		assert.Equal(t, tt.want, w, "%q", tt.r)
	}
	_, ok := m.Width('→')
	assert.False(t, ok)
}

func TestReadYAMLErrors(t *testing.T) {
	tests := []string{
		"ranges:\n  - { first: U+0100, last: U+00FF, width: 1 }\n",
		"ranges:\n  - { first: U+00ZZ, last: U+00FF, width: 1 }\n",
		"ranges:\n  - { first: U+0000, last: U+00FF, width: -1 }\n",
		"chars:\n  ab: 1\n",
		"chars: [1, 2]\n",
	}
	for _, input := range tests {
		_, err := ReadYAML(strings.NewReader(input))
		assert.Error(t, err, input)
	}
}

func TestReadYAMLEmpty(t *testing.T) {
	m, err := ReadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, m)
}
