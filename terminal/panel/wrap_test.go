package panel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tcs := []struct {
		name     string
		text     string
		width    int
		expected []string
	}{
		{name: "fits", text: "short", width: 10, expected: []string{"short"}},
		{name: "greedy", text: "aa bb cc dd", width: 5, expected: []string{"aa bb", "cc dd"}},
		{name: "keeps newlines", text: "a b\n\nc", width: 5, expected: []string{"a b", "", "c"}},
		{name: "hard split", text: "abcdefghij", width: 3, expected: []string{"abc", "def", "ghi", "j"}},
		{name: "hard split after words", text: "ab abcdefg", width: 4, expected: []string{"ab", "abcd", "efg"}},
		{name: "keeps inner spacing", text: "  45%", width: 8, expected: []string{"  45%"}},
		{name: "styled words", text: "\x1b[1mbold\x1b[0m and more", width: 8, expected: []string{"\x1b[1mbold\x1b[0m and", "more"}},
		{name: "wide glyphs", text: "日本 語", width: 4, expected: []string{"日本", "語"}},
		{name: "spaces at a break are dropped", text: "hello   world", width: 5, expected: []string{"hello", "world"}},
		{name: "trailing spaces at a break", text: "ab   ", width: 2, expected: []string{"ab"}},
		{name: "spaces kept when they fit", text: "ab  cd", width: 6, expected: []string{"ab  cd"}},
		{name: "glyph wider than width", text: "日本", width: 1, expected: []string{"日", "本"}},
		{name: "glyph wider than width then word", text: "日本 ab", width: 1, expected: []string{"日", "本", "a", "b"}},
		{name: "empty", text: "", width: 3, expected: []string{""}},
		{name: "non positive width", text: "a b\nc", width: 0, expected: []string{"a b", "c"}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Wrap(tc.text, tc.width, standard))
		})
	}
}

func TestWrap_NoLineExceedsWidth(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog with supercalifragilistic words"
	for w := 1; w <= 20; w++ {
		for _, line := range Wrap(text, w, standard) {
			assert.LessOrEqual(t, standard.VisibleLength(line), w, "width %d line %q", w, line)
		}
	}
}

func TestWrap_Idempotent(t *testing.T) {
	texts := []string{
		"This is a very long text that should wrap",
		"CPU Usage\n   45%\n  Normal",
		"abcdefghijklmnopqrstuvwxyz and more",
		"mixed 日本語 text with wide glyphs",
		"spaced   out    words   here",
	}
	for _, text := range texts {
		for _, w := range []int{4, 7, 10, 15} {
			once := Wrap(text, w, standard)
			twice := Wrap(strings.Join(once, "\n"), w, standard)
			assert.Equal(t, once, twice, "text %q width %d", text, w)
		}
	}
}
