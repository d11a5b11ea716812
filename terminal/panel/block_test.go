package panel

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hnimtadd/termkit/terminal/width"
	"github.com/hnimtadd/termkit/terminal/writer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var standard = width.New(width.PolicyStandard)

func newBlock() *Block {
	return NewBlockWithOptions(Options{Measurer: &standard})
}

func wordwrap(t *testing.T, b *Block) *Block {
	t.Helper()
	b, err := b.Overflow(OverflowWordWrap)
	require.NoError(t, err)
	return b
}

// assertRect checks that every line is as wide as the node reports and that
// there are as many lines as its height.
func assertRect(t *testing.T, r Renderable) []string {
	t.Helper()
	lines := r.RenderLines()
	assert.Len(t, lines, r.TotalHeight())
	for i, line := range lines {
		assert.Equal(t, r.TotalWidth(), standard.VisibleLength(line), "line %d: %q", i, line)
	}
	return lines
}

func TestBlock_RenderLines(t *testing.T) {
	tcs := []struct {
		name     string
		block    func(t *testing.T) *Block
		expected []string
	}{
		{
			name:     "fixed width pads",
			block:    func(t *testing.T) *Block { return newBlock().Content("Hi").Width(5) },
			expected: []string{"Hi   "},
		},
		{
			name:     "auto width uses widest line",
			block:    func(t *testing.T) *Block { return newBlock().Content("a\nlonger\nmid") },
			expected: []string{"a     ", "longer", "mid   "},
		},
		{
			name:     "tabs expand to stops",
			block:    func(t *testing.T) *Block { return newBlock().Content("a\tb\n\tc") },
			expected: []string{"a       b", "        c"},
		},
		{
			name:     "wrap drops spaces at a break",
			block:    func(t *testing.T) *Block { return wordwrap(t, newBlock().Content("hello   world").Width(5)) },
			expected: []string{"hello", "world"},
		},
		{
			name:     "wrap of glyphs wider than the block",
			block:    func(t *testing.T) *Block { return wordwrap(t, newBlock().Content("日本").Width(1)) },
			expected: []string{" ", " "},
		},
		{
			name:     "border sharp",
			block:    func(t *testing.T) *Block { return newBlock().Content("Test").Width(6).Border(true) },
			expected: []string{"┌────┐", "│Test│", "└────┘"},
		},
		{
			name: "border rounded",
			block: func(t *testing.T) *Block {
				b, err := newBlock().Content("ok").Border(true).Corners(CornerRounded)
				require.NoError(t, err)
				return b
			},
			expected: []string{"╭──╮", "│ok│", "╰──╯"},
		},
		{
			name:     "expand truncates to fixed width",
			block:    func(t *testing.T) *Block { return newBlock().Content("abcdefgh").Width(4) },
			expected: []string{"abcd"},
		},
		{
			name: "wordwrap packs words",
			block: func(t *testing.T) *Block {
				return wordwrap(t, newBlock().Content("This is a very long text that should wrap").Width(15))
			},
			expected: []string{"This is a very ", "long text that ", "should wrap    "},
		},
		{
			name: "wordwrap hard splits long words",
			block: func(t *testing.T) *Block {
				return wordwrap(t, newBlock().Content("abcdefghij").Width(4))
			},
			expected: []string{"abcd", "efgh", "ij  "},
		},
		{
			name: "wordwrap inside border",
			block: func(t *testing.T) *Block {
				return wordwrap(t, newBlock().Content("one two three").Width(9).Border(true))
			},
			expected: []string{"┌───────┐", "│one two│", "│three  │", "└───────┘"},
		},
		{
			name:     "fixed height truncates",
			block:    func(t *testing.T) *Block { return newBlock().Content("a\nb\nc").Height(2) },
			expected: []string{"a", "b"},
		},
		{
			name:     "fixed height pads",
			block:    func(t *testing.T) *Block { return newBlock().Content("a\nb").Height(4) },
			expected: []string{"a", "b", " ", " "},
		},
		{
			name:     "trailing newlines trimmed",
			block:    func(t *testing.T) *Block { return newBlock().Content("a\nb\n\n") },
			expected: []string{"a", "b"},
		},
		{
			name:     "empty content",
			block:    func(t *testing.T) *Block { return newBlock() },
			expected: []string{""},
		},
		{
			name:     "styled content keeps escapes",
			block:    func(t *testing.T) *Block { return newBlock().Content("\x1b[1mBold\x1b[0m").Width(6) },
			expected: []string{"\x1b[1mBold\x1b[0m  "},
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.block(t)
			assert.Equal(t, tc.expected, assertRect(t, b))
		})
	}
}

func TestBlock_FixedWidthLinesAreExact(t *testing.T) {
	contents := []string{"", "x", "exactly10!", "this one is far too long", "日本語のテキスト", "😀 emoji", "\x1b[32mgreen\x1b[0m"}
	for _, content := range contents {
		for _, w := range []int{1, 3, 10, 17} {
			b := newBlock().Content(content).Width(w)
			for _, line := range b.RenderLines() {
				assert.Equal(t, w, standard.VisibleLength(line), "content %q width %d", content, w)
			}
		}
	}
}

func TestBlock_Dimensions(t *testing.T) {
	b := newBlock().Content("hello\nworld!").Border(true)
	assert.Equal(t, 6, b.ContentWidth())
	assert.Equal(t, 2, b.ContentHeight())
	assert.Equal(t, 8, b.TotalWidth())
	assert.Equal(t, 4, b.TotalHeight())

	b.Width(10).Height(5)
	assert.Equal(t, 8, b.ContentWidth())
	assert.Equal(t, 3, b.ContentHeight())
	assert.Equal(t, 10, b.TotalWidth())
	assert.Equal(t, 5, b.TotalHeight())

	b.Width(-4).Height(-1)
	assert.Equal(t, 6, b.ContentWidth())
	assert.Equal(t, 2, b.ContentHeight())
}

func TestBlock_Write(t *testing.T) {
	b := newBlock()
	_, err := fmt.Fprintf(b, "count=%d\n", 3)
	require.NoError(t, err)
	n, err := b.Write([]byte("done"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	assert.Equal(t, "count=3\ndone", b.Text())
	assert.Equal(t, []string{"count=3", "done   "}, b.RenderLines())
}

func TestBlock_WriteToSink(t *testing.T) {
	var sink writer.Memory
	b := NewBlockWithOptions(Options{Sink: &sink, Measurer: &standard}).Content("kept")

	n, err := b.Write([]byte("Test content"))
	require.NoError(t, err)
	assert.Equal(t, 12, n)
	assert.Equal(t, "Test content", sink.String())
	assert.Equal(t, "kept", b.Text())
}

func TestBlock_InvalidSetters(t *testing.T) {
	b := newBlock()

	_, err := b.Overflow(Overflow(7))
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = b.Corners(Corner(-1))
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = ParseOverflow("invalid")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	mode, err := ParseOverflow("wordwrap")
	require.NoError(t, err)
	assert.Equal(t, OverflowWordWrap, mode)
}

func TestBlock_RenderAndWriteTo(t *testing.T) {
	b := newBlock().Content("ab").Border(true)
	assert.Equal(t, "┌──┐\n│ab│\n└──┘\n", b.Render())

	var out writer.Memory
	n, err := b.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(len(b.Render())), n)
	assert.Equal(t, b.Render(), out.String())
}

func TestBlock_CacheFollowsChanges(t *testing.T) {
	b := wordwrap(t, newBlock().Content("aa bb cc").Width(5))
	assert.Equal(t, []string{"aa bb", "cc   "}, b.RenderLines())

	b.Content("aaaa bb")
	assert.Equal(t, []string{"aaaa ", "bb   "}, b.RenderLines())

	b.Width(8)
	assert.Equal(t, []string{"aaaa bb "}, b.RenderLines())

	// rendering twice gives identical output
	assert.Equal(t, b.RenderLines(), b.RenderLines())
}

func TestBlock_NarrowPolicy(t *testing.T) {
	narrow := width.New(width.PolicyNarrow)
	b := NewBlockWithOptions(Options{Measurer: &narrow}).Content("😀😀")
	assert.Equal(t, 2, b.ContentWidth())

	b = newBlock().Content("😀😀")
	assert.Equal(t, 4, b.ContentWidth())
}
