package panel

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/hnimtadd/termkit/terminal/width"
	"github.com/mitchellh/hashstructure/v2"
)

// Block is a leaf Renderable holding text.
//
// A Block is also an io.Writer. Without a sink, written bytes are appended to
// its content so another formatter (a table, say) can render into it before
// the block is placed in a Panel. With a sink, writes are forwarded and the
// content is untouched.
type Block struct {
	node

	content     strings.Builder
	hasBorder   bool
	overflow    Overflow
	fixedWidth  int
	fixedHeight int
	corner      Corner
	sink        io.Writer

	cache lineCache
}

// linesKey holds every input that shapes a block's content lines.
type linesKey struct {
	Content  string
	Overflow Overflow
	Width    int
	Border   bool
	Policy   width.Policy
}

type lineCache struct {
	hash  uint64
	valid bool
	lines []string
}

// NewBlock returns an empty block with no border, expand overflow and auto
// sizing.
func NewBlock() *Block {
	return NewBlockWithOptions(Options{})
}

func NewBlockWithOptions(opts Options) *Block {
	return &Block{
		node: newNode(opts),
		sink: opts.Sink,
	}
}

// Content replaces the block's text. The text may hold newlines and SGR
// styling.
func (b *Block) Content(text string) *Block {
	b.content.Reset()
	b.content.WriteString(text)
	return b
}

// Text returns the current content.
func (b *Block) Text() string {
	return b.content.String()
}

// Write forwards p to the sink, or appends it to the content when the block
// has none.
func (b *Block) Write(p []byte) (int, error) {
	if b.sink != nil {
		return b.sink.Write(p)
	}
	return b.content.Write(p)
}

func (b *Block) Border(enabled bool) *Block {
	b.hasBorder = enabled
	return b
}

func (b *Block) Overflow(mode Overflow) (*Block, error) {
	if !mode.valid() {
		return b, fmt.Errorf("%w: overflow mode must be expand or wordwrap, got %s", ErrInvalidArgument, mode)
	}
	b.overflow = mode
	return b, nil
}

// Width fixes the total width, border included. 0 sizes to the content;
// negative values are treated as 0.
func (b *Block) Width(n int) *Block {
	b.fixedWidth = max(0, n)
	return b
}

// Height fixes the total height, border included. 0 sizes to the content;
// negative values are treated as 0.
func (b *Block) Height(n int) *Block {
	b.fixedHeight = max(0, n)
	return b
}

func (b *Block) Corners(style Corner) (*Block, error) {
	if !style.valid() {
		return b, fmt.Errorf("%w: corner style must be sharp or rounded, got %s", ErrInvalidArgument, style)
	}
	b.corner = style
	return b, nil
}

// ContentWidth is the fixed width minus the border, or the widest content
// line when the width is automatic.
func (b *Block) ContentWidth() int {
	if b.fixedWidth > 0 {
		return max(0, b.fixedWidth-border(b.hasBorder))
	}
	m := b.measure()
	widest := 0
	for _, line := range b.contentLines() {
		widest = max(widest, m.VisibleLength(line))
	}
	return widest
}

// ContentHeight is the fixed height minus the border, or the number of
// content lines when the height is automatic.
func (b *Block) ContentHeight() int {
	if b.fixedHeight > 0 {
		return max(0, b.fixedHeight-border(b.hasBorder))
	}
	return len(b.contentLines())
}

func (b *Block) TotalWidth() int {
	return b.ContentWidth() + border(b.hasBorder)
}

func (b *Block) TotalHeight() int {
	return b.ContentHeight() + border(b.hasBorder)
}

// RenderLines returns the content fitted to the block's size, framed when a
// border is enabled. Every line has the same visible width.
func (b *Block) RenderLines() []string {
	m := b.measure()
	cw := b.ContentWidth()
	lines := fitHeight(b.contentLines(), b.ContentHeight(), cw)
	for i, line := range lines {
		if m.VisibleLength(line) > cw {
			b.logger.Debug("block line truncated", "line", i, "width", cw)
		}
		lines[i] = m.Pad(line, cw)
	}
	if b.hasBorder {
		return frame(lines, cw, b.corner.glyphs(), "", "")
	}
	return lines
}

// Render returns the rendered lines, each followed by a newline.
func (b *Block) Render() string {
	return joinLines(b.RenderLines())
}

// WriteTo writes the rendered lines to w.
func (b *Block) WriteTo(w io.Writer) (int64, error) {
	return writeLines(w, b.RenderLines())
}

// contentLines returns a fresh copy of the derived lines, word wrapped when
// the block wraps at a fixed width.
func (b *Block) contentLines() []string {
	m := b.measure()
	key := linesKey{
		Content:  b.content.String(),
		Overflow: b.overflow,
		Width:    b.fixedWidth,
		Border:   b.hasBorder,
		Policy:   m.Policy(),
	}
	hash, err := hashstructure.Hash(key, hashstructure.FormatV2, nil)
	if err == nil && b.cache.valid && b.cache.hash == hash {
		return slices.Clone(b.cache.lines)
	}

	lines := deriveLines(key, m)
	if err == nil {
		b.cache = lineCache{hash: hash, valid: true, lines: lines}
	}
	return slices.Clone(lines)
}

func deriveLines(key linesKey, m width.Measurer) []string {
	content := strings.TrimRight(key.Content, "\n")
	if content == "" {
		return []string{""}
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = m.ExpandTabs(content)
	if key.Overflow == OverflowWordWrap && key.Width > 0 {
		return Wrap(content, key.Width-border(key.Border), m)
	}
	return strings.Split(content, "\n")
}

var (
	_ Renderable = (*Block)(nil)
	_ io.Writer  = (*Block)(nil)
)
