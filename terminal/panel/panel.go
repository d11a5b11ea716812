package panel

import (
	"fmt"
	"io"
	"strings"
)

// Panel is a composite Renderable that stacks its children vertically or
// horizontally, with an optional border and dividers between children.
//
// Panels form a strict tree: a node can be added to one panel only, and a
// panel can never become its own descendant. Configure a child panel fully
// before adding it.
type Panel struct {
	node

	layout      Layout
	children    []Renderable
	sizes       []int
	hasBorder   bool
	hasDividers bool
	dividerChar string
	corner      Corner
}

// New returns an empty vertical panel with no border or dividers.
func New() *Panel {
	return NewWithOptions(Options{})
}

func NewWithOptions(opts Options) *Panel {
	return &Panel{
		node:        newNode(opts),
		dividerChar: Vertical,
	}
}

func (p *Panel) Layout(l Layout) (*Panel, error) {
	if !l.valid() {
		return p, fmt.Errorf("%w: layout must be vertical or horizontal, got %s", ErrInvalidArgument, l)
	}
	p.layout = l
	return p, nil
}

// AddBlock appends child. It fails when child is nil, already belongs to a
// panel, or would make p its own descendant.
func (p *Panel) AddBlock(child Renderable) (*Panel, error) {
	if child == nil {
		return p, fmt.Errorf("%w: nil child", ErrInvalidArgument)
	}
	if sub, ok := child.(*Panel); ok && (sub == p || sub.contains(p)) {
		return p, fmt.Errorf("%w: panel cannot contain itself", ErrCycle)
	}
	if a, ok := child.(attacher); ok && !a.attach() {
		return p, fmt.Errorf("%w: child already belongs to a panel", ErrInvalidArgument)
	}
	p.children = append(p.children, child)
	return p, nil
}

// MustAddBlock is AddBlock for trees built from fresh nodes, where an error
// is a programming mistake. It panics on error.
func (p *Panel) MustAddBlock(children ...Renderable) *Panel {
	for _, child := range children {
		if _, err := p.AddBlock(child); err != nil {
			panic(err)
		}
	}
	return p
}

// contains reports whether target is a descendant of p.
func (p *Panel) contains(target *Panel) bool {
	for _, child := range p.children {
		sub, ok := child.(*Panel)
		if !ok {
			continue
		}
		if sub == target || sub.contains(target) {
			return true
		}
	}
	return false
}

// SetSizes overrides the column width of children by index in horizontal
// layout. Missing entries and values <= 0 size the child automatically.
func (p *Panel) SetSizes(sizes ...int) *Panel {
	p.sizes = append(p.sizes[:0], sizes...)
	return p
}

func (p *Panel) Border(enabled bool) *Panel {
	p.hasBorder = enabled
	return p
}

// Dividers toggles separators between children. An empty char keeps "│".
// The char separates columns in horizontal layout; vertical layout draws a
// horizontal rule instead.
func (p *Panel) Dividers(enabled bool, char string) *Panel {
	p.hasDividers = enabled
	if char == "" {
		char = Vertical
	}
	p.dividerChar = char
	return p
}

func (p *Panel) Corners(style Corner) (*Panel, error) {
	if !style.valid() {
		return p, fmt.Errorf("%w: corner style must be sharp or rounded, got %s", ErrInvalidArgument, style)
	}
	p.corner = style
	return p, nil
}

// Len returns the number of children.
func (p *Panel) Len() int {
	return len(p.children)
}

// columnWidth is the width child i occupies in horizontal layout.
func (p *Panel) columnWidth(i int) int {
	if i < len(p.sizes) && p.sizes[i] > 0 {
		return p.sizes[i]
	}
	return p.children[i].TotalWidth()
}

func (p *Panel) dividerWidth() int {
	if !p.hasDividers {
		return 0
	}
	return p.measure().VisibleLength(p.dividerChar)
}

// ContentWidth is the sum of column widths plus dividers in horizontal
// layout, and the widest child in vertical layout.
func (p *Panel) ContentWidth() int {
	total := 0
	if p.layout == LayoutHorizontal {
		for i := range p.children {
			total += p.columnWidth(i)
		}
		if n := len(p.children); n > 1 {
			total += (n - 1) * p.dividerWidth()
		}
		return total
	}
	for _, child := range p.children {
		total = max(total, child.TotalWidth())
	}
	return total
}

// ContentHeight is the sum of child heights plus divider rows in vertical
// layout, and the tallest child in horizontal layout.
func (p *Panel) ContentHeight() int {
	total := 0
	if p.layout == LayoutVertical {
		for _, child := range p.children {
			total += child.TotalHeight()
		}
		if n := len(p.children); n > 1 && p.hasDividers {
			total += n - 1
		}
		return total
	}
	for _, child := range p.children {
		total = max(total, child.TotalHeight())
	}
	return total
}

// TotalWidth is 0 for a panel without children, border or not.
func (p *Panel) TotalWidth() int {
	if len(p.children) == 0 {
		return 0
	}
	return p.ContentWidth() + border(p.hasBorder)
}

// TotalHeight is 0 for a panel without children, border or not.
func (p *Panel) TotalHeight() int {
	if len(p.children) == 0 {
		return 0
	}
	return p.ContentHeight() + border(p.hasBorder)
}

// RenderLines composes the children's lines. A panel without children
// renders no lines. Child lines that are too short are padded and too long
// ones truncated, so the result always matches TotalWidth and TotalHeight.
func (p *Panel) RenderLines() []string {
	if len(p.children) == 0 {
		return []string{}
	}
	if p.layout == LayoutHorizontal {
		return p.renderHorizontal()
	}
	return p.renderVertical()
}

func (p *Panel) renderVertical() []string {
	m := p.measure()
	inner := p.ContentWidth()
	rule := strings.Repeat(Horizontal, inner)
	left, right, divLeft, divRight := "", "", "", ""
	if p.hasBorder {
		left, right, divLeft, divRight = Vertical, Vertical, TeeRight, TeeLeft
	}

	lines := make([]string, 0, p.ContentHeight()+border(p.hasBorder))
	for i, child := range p.children {
		childLines := fitHeight(child.RenderLines(), child.TotalHeight(), inner)
		for _, line := range childLines {
			if m.VisibleLength(line) > inner {
				p.logger.Debug("panel row truncated", "child", i, "width", inner)
			}
			lines = append(lines, left+m.Pad(line, inner)+right)
		}
		if p.hasDividers && i < len(p.children)-1 {
			lines = append(lines, divLeft+rule+divRight)
		}
	}

	if !p.hasBorder {
		return lines
	}
	c := p.corner.glyphs()
	out := make([]string, 0, len(lines)+2)
	out = append(out, c.topLeft+rule+c.topRight)
	out = append(out, lines...)
	return append(out, c.bottomLeft+rule+c.bottomRight)
}

func (p *Panel) renderHorizontal() []string {
	m := p.measure()
	height := p.ContentHeight()

	widths := make([]int, len(p.children))
	columns := make([][]string, len(p.children))
	for i, child := range p.children {
		widths[i] = p.columnWidth(i)
		columns[i] = fitHeight(child.RenderLines(), height, widths[i])
	}

	lines := make([]string, 0, height)
	for row := range height {
		var b strings.Builder
		for i, column := range columns {
			cell := column[row]
			if m.VisibleLength(cell) > widths[i] {
				p.logger.Debug("panel column truncated", "child", i, "row", row, "width", widths[i])
			}
			b.WriteString(m.Pad(cell, widths[i]))
			if p.hasDividers && i < len(columns)-1 {
				b.WriteString(p.dividerChar)
			}
		}
		lines = append(lines, b.String())
	}

	if !p.hasBorder {
		return lines
	}
	return frame(lines, p.ContentWidth(), p.corner.glyphs(), p.edge(widths, TeeDown), p.edge(widths, TeeUp))
}

// edge builds the top or bottom border of a horizontal panel. Dividers drawn
// with the default glyph meet the border with a junction.
func (p *Panel) edge(widths []int, junction string) string {
	divider := p.dividerWidth()
	if divider == 0 {
		return ""
	}
	if p.dividerChar != Vertical {
		junction = strings.Repeat(Horizontal, divider)
	}
	var b strings.Builder
	for i, w := range widths {
		b.WriteString(strings.Repeat(Horizontal, w))
		if i < len(widths)-1 {
			b.WriteString(junction)
		}
	}
	return b.String()
}

// Render returns the rendered lines, each followed by a newline.
func (p *Panel) Render() string {
	return joinLines(p.RenderLines())
}

// WriteTo writes the rendered lines to w.
func (p *Panel) WriteTo(w io.Writer) (int64, error) {
	return writeLines(w, p.RenderLines())
}

var _ Renderable = (*Panel)(nil)
