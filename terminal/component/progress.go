package component

import (
	"fmt"
	"math"
	"strings"

	"github.com/hnimtadd/termkit"
	"github.com/hnimtadd/termkit/terminal/ansi"
	"github.com/hnimtadd/termkit/terminal/width"
)

const defaultBarWidth = 40

type ProgressOptions struct {
	// Width of the bar between its borders. Defaults to 40, at least 1.
	Width int

	// Fill and Empty draw the done and remaining parts. Default "█" and "░".
	Fill, Empty string

	// Left and Right enclose the bar. Default "[" and "]". NoBorders drops
	// both.
	Left, Right string
	NoBorders   bool

	HidePercentage bool
	HideCount      bool

	// LabelWidth pads or truncates the label to a fixed number of columns so
	// several bars line up. 0 leaves the label as is.
	LabelWidth int

	BarStyle        []int
	PercentageStyle []int
	LabelStyle      []int

	Measurer *width.Measurer
}

// Progress renders a one line progress bar:
//
//	label [████░░░░]  50% (5/10)
type Progress struct {
	opts ProgressOptions
}

func NewProgress(opts ProgressOptions) *Progress {
	if opts.Width <= 0 {
		opts.Width = defaultBarWidth
	}
	if opts.Fill == "" {
		opts.Fill = "█"
	}
	if opts.Empty == "" {
		opts.Empty = "░"
	}
	switch {
	case opts.NoBorders:
		opts.Left, opts.Right = "", ""
	default:
		if opts.Left == "" {
			opts.Left = "["
		}
		if opts.Right == "" {
			opts.Right = "]"
		}
	}
	return &Progress{opts: opts}
}

func (p *Progress) measure() width.Measurer {
	if p.opts.Measurer != nil {
		return *p.opts.Measurer
	}
	return width.Default()
}

// Line renders the bar for current out of total. current is clamped to
// 0..total and total to at least 1.
func (p *Progress) Line(current, total int, label string) string {
	total = max(total, 1)
	current = min(max(current, 0), total)
	ratio := float64(current) / float64(total)
	filled := int(math.Round(ratio * float64(p.opts.Width)))

	var b strings.Builder
	if p.opts.LabelWidth > 0 {
		label = p.measure().Pad(label, p.opts.LabelWidth)
	}
	if label != "" {
		b.WriteString(ansi.Styled(label, p.opts.LabelStyle...))
		b.WriteByte(' ')
	}
	b.WriteString(p.opts.Left)
	bar := strings.Repeat(p.opts.Fill, filled) + strings.Repeat(p.opts.Empty, p.opts.Width-filled)
	b.WriteString(ansi.Styled(bar, p.opts.BarStyle...))
	b.WriteString(p.opts.Right)
	if !p.opts.HidePercentage {
		b.WriteByte(' ')
		b.WriteString(ansi.Styled(fmt.Sprintf("%3d%%", int(math.Round(ratio*100))), p.opts.PercentageStyle...))
	}
	if !p.opts.HideCount {
		fmt.Fprintf(&b, " (%d/%d)", current, total)
	}
	return b.String()
}

// Render writes the bar without a line break.
func (p *Progress) Render(t *termkit.Terminal, current, total int, label string) error {
	return t.Write(p.Line(current, total, label)).Err()
}

// RenderInPlace redraws the bar over the current line, leaving the cursor at
// its start for the next update.
func (p *Progress) RenderInPlace(t *termkit.Terminal, current, total int, label string) error {
	return t.Write("\r").ClearLine().Write(p.Line(current, total, label)).Write("\r").Err()
}

// RenderLine writes the bar followed by a newline.
func (p *Progress) RenderLine(t *termkit.Terminal, current, total int, label string) error {
	return t.Write(p.Line(current, total, label)).Newline(1).Err()
}
