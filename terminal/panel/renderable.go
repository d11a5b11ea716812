// Package panel lays out text blocks inside bordered, nestable panels.
//
// A Block holds text. A Panel holds an ordered list of Renderable children,
// which may themselves be panels, and stacks them vertically or
// horizontally. Every line a Renderable returns has the same visible width,
// so parents can compose children without measuring ragged output.
package panel

import (
	"io"
	"strings"

	"github.com/hnimtadd/termkit/logger"
	"github.com/hnimtadd/termkit/terminal/width"
)

// Renderable is any node that produces a rectangular block of lines.
type Renderable interface {
	// RenderLines returns the node's lines, each TotalWidth columns wide.
	RenderLines() []string
	// TotalWidth includes borders.
	TotalWidth() int
	// TotalHeight includes borders.
	TotalHeight() int
	// ContentWidth excludes borders.
	ContentWidth() int
}

// Options configure a Block or Panel at construction.
type Options struct {
	// Sink receives bytes passed to Block.Write instead of the block's own
	// content. Ignored by Panel.
	Sink io.Writer

	// Measurer used for visible widths. Nil means the process default at
	// the time of each measurement.
	Measurer *width.Measurer

	Logger logger.Logger
}

// node is the bookkeeping shared by Block and Panel for strict tree
// ownership.
type node struct {
	measurer *width.Measurer
	logger   logger.Logger
	attached bool
}

func newNode(opts Options) node {
	return node{measurer: opts.Measurer, logger: logger.OrNop(opts.Logger)}
}

func (n *node) measure() width.Measurer {
	if n.measurer != nil {
		return *n.measurer
	}
	return width.Default()
}

func (n *node) attach() bool {
	if n.attached {
		return false
	}
	n.attached = true
	return true
}

type attacher interface {
	attach() bool
}

// frame surrounds lines, each inner columns wide, with a border.
func frame(lines []string, inner int, c corners, top, bottom string) []string {
	if top == "" {
		top = strings.Repeat(Horizontal, inner)
	}
	if bottom == "" {
		bottom = strings.Repeat(Horizontal, inner)
	}
	out := make([]string, 0, len(lines)+2)
	out = append(out, c.topLeft+top+c.topRight)
	for _, line := range lines {
		out = append(out, Vertical+line+Vertical)
	}
	out = append(out, c.bottomLeft+bottom+c.bottomRight)
	return out
}

// fitHeight pads lines with blank rows of the given width, or drops rows,
// until there are exactly h of them.
func fitHeight(lines []string, h, w int) []string {
	if h < 0 {
		h = 0
	}
	if len(lines) > h {
		return lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, strings.Repeat(" ", w))
	}
	return lines
}

func border(enabled bool) int {
	if enabled {
		return 2
	}
	return 0
}

func writeLines(w io.Writer, lines []string) (int64, error) {
	var total int64
	for _, line := range lines {
		n, err := io.WriteString(w, line+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func joinLines(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
