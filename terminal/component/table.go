// Package component holds flat formatters that write finished lines to any
// io.Writer, a panel.Block included.
package component

import (
	"io"
	"strings"

	"github.com/hnimtadd/termkit/logger"
	"github.com/hnimtadd/termkit/terminal/ansi"
	"github.com/hnimtadd/termkit/terminal/panel"
	"github.com/hnimtadd/termkit/terminal/width"
)

const cross = "┼"

type TableOptions struct {
	// Padding is the number of spaces on each side of a cell.
	Padding int

	// HeaderStyle holds SGR params applied to header cells. Nil means bold.
	HeaderStyle []int

	// Measurer used for visible widths. Nil means the process default.
	Measurer *width.Measurer

	Logger logger.Logger
}

// Table is a boxed grid with an optional header row.
type Table struct {
	headers     []string
	rows        [][]string
	padding     int
	headerStyle []int
	measurer    *width.Measurer
	logger      logger.Logger
}

func NewTable(opts TableOptions) *Table {
	padding := max(opts.Padding, 0)
	style := opts.HeaderStyle
	if style == nil {
		style = []int{ansi.TextBold}
	}
	return &Table{
		padding:     padding,
		headerStyle: style,
		measurer:    opts.Measurer,
		logger:      logger.OrNop(opts.Logger),
	}
}

// Headers replaces the header row.
func (t *Table) Headers(headers ...string) *Table {
	t.headers = headers
	return t
}

// AddRow appends a row. Rows may have different lengths; missing cells
// render empty.
func (t *Table) AddRow(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

func (t *Table) measure() width.Measurer {
	if t.measurer != nil {
		return *t.measurer
	}
	return width.Default()
}

func (t *Table) columns() int {
	n := len(t.headers)
	for _, row := range t.rows {
		n = max(n, len(row))
	}
	return n
}

func (t *Table) widths() []int {
	m := t.measure()
	widths := make([]int, t.columns())
	grow := func(cells []string) {
		for i, cell := range cells {
			widths[i] = max(widths[i], m.VisibleLength(cell))
		}
	}
	grow(t.headers)
	for _, row := range t.rows {
		grow(row)
	}
	return widths
}

func (t *Table) rule(widths []int, left, junction, right string) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat(panel.Horizontal, w+2*t.padding)
	}
	return left + strings.Join(parts, junction) + right
}

func (t *Table) row(widths []int, cells []string, style []int) string {
	m := t.measure()
	pad := strings.Repeat(" ", t.padding)
	var b strings.Builder
	b.WriteString(panel.Vertical)
	for i, w := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(pad)
		b.WriteString(ansi.Styled(m.Pad(cell, w), style...))
		b.WriteString(pad)
		b.WriteString(panel.Vertical)
	}
	return b.String()
}

// Lines renders the table. A table with no columns renders nothing.
func (t *Table) Lines() []string {
	widths := t.widths()
	if len(widths) == 0 {
		return nil
	}
	lines := []string{t.rule(widths, "┌", panel.TeeDown, "┐")}
	if len(t.headers) > 0 {
		lines = append(lines,
			t.row(widths, t.headers, t.headerStyle),
			t.rule(widths, panel.TeeRight, cross, panel.TeeLeft),
		)
	}
	for _, row := range t.rows {
		lines = append(lines, t.row(widths, row, nil))
	}
	lines = append(lines, t.rule(widths, "└", panel.TeeUp, "┘"))
	t.logger.Debug("table rendered", "columns", len(widths), "rows", len(t.rows))
	return lines
}

// WriteTo writes the table, one newline terminated line at a time.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	return writeLines(w, t.Lines())
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
