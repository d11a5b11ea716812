package component

import (
	"bytes"
	"errors"
	"testing"

	"github.com/hnimtadd/termkit/logger"
	"github.com/hnimtadd/termkit/terminal/ansi"
	"github.com/hnimtadd/termkit/terminal/panel"
	"github.com/hnimtadd/termkit/terminal/width"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var standard = width.New(width.PolicyStandard)

func plain(lines []string) []string {
	if lines == nil {
		return nil
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = ansi.Strip(line)
	}
	return out
}

func TestTable_Lines(t *testing.T) {
	tcs := []struct {
		name     string
		build    func() *Table
		expected []string
	}{
		{
			name: "empty",
			build: func() *Table {
				return NewTable(TableOptions{Measurer: &standard})
			},
			expected: nil,
		},
		{
			name: "header and rows",
			build: func() *Table {
				return NewTable(TableOptions{Padding: 1, Measurer: &standard}).
					Headers("name", "qty").
					AddRow("apple", "3").
					AddRow("fig", "12")
			},
			expected: []string{
				"┌───────┬─────┐",
				"│ name  │ qty │",
				"├───────┼─────┤",
				"│ apple │ 3   │",
				"│ fig   │ 12  │",
				"└───────┴─────┘",
			},
		},
		{
			name: "no header no padding",
			build: func() *Table {
				return NewTable(TableOptions{Measurer: &standard}).
					AddRow("a", "bb")
			},
			expected: []string{
				"┌─┬──┐",
				"│a│bb│",
				"└─┴──┘",
			},
		},
		{
			name: "ragged rows",
			build: func() *Table {
				return NewTable(TableOptions{Measurer: &standard}).
					Headers("x").
					AddRow("1", "2")
			},
			expected: []string{
				"┌─┬─┐",
				"│x│ │",
				"├─┼─┤",
				"│1│2│",
				"└─┴─┘",
			},
		},
		{
			name: "wide glyphs",
			build: func() *Table {
				return NewTable(TableOptions{Measurer: &standard}).
					AddRow("日本").
					AddRow("a")
			},
			expected: []string{
				"┌────┐",
				"│日本│",
				"│a   │",
				"└────┘",
			},
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, plain(tc.build().Lines()))
		})
	}
}

func TestTable_HeaderStyle(t *testing.T) {
	bold := NewTable(TableOptions{Measurer: &standard}).Headers("h").AddRow("r")
	lines := bold.Lines()
	assert.Contains(t, lines[1], ansi.SGR(ansi.TextBold)+"h"+ansi.SGR(ansi.TextReset))
	assert.NotContains(t, lines[3], ansi.ESC)

	red := NewTable(TableOptions{Measurer: &standard, HeaderStyle: []int{ansi.FgRed}}).Headers("h")
	assert.Contains(t, red.Lines()[1], ansi.SGR(ansi.FgRed))
}

func TestTable_LinesHaveEqualWidth(t *testing.T) {
	tbl := NewTable(TableOptions{Padding: 2, Measurer: &standard}).
		Headers("id", "description").
		AddRow("1", ansi.Styled("styled", ansi.FgGreen)).
		AddRow("22", "🚀 launch")
	lines := tbl.Lines()
	require.NotEmpty(t, lines)
	w := standard.VisibleLength(lines[0])
	for _, line := range lines {
		assert.Equal(t, w, standard.VisibleLength(line), line)
	}
}

func TestTable_IntoBlock(t *testing.T) {
	block := panel.NewBlockWithOptions(panel.Options{Measurer: &standard}).Border(true)
	tbl := NewTable(TableOptions{Measurer: &standard}).Headers("k", "v").AddRow("a", "1")

	_, err := tbl.WriteTo(block)
	require.NoError(t, err)

	assert.Equal(t, 5, block.ContentHeight())
	assert.Equal(t, 5, block.ContentWidth())
	lines := block.RenderLines()
	assert.Equal(t, "┌─────┐", lines[0])
	assert.Equal(t, "│┌─┬─┐│", lines[1])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestTable_WriteToError(t *testing.T) {
	tbl := NewTable(TableOptions{Measurer: &standard}).AddRow("a")
	n, err := tbl.WriteTo(failingWriter{})
	assert.Error(t, err)
	assert.Zero(t, n)
}

func TestTable_Logs(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(TableOptions{
		Measurer: &standard,
		Logger:   logger.New(logger.Options{Buffer: &buf, Level: logger.DebugLevel}),
	}).AddRow("a", "b")
	tbl.Lines()
	assert.Contains(t, buf.String(), "table rendered")
	assert.Contains(t, buf.String(), "columns=2")
}
