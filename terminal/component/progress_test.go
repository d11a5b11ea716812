package component

import (
	"testing"

	"github.com/hnimtadd/termkit"
	"github.com/hnimtadd/termkit/terminal/ansi"
	"github.com/hnimtadd/termkit/terminal/writer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgress_Line(t *testing.T) {
	tcs := []struct {
		name     string
		opts     ProgressOptions
		current  int
		total    int
		label    string
		expected string
	}{
		{
			name:     "half",
			opts:     ProgressOptions{Width: 10},
			current:  5,
			total:    10,
			expected: "[█████░░░░░]  50% (5/10)",
		},
		{
			name:     "label",
			opts:     ProgressOptions{Width: 4},
			current:  1,
			total:    4,
			label:    "Copy",
			expected: "Copy [█░░░]  25% (1/4)",
		},
		{
			name:     "rounds half up",
			opts:     ProgressOptions{Width: 4, HideCount: true},
			current:  1,
			total:    8,
			expected: "[█░░░]  13%",
		},
		{
			name:     "clamps current",
			opts:     ProgressOptions{Width: 2, HidePercentage: true},
			current:  12,
			total:    3,
			expected: "[██] (3/3)",
		},
		{
			name:     "negative current",
			opts:     ProgressOptions{Width: 2, HideCount: true},
			current:  -1,
			total:    3,
			expected: "[░░]   0%",
		},
		{
			name:     "zero total",
			opts:     ProgressOptions{Width: 2},
			current:  0,
			total:    0,
			expected: "[░░]   0% (0/1)",
		},
		{
			name:     "custom chars and no borders",
			opts:     ProgressOptions{Width: 3, Fill: "#", Empty: ".", NoBorders: true, HidePercentage: true, HideCount: true},
			current:  2,
			total:    3,
			expected: "##.",
		},
		{
			name:     "custom borders",
			opts:     ProgressOptions{Width: 1, Left: "<", Right: ">", HidePercentage: true, HideCount: true},
			current:  1,
			total:    1,
			expected: "<█>",
		},
		{
			name:     "label width pads",
			opts:     ProgressOptions{Width: 1, LabelWidth: 5, HidePercentage: true, HideCount: true, Measurer: &standard},
			current:  0,
			total:    1,
			label:    "ab",
			expected: "ab    [░]",
		},
		{
			name:     "label width truncates",
			opts:     ProgressOptions{Width: 1, LabelWidth: 2, HidePercentage: true, HideCount: true, Measurer: &standard},
			current:  0,
			total:    1,
			label:    "abcdef",
			expected: "ab [░]",
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			p := NewProgress(tc.opts)
			assert.Equal(t, tc.expected, ansi.Strip(p.Line(tc.current, tc.total, tc.label)))
		})
	}
}

func TestProgress_DefaultWidth(t *testing.T) {
	p := NewProgress(ProgressOptions{HidePercentage: true, HideCount: true, Measurer: &standard})
	assert.Equal(t, defaultBarWidth+2, standard.VisibleLength(p.Line(0, 1, "")))
}

func TestProgress_Styles(t *testing.T) {
	p := NewProgress(ProgressOptions{Width: 1, BarStyle: []int{ansi.FgGreen}, PercentageStyle: []int{ansi.TextBold}})
	line := p.Line(1, 1, "")
	assert.Contains(t, line, ansi.SGR(ansi.FgGreen)+"█"+ansi.SGR(ansi.TextReset))
	assert.Contains(t, line, ansi.SGR(ansi.TextBold)+"100%")
}

func TestProgress_Render(t *testing.T) {
	out := &writer.Memory{}
	term := termkit.New(termkit.Options{Writer: out})
	p := NewProgress(ProgressOptions{Width: 2, HidePercentage: true, HideCount: true})

	require.NoError(t, p.Render(term, 1, 2, ""))
	assert.Equal(t, "[█░]", out.String())

	out.Clear()
	require.NoError(t, p.RenderLine(term, 2, 2, ""))
	assert.Equal(t, "[██]\n", out.String())

	out.Clear()
	require.NoError(t, p.RenderInPlace(term, 0, 2, ""))
	assert.Equal(t, "\r\x1b[2K[░░]\r", out.String())
}
