package component

import (
	"io"
	"strings"

	"github.com/hnimtadd/termkit/terminal/ansi"
	"github.com/hnimtadd/termkit/terminal/panel"
	"github.com/hnimtadd/termkit/terminal/width"
)

type BannerOptions struct {
	Title string
	// Lines follow the title below a separator.
	Lines []string
	// TitleStyle holds SGR params for the title. Nil means bold.
	TitleStyle []int
	Measurer   *width.Measurer
}

// Banner is a rounded box with a title and optional detail lines.
type Banner struct {
	opts BannerOptions
}

func NewBanner(opts BannerOptions) *Banner {
	if opts.TitleStyle == nil {
		opts.TitleStyle = []int{ansi.TextBold}
	}
	return &Banner{opts: opts}
}

// Lines renders the banner. Every line has the same visible width.
func (b *Banner) Lines() []string {
	m := width.Default()
	if b.opts.Measurer != nil {
		m = *b.opts.Measurer
	}
	inner := m.VisibleLength(b.opts.Title)
	for _, line := range b.opts.Lines {
		inner = max(inner, m.VisibleLength(line))
	}
	rule := strings.Repeat(panel.Horizontal, inner+2)
	body := func(text string, style []int) string {
		return panel.Vertical + " " + ansi.Styled(m.Pad(text, inner), style...) + " " + panel.Vertical
	}

	lines := []string{"╭" + rule + "╮", body(b.opts.Title, b.opts.TitleStyle)}
	if len(b.opts.Lines) > 0 {
		lines = append(lines, panel.TeeRight+rule+panel.TeeLeft)
		for _, line := range b.opts.Lines {
			lines = append(lines, body(line, nil))
		}
	}
	return append(lines, "╰"+rule+"╯")
}

func (b *Banner) WriteTo(w io.Writer) (int64, error) {
	return writeLines(w, b.Lines())
}
