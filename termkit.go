// Package termkit emits ANSI sequences and rendered panels to a byte sink.
package termkit

import (
	"fmt"
	"io"
	"strings"

	"github.com/hnimtadd/termkit/logger"
	"github.com/hnimtadd/termkit/terminal/ansi"
	"github.com/hnimtadd/termkit/terminal/color"
	"github.com/hnimtadd/termkit/terminal/panel"
	"github.com/hnimtadd/termkit/terminal/writer"
)

// ErrInvalidArgument is returned for out of range colour values.
var ErrInvalidArgument = panel.ErrInvalidArgument

type Options struct {
	// Writer receives every sequence. Defaults to stdout.
	Writer io.Writer
	Logger logger.Logger
}

// Terminal writes text and control sequences to its sink. Methods return the
// Terminal so calls can be chained. After the first failed write every
// further write is skipped and the error is kept for Err.
type Terminal struct {
	w      io.Writer
	err    error
	logger logger.Logger
}

func New(opts Options) *Terminal {
	w := opts.Writer
	if w == nil {
		w = writer.NewStdout()
	}
	return &Terminal{w: w, logger: logger.OrNop(opts.Logger)}
}

func (t *Terminal) raw(s string) *Terminal {
	if t.err != nil || s == "" {
		return t
	}
	if _, err := io.WriteString(t.w, s); err != nil {
		t.logger.Debug("write failed", "error", err, "sequence", ansi.Quote(s))
		t.err = fmt.Errorf("termkit: write: %w", err)
	}
	return t
}

// Err returns the first write error, if any.
func (t *Terminal) Err() error {
	return t.err
}

func (t *Terminal) Write(text string) *Terminal {
	return t.raw(text)
}

// Newline writes n line breaks, at least one.
func (t *Terminal) Newline(n int) *Terminal {
	return t.raw(strings.Repeat("\n", max(n, 1)))
}

func (t *Terminal) ClearScreen() *Terminal           { return t.raw(ansi.CSI + "2J") }
func (t *Terminal) ClearScreenFromCursor() *Terminal { return t.raw(ansi.CSI + "0J") }
func (t *Terminal) ClearScreenToCursor() *Terminal   { return t.raw(ansi.CSI + "1J") }
func (t *Terminal) ClearLine() *Terminal             { return t.raw(ansi.CSI + "2K") }
func (t *Terminal) ClearLineFromCursor() *Terminal   { return t.raw(ansi.CSI + "0K") }
func (t *Terminal) ClearLineToCursor() *Terminal     { return t.raw(ansi.CSI + "1K") }

func (t *Terminal) CursorHome() *Terminal {
	return t.raw(ansi.CSI + "H")
}

// CursorTo moves to a 1-based row and column. Smaller values become 1.
func (t *Terminal) CursorTo(row, col int) *Terminal {
	return t.raw(ansi.Sequence('H', max(row, 1), max(col, 1)))
}

func (t *Terminal) CursorUp(n int) *Terminal    { return t.raw(ansi.Sequence('A', max(n, 1))) }
func (t *Terminal) CursorDown(n int) *Terminal  { return t.raw(ansi.Sequence('B', max(n, 1))) }
func (t *Terminal) CursorRight(n int) *Terminal { return t.raw(ansi.Sequence('C', max(n, 1))) }
func (t *Terminal) CursorLeft(n int) *Terminal  { return t.raw(ansi.Sequence('D', max(n, 1))) }

func (t *Terminal) SaveCursor() *Terminal    { return t.raw(ansi.CSI + "s") }
func (t *Terminal) RestoreCursor() *Terminal { return t.raw(ansi.CSI + "u") }
func (t *Terminal) HideCursor() *Terminal    { return t.raw(ansi.CSI + "?25l") }
func (t *Terminal) ShowCursor() *Terminal    { return t.raw(ansi.CSI + "?25h") }

func (t *Terminal) EnableAltBuffer() *Terminal  { return t.raw(ansi.CSI + "?1049h") }
func (t *Terminal) DisableAltBuffer() *Terminal { return t.raw(ansi.CSI + "?1049l") }

// Bell rings the terminal bell.
func (t *Terminal) Bell() *Terminal {
	return t.raw(string(ansi.C0.BEL))
}

// SetTitle sets the window or tab title with OSC 0.
func (t *Terminal) SetTitle(title string) *Terminal {
	return t.raw(ansi.ESC + "]0;" + title + string(ansi.C0.BEL))
}

// Reset clears every text attribute.
func (t *Terminal) Reset() *Terminal {
	return t.raw(ansi.SGR(ansi.TextReset))
}

// Style writes one SGR sequence carrying all codes. No codes, no output.
func (t *Terminal) Style(codes ...int) *Terminal {
	if len(codes) == 0 {
		return t
	}
	return t.raw(ansi.SGR(codes...))
}

func (t *Terminal) FG(code int) *Terminal { return t.Style(code) }
func (t *Terminal) BG(code int) *Terminal { return t.Style(code) }

// Color selects one of the 16 standard colours as the foreground.
func (t *Terminal) Color(n color.Name) *Terminal { return t.Style(n.FG()) }

// Background selects one of the 16 standard colours as the background.
func (t *Terminal) Background(n color.Name) *Terminal { return t.Style(n.BG()) }

func colorIndex(what string, n int) error {
	if n < 0 || n > 255 {
		return fmt.Errorf("%w: %s must be 0-255, got %d", ErrInvalidArgument, what, n)
	}
	return nil
}

// FG256 selects foreground colour n of the 256 colour palette.
func (t *Terminal) FG256(n int) (*Terminal, error) {
	if err := colorIndex("256-color foreground", n); err != nil {
		return t, err
	}
	return t.raw(ansi.SGR(color.Indexed(n).FG()...)), nil
}

func (t *Terminal) BG256(n int) (*Terminal, error) {
	if err := colorIndex("256-color background", n); err != nil {
		return t, err
	}
	return t.raw(ansi.SGR(color.Indexed(n).BG()...)), nil
}

func rgb(label string, r, g, b int) error {
	for _, c := range []struct {
		name string
		v    int
	}{{"R", r}, {"G", g}, {"B", b}} {
		if err := colorIndex(label+" "+c.name, c.v); err != nil {
			return err
		}
	}
	return nil
}

func rgbOf(r, g, b int) color.RGB {
	return color.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// FGRGB selects a 24-bit foreground colour.
func (t *Terminal) FGRGB(r, g, b int) (*Terminal, error) {
	if err := rgb("RGB foreground", r, g, b); err != nil {
		return t, err
	}
	return t.raw(ansi.SGR(rgbOf(r, g, b).FG()...)), nil
}

func (t *Terminal) BGRGB(r, g, b int) (*Terminal, error) {
	if err := rgb("RGB background", r, g, b); err != nil {
		return t, err
	}
	return t.raw(ansi.SGR(rgbOf(r, g, b).BG()...)), nil
}

// WriteStyled writes text with the given codes and resets afterwards. The
// reset is written even without codes.
func (t *Terminal) WriteStyled(text string, codes ...int) *Terminal {
	return t.Style(codes...).raw(text).Reset()
}

// Render writes every line of r followed by a newline.
func (t *Terminal) Render(r panel.Renderable) *Terminal {
	for _, line := range r.RenderLines() {
		t.raw(line + "\n")
	}
	return t
}
