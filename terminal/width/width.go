// Package width measures how many terminal columns a string occupies.
//
// SGR escape sequences contribute zero columns. Wide glyphs are counted
// according to a Policy. A process default Measurer is kept for callers that
// do not thread one explicitly; it is meant to be set once before rendering
// starts and changing it while a render is running is not supported.
package width

import (
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/hnimtadd/termkit/terminal/ansi"
	"github.com/hnimtadd/termkit/terminal/tabstops"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Measurer computes visible widths under a fixed, resolved policy. The zero
// value measures with PolicyStandard.
type Measurer struct {
	policy Policy
	cond   *runewidth.Condition
}

// New returns a Measurer for p. PolicyAuto is resolved from the process
// environment.
func New(p Policy) Measurer {
	return NewWithEnv(p, nil)
}

// NewWithEnv is New with an explicit environment lookup, used to resolve
// PolicyAuto.
func NewWithEnv(p Policy, getenv func(string) string) Measurer {
	return Measurer{
		policy: p.Resolve(getenv),
		cond:   runewidth.NewCondition(),
	}
}

// Policy reports the resolved policy, never PolicyAuto.
func (m Measurer) Policy() Policy {
	return m.policy
}

func (m Measurer) condition() *runewidth.Condition {
	if m.cond == nil {
		return runewidth.DefaultCondition
	}
	return m.cond
}

// VisibleLength returns the number of columns s occupies once SGR sequences
// are removed.
func (m Measurer) VisibleLength(s string) int {
	if s == "" {
		return 0
	}
	return m.textWidth(ansi.Strip(s))
}

func (m Measurer) textWidth(s string) int {
	if m.policy == PolicyNarrow {
		return utf8.RuneCountInString(s)
	}
	return m.condition().StringWidth(s)
}

// Truncate cuts s so that its visible width does not exceed w. SGR sequences
// are never split; the ones after the cut are kept so resets still apply. A
// wide glyph that would straddle the limit is dropped, so the result may be
// one column narrower than w.
func (m Measurer) Truncate(s string, w int) string {
	if w <= 0 {
		return keepSGR(s)
	}
	if m.VisibleLength(s) <= w {
		return s
	}

	var b strings.Builder
	used := 0
	full := false
	for len(s) > 0 {
		if n := ansi.SGRPrefixLen(s); n > 0 {
			b.WriteString(s[:n])
			s = s[n:]
			continue
		}
		// text runs up to the next escape that starts an SGR sequence
		end := nextSGR(s)
		text := s[:end]
		s = s[end:]
		if full {
			continue
		}
		g := uniseg.NewGraphemes(text)
		for g.Next() {
			cluster := g.Str()
			cw := m.textWidth(cluster)
			if used+cw > w {
				full = true
				break
			}
			b.WriteString(cluster)
			used += cw
		}
	}
	return b.String()
}

// Pad returns s padded with spaces, or truncated, to exactly w columns.
func (m Measurer) Pad(s string, w int) string {
	if w < 0 {
		w = 0
	}
	vl := m.VisibleLength(s)
	if vl > w {
		s = m.Truncate(s, w)
		vl = m.VisibleLength(s)
	}
	if vl < w {
		s += strings.Repeat(" ", w-vl)
	}
	return s
}

// nextSGR returns the index of the first well formed SGR sequence in s after
// position 0, or len(s).
func nextSGR(s string) int {
	for i := 1; i < len(s); i++ {
		if s[i] == ansi.C0.ESC && ansi.SGRPrefixLen(s[i:]) > 0 {
			return i
		}
	}
	return len(s)
}

func keepSGR(s string) string {
	var b strings.Builder
	for len(s) > 0 {
		if n := ansi.SGRPrefixLen(s); n > 0 {
			b.WriteString(s[:n])
			s = s[n:]
			continue
		}
		s = s[nextSGR(s):]
	}
	return b.String()
}

var defaultMeasurer atomic.Pointer[Measurer]

func init() {
	SetDefault(PolicyAuto)
}

// Default returns the process wide Measurer.
func Default() Measurer {
	return *defaultMeasurer.Load()
}

// SetDefault replaces the process wide Measurer. Call it before rendering.
func SetDefault(p Policy) {
	m := New(p)
	defaultMeasurer.Store(&m)
}

// VisibleLength measures s with the process wide Measurer.
func VisibleLength(s string) int {
	return Default().VisibleLength(s)
}

// Cut splits s at the last grapheme boundary that keeps head within w
// columns. head is always a prefix of s. SGR sequences directly before the
// boundary stay in head. When the first glyph alone is wider than w it is put
// in head anyway so callers splitting in a loop always make progress.
func (m Measurer) Cut(s string, w int) (head, tail string) {
	used := 0
	pos := 0
	for pos < len(s) {
		rest := s[pos:]
		if n := ansi.SGRPrefixLen(rest); n > 0 {
			pos += n
			continue
		}
		end := nextSGR(rest)
		g := uniseg.NewGraphemes(rest[:end])
		for g.Next() {
			cluster := g.Str()
			cw := m.textWidth(cluster)
			if used+cw > w && used > 0 {
				return s[:pos], s[pos:]
			}
			if used+cw > w {
				// first glyph does not fit at all
				pos += len(cluster)
				return s[:pos], s[pos:]
			}
			used += cw
			pos += len(cluster)
		}
	}
	return s, ""
}

// ExpandTabs replaces every tab with spaces up to the next tab stop, one
// every tabstops.Interval columns. Columns restart after each newline and SGR
// sequences take no columns.
func (m Measurer) ExpandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = m.expandLine(line)
	}
	return strings.Join(lines, "\n")
}

func (m Measurer) expandLine(s string) string {
	tabs := strings.Count(s, "\t")
	if tabs == 0 {
		return s
	}
	stops := tabstops.New(m.VisibleLength(s)+tabs*tabstops.Interval+1, tabstops.Interval)

	var b strings.Builder
	col := 0
	for len(s) > 0 {
		if n := ansi.SGRPrefixLen(s); n > 0 {
			b.WriteString(s[:n])
			s = s[n:]
			continue
		}
		end := nextSGR(s)
		g := uniseg.NewGraphemes(s[:end])
		s = s[end:]
		for g.Next() {
			cluster := g.Str()
			if cluster != "\t" {
				b.WriteString(cluster)
				col += m.textWidth(cluster)
				continue
			}
			next, ok := stops.Next(col)
			if !ok {
				next = col + 1
			}
			b.WriteString(strings.Repeat(" ", next-col))
			col = next
		}
	}
	return b.String()
}
