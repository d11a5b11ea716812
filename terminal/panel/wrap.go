package panel

import (
	"strings"

	"github.com/hnimtadd/termkit/terminal/width"
)

// Wrap reflows text so no line is wider than w columns. Explicit newlines are
// kept, words are packed greedily and a word wider than w is split at the
// width boundary. Spacing inside a line is preserved, so wrapping already
// wrapped text at the same width returns the same lines.
func Wrap(text string, w int, m width.Measurer) []string {
	inputs := strings.Split(text, "\n")
	if w <= 0 {
		return inputs
	}
	out := make([]string, 0, len(inputs))
	for _, line := range inputs {
		out = append(out, wrapLine(line, w, m)...)
	}
	return out
}

func wrapLine(line string, w int, m width.Measurer) []string {
	var out []string
	current := ""
	// started: current holds the beginning of a line.
	// trimming: spaces that would open the line after a break are dropped.
	started, trimming := false, false
	for _, word := range strings.Split(line, " ") {
		if trimming && word == "" {
			continue
		}
		if started {
			candidate := current + " " + word
			if m.VisibleLength(candidate) <= w {
				current = candidate
				continue
			}
			out = append(out, current)
			current, started = "", false
			if word == "" {
				trimming = true
				continue
			}
		}
		split := false
		for m.VisibleLength(word) > w {
			var head string
			head, word = m.Cut(word, w)
			out = append(out, head)
			split = true
		}
		if split && word == "" {
			// the last glyph was wider than w and already took its own line
			trimming = true
			continue
		}
		current, started, trimming = word, true, false
	}
	if started || len(out) == 0 {
		out = append(out, current)
	}
	return out
}
