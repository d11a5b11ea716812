package keypress

import (
	"unicode/utf8"

	"github.com/hnimtadd/termkit/terminal/ansi"
)

// State of the input tokenizer.
type State int

const (
	StateGround State = iota
	StateEscape
	StateCSI
	StateSS3
)

// Tokenizer splits a byte stream into single keypress sequences. It follows
// the ground / escape / CSI shape of the vt100.net parser, reduced to what
// keyboards send: CSI sequences, SS3 function keys, ESC-prefixed Alt pairs,
// control bytes and UTF-8 characters.
type Tokenizer struct {
	State State

	pending []byte
	out     []string
}

// Next consumes one byte.
func (t *Tokenizer) Next(c uint8) {
	switch t.State {
	case StateGround:
		t.ground(c)
	case StateEscape:
		switch {
		case c == '[':
			t.pending = append(t.pending, c)
			t.State = StateCSI
		case c == 'O':
			t.pending = append(t.pending, c)
			t.State = StateSS3
		case c == ansi.C0.ESC:
			// ESC ESC: the first one is a lone Escape
			t.emit()
			t.pending = append(t.pending, c)
			t.State = StateEscape
		default:
			// Alt pair; a UTF-8 lead byte keeps collecting in ground
			t.pending = append(t.pending, c)
			t.State = StateGround
			if c < utf8.RuneSelf {
				t.emit()
			}
		}
	case StateCSI:
		switch {
		case c >= 0x20 && c <= 0x3F:
			// parameter and intermediate bytes
			t.pending = append(t.pending, c)
		case c >= 0x40 && c <= 0x7E:
			t.pending = append(t.pending, c)
			t.emit()
		default:
			// malformed, flush what we have and restart
			t.emit()
			t.ground(c)
		}
	case StateSS3:
		t.pending = append(t.pending, c)
		t.emit()
	}
}

func (t *Tokenizer) ground(c uint8) {
	if c == ansi.C0.ESC {
		t.emit()
		t.pending = append(t.pending, c)
		t.State = StateEscape
		return
	}
	if len(t.pending) > 0 && c&0xC0 != 0x80 {
		// not a continuation byte: the pending rune is cut short
		t.emit()
	}
	t.pending = append(t.pending, c)
	// emit once the pending bytes after any ESC prefix form a full rune
	body := t.pending
	if body[0] == ansi.C0.ESC {
		body = body[1:]
	}
	if utf8.FullRune(body) {
		t.emit()
	}
}

func (t *Tokenizer) emit() {
	if len(t.pending) > 0 {
		t.out = append(t.out, string(t.pending))
		t.pending = t.pending[:0]
	}
	t.State = StateGround
}

// Flush ends the current sequence, even if incomplete, and returns every
// sequence collected so far.
func (t *Tokenizer) Flush() []string {
	t.emit()
	out := t.out
	t.out = nil
	return out
}

// Split breaks one input chunk into keypress sequences. Concatenating the
// parts gives back the chunk.
func Split(chunk string) []string {
	var t Tokenizer
	for i := 0; i < len(chunk); i++ {
		t.Next(chunk[i])
	}
	return t.Flush()
}
