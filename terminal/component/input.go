package component

import (
	"errors"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hnimtadd/termkit"
	"github.com/hnimtadd/termkit/logger"
	"github.com/hnimtadd/termkit/terminal/keypress"
)

// ErrInterrupted is returned when Ctrl+C is pressed at a prompt.
var ErrInterrupted = errors.New("component: interrupted")

type InputOptions struct {
	// Reader supplies keypresses. Defaults to stdin.
	Reader io.Reader
	// Writer receives prompts. Defaults to stdout.
	Writer io.Writer

	// Echo writes typed characters back and ends lines with CR LF. Set it
	// when the terminal is in raw mode and does not echo by itself.
	Echo bool

	Logger logger.Logger
}

// Input reads lines of text from keypresses. Printable characters are
// collected, Backspace deletes the last one, Enter submits and Ctrl+C
// aborts with ErrInterrupted. Keys arriving together, as in pasted or line
// buffered input, are split and handled one by one.
type Input struct {
	term     *termkit.Terminal
	listener *keypress.Listener
	pending  []string
	echo     bool
	logger   logger.Logger
}

func NewInput(opts InputOptions) *Input {
	r := opts.Reader
	if r == nil {
		r = os.Stdin
	}
	l := logger.OrNop(opts.Logger)
	return &Input{
		term:     termkit.New(termkit.Options{Writer: opts.Writer, Logger: l}),
		listener: keypress.NewListener(keypress.Options{Reader: r, Logger: l}),
		echo:     opts.Echo,
		logger:   l,
	}
}

func (in *Input) newline() *termkit.Terminal {
	if in.echo {
		return in.term.Write("\r\n")
	}
	return in.term.Newline(1)
}

func (in *Input) next() (string, error) {
	for len(in.pending) == 0 {
		ev, err := in.listener.Next()
		if err != nil {
			return "", err
		}
		in.pending = keypress.Split(ev.Raw)
	}
	raw := in.pending[0]
	in.pending = in.pending[1:]
	return raw, nil
}

// Line writes prompt and returns the submitted text. At end of input a
// partly typed line is returned; with nothing typed the error is io.EOF.
func (in *Input) Line(prompt string) (string, error) {
	in.term.Write(prompt)
	if err := in.term.Err(); err != nil {
		return "", err
	}
	var line []rune
	for {
		raw, err := in.next()
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return string(line), nil
		}
		if err != nil {
			return "", err
		}
		switch k := keypress.Decode(raw); {
		case k == keypress.KeyEnter || raw == "\r":
			if in.echo {
				in.newline()
			}
			return string(line), in.term.Err()
		case k == keypress.KeyCtrlC:
			if in.echo {
				in.newline()
			}
			return "", ErrInterrupted
		case k == keypress.KeyBackspace:
			if len(line) == 0 {
				continue
			}
			line = line[:len(line)-1]
			if in.echo {
				in.term.Write("\b \b")
			}
		case k == keypress.KeySpace || !keypress.Known(raw):
			r, size := utf8.DecodeRuneInString(raw)
			if size != len(raw) || !unicode.IsPrint(r) {
				in.logger.Debug("key ignored at prompt", "key", keypress.Name(k))
				continue
			}
			line = append(line, r)
			if in.echo {
				in.term.Write(raw)
			}
		}
	}
}

var (
	yes = []string{"y", "yes", "true", "1", "on"}
	no  = []string{"n", "no", "false", "0", "off"}
)

// Confirm asks a yes/no question. An empty answer or end of input gives def;
// anything unrecognised asks again.
func (in *Input) Confirm(question string, def bool) (bool, error) {
	suffix := " [y/N]: "
	if def {
		suffix = " [Y/n]: "
	}
	for {
		answer, err := in.Line(question + suffix)
		if errors.Is(err, io.EOF) {
			return def, nil
		}
		if err != nil {
			return def, err
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		switch {
		case answer == "":
			return def, nil
		case contains(yes, answer):
			return true, nil
		case contains(no, answer):
			return false, nil
		}
		in.term.Write("Please answer 'y' or 'n'.")
		in.newline()
	}
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
