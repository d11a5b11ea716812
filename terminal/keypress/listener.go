package keypress

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/hnimtadd/termkit/logger"
	"github.com/hnimtadd/termkit/terminal/ansi"
)

// ErrClosed is returned by Next after Close.
var ErrClosed = errors.New("keypress: listener closed")

const (
	defaultBufferSize = 64

	// maxEmptyReads bounds consecutive reads returning no data and no error.
	maxEmptyReads = 100
)

// Event is one chunk read from the terminal together with its decoding.
type Event struct {
	Key Key
	Raw string
}

// Name is Name(e.Key).
func (e Event) Name() string {
	return Name(e.Key)
}

// Alt is DetectAlt(e.Raw).
func (e Event) Alt() (string, bool) {
	return DetectAlt(e.Raw)
}

type Options struct {
	// Reader supplies raw input. Putting the terminal into raw or cbreak
	// mode is the caller's job.
	Reader io.Reader

	// BufferSize bounds a single read. Defaults to 64 bytes.
	BufferSize int

	Logger logger.Logger
}

// Listener reads one chunk of input per call and decodes it. A chunk is
// whatever a single Read returns, which for a terminal in raw mode is one
// keypress.
type Listener struct {
	reader io.Reader
	buf    []byte
	closed bool
	logger logger.Logger
}

func NewListener(opts Options) *Listener {
	size := opts.BufferSize
	if size <= 0 {
		size = defaultBufferSize
	}
	return &Listener{
		reader: opts.Reader,
		buf:    make([]byte, size),
		logger: logger.OrNop(opts.Logger),
	}
}

// Next blocks until a chunk is available and returns it decoded. It returns
// io.EOF at end of input.
func (l *Listener) Next() (Event, error) {
	if l.closed {
		return Event{}, ErrClosed
	}
	for range maxEmptyReads {
		n, err := l.reader.Read(l.buf)
		if n > 0 {
			raw := string(l.buf[:n])
			l.logUnknown(raw)
			return Event{Key: Decode(raw), Raw: raw}, nil
		}
		if errors.Is(err, io.EOF) {
			return Event{}, io.EOF
		}
		if err != nil {
			l.logger.Debug("read failed", "error", err)
			return Event{}, fmt.Errorf("keypress: read input: %w", err)
		}
	}
	l.logger.Debug("read failed", "error", io.ErrNoProgress)
	return Event{}, fmt.Errorf("keypress: read input: %w", io.ErrNoProgress)
}

func (l *Listener) logUnknown(raw string) {
	if Known(raw) {
		return
	}
	switch {
	case len(raw) > 1:
		l.logger.Debug("unrecognised key sequence", "raw", ansi.Quote(raw))
	case ansi.IsControl(raw[0]):
		l.logger.Debug("unrecognised control byte", "byte", ansi.String(raw[0]))
	}
}

// Events yields events until end of input or the first read error, which is
// yielded once with a zero Event. End of input is not reported as an error.
func (l *Listener) Events() iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		for {
			ev, err := l.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(ev, err) || err != nil {
				return
			}
		}
	}
}

// Close stops the listener. It does not close the underlying reader.
func (l *Listener) Close() error {
	l.closed = true
	return nil
}
