package logger

import (
	"io"
	"log/slog"
	"os"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Options struct {
	Buffer io.Writer
	Level  Level
	Type   Type
}

// DefaultLogger writes text records to stderr so rendered output on stdout
// stays clean.
var DefaultLogger = New(Options{os.Stderr, DefaultLevel, TypeText})

// Nop discards every record.
var Nop Logger = New(Options{Buffer: io.Discard, Level: ErrorLevel})

type logger struct {
	*slog.Logger
}

func New(opts Options) Logger {
	if opts.Buffer == nil {
		opts.Buffer = os.Stderr
	}
	var handler slog.Handler
	switch opts.Type {
	case TypeJSON:
		handler = slog.NewJSONHandler(opts.Buffer, &slog.HandlerOptions{
			Level: levels[opts.Level],
		})
	case TypeText:
		fallthrough
	default:
		handler = slog.NewTextHandler(opts.Buffer, &slog.HandlerOptions{
			Level: levels[opts.Level],
		})
	}
	return &logger{
		Logger: slog.New(handler),
	}
}

// OrNop returns l, or Nop when l is nil. Library types use it so that an
// unset Options.Logger stays silent.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop
	}
	return l
}
