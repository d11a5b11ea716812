// Package writer provides the byte sinks rendered output is written to.
package writer

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Memory collects everything written to it. It is the sink used by tests and
// by callers that post-process rendered output.
type Memory struct {
	buf bytes.Buffer
}

func (m *Memory) Write(p []byte) (int, error) {
	return m.buf.Write(p)
}

// WriteString implements io.StringWriter.
func (m *Memory) WriteString(s string) (int, error) {
	return m.buf.WriteString(s)
}

// String returns everything written since the last Clear.
func (m *Memory) String() string {
	return m.buf.String()
}

func (m *Memory) Clear() {
	m.buf.Reset()
}

// Stdout writes to an *os.File, os.Stdout by default. Files it opened itself
// are closed by Close; the standard streams are left open.
type Stdout struct {
	file  *os.File
	owned bool
}

// NewStdout returns a sink for os.Stdout.
func NewStdout() *Stdout {
	return &Stdout{file: os.Stdout}
}

// NewFile returns a sink for f. The caller keeps ownership of f.
func NewFile(f *os.File) *Stdout {
	return &Stdout{file: f}
}

// Open creates or truncates the file at path and returns a sink that owns it.
func Open(path string) (*Stdout, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("unable to open stream %s: %w", path, err)
	}
	return &Stdout{file: f, owned: true}, nil
}

func (s *Stdout) Write(p []byte) (int, error) {
	return s.file.Write(p)
}

// Fd returns the file descriptor, for terminal size and mode queries.
func (s *Stdout) Fd() uintptr {
	return s.file.Fd()
}

func (s *Stdout) Close() error {
	if !s.owned {
		return nil
	}
	return s.file.Close()
}

var (
	_ io.StringWriter = (*Memory)(nil)
	_ io.WriteCloser  = (*Stdout)(nil)
)
