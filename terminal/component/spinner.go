package component

import (
	"fmt"

	"github.com/hnimtadd/termkit/terminal/panel"
)

// SpinnerStyle selects a built-in frame set.
type SpinnerStyle int

const (
	SpinnerDots SpinnerStyle = iota
	SpinnerASCII
)

var spinnerFrames = map[SpinnerStyle][]string{
	SpinnerDots:  {"⠋", "⠙", "⠚", "⠞", "⠖", "⠦", "⠴", "⠲", "⠳", "⠓"},
	SpinnerASCII: {"|", "/", "-", `\`},
}

// Spinner cycles through animation frames. Drawing and timing are left to
// the caller.
type Spinner struct {
	frames []string
	index  int
}

// NewSpinner returns a spinner with a built-in frame set. Unknown styles
// fall back to SpinnerDots.
func NewSpinner(style SpinnerStyle) *Spinner {
	s := &Spinner{}
	s.Style(style)
	return s
}

func (s *Spinner) Style(style SpinnerStyle) *Spinner {
	frames, ok := spinnerFrames[style]
	if !ok {
		frames = spinnerFrames[SpinnerDots]
	}
	s.frames = frames
	s.index = 0
	return s
}

// SetFrames replaces the frames with a custom set and rewinds.
func (s *Spinner) SetFrames(frames ...string) (*Spinner, error) {
	if len(frames) == 0 {
		return s, fmt.Errorf("%w: spinner needs at least one frame", panel.ErrInvalidArgument)
	}
	s.frames = append([]string(nil), frames...)
	s.index = 0
	return s, nil
}

// Next returns the current frame and advances, wrapping at the end.
func (s *Spinner) Next() string {
	frame := s.frames[s.index]
	s.index = (s.index + 1) % len(s.frames)
	return frame
}

// FrameAt returns the frame for an absolute position, negative ones
// counting back from the end.
func (s *Spinner) FrameAt(pos int) string {
	n := len(s.frames)
	i := pos % n
	if i < 0 {
		i += n
	}
	return s.frames[i]
}

func (s *Spinner) Reset() *Spinner {
	s.index = 0
	return s
}

func (s *Spinner) Frames() []string {
	return append([]string(nil), s.frames...)
}
