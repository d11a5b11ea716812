package panel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned by setters given a value outside their
	// accepted set.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrCycle is returned when adding a node would make a panel its own
	// descendant.
	ErrCycle = errors.New("panel cycle")
)

// Layout is the axis a Panel stacks its children along.
type Layout int

const (
	// LayoutVertical stacks children as rows.
	LayoutVertical Layout = iota
	// LayoutHorizontal places children side by side as columns.
	LayoutHorizontal
)

func (l Layout) String() string {
	switch l {
	case LayoutVertical:
		return "vertical"
	case LayoutHorizontal:
		return "horizontal"
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

func (l Layout) valid() bool {
	return l == LayoutVertical || l == LayoutHorizontal
}

// ParseLayout accepts "vertical" or "horizontal".
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "vertical":
		return LayoutVertical, nil
	case "horizontal":
		return LayoutHorizontal, nil
	}
	return 0, fmt.Errorf("%w: layout must be \"vertical\" or \"horizontal\", got %q", ErrInvalidArgument, s)
}

// Overflow decides what a Block does with text wider than its fixed width.
type Overflow int

const (
	// OverflowExpand keeps lines verbatim; a fixed width truncates them.
	OverflowExpand Overflow = iota
	// OverflowWordWrap reflows text to the fixed width.
	OverflowWordWrap
)

func (o Overflow) String() string {
	switch o {
	case OverflowExpand:
		return "expand"
	case OverflowWordWrap:
		return "wordwrap"
	}
	return fmt.Sprintf("Overflow(%d)", int(o))
}

func (o Overflow) valid() bool {
	return o == OverflowExpand || o == OverflowWordWrap
}

// ParseOverflow accepts "expand" or "wordwrap".
func ParseOverflow(s string) (Overflow, error) {
	switch s {
	case "expand":
		return OverflowExpand, nil
	case "wordwrap":
		return OverflowWordWrap, nil
	}
	return 0, fmt.Errorf("%w: overflow mode must be \"expand\" or \"wordwrap\", got %q", ErrInvalidArgument, s)
}

// Corner selects the glyphs drawn at the four corners of a border.
type Corner int

const (
	CornerSharp Corner = iota
	CornerRounded
)

func (c Corner) String() string {
	switch c {
	case CornerSharp:
		return "sharp"
	case CornerRounded:
		return "rounded"
	}
	return fmt.Sprintf("Corner(%d)", int(c))
}

func (c Corner) valid() bool {
	return c == CornerSharp || c == CornerRounded
}

// ParseCorner accepts "sharp" or "rounded".
func ParseCorner(s string) (Corner, error) {
	switch s {
	case "sharp":
		return CornerSharp, nil
	case "rounded":
		return CornerRounded, nil
	}
	return 0, fmt.Errorf("%w: corner style must be \"sharp\" or \"rounded\", got %q", ErrInvalidArgument, s)
}

// Box drawing glyphs.
const (
	Horizontal = "─"
	Vertical   = "│"
	TeeRight   = "├" // │ meets ─ from the right
	TeeLeft    = "┤" // │ meets ─ from the left
	TeeDown    = "┬" // ─ meets │ from below
	TeeUp      = "┴" // ─ meets │ from above
)

type corners struct {
	topLeft, topRight, bottomLeft, bottomRight string
}

var cornerGlyphs = map[Corner]corners{
	CornerSharp:   {topLeft: "┌", topRight: "┐", bottomLeft: "└", bottomRight: "┘"},
	CornerRounded: {topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯"},
}

func (c Corner) glyphs() corners {
	if g, ok := cornerGlyphs[c]; ok {
		return g
	}
	return cornerGlyphs[CornerSharp]
}
