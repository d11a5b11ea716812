// Package color names the 16 standard terminal colours and builds the SGR
// parameters that select them.
package color

import (
	"fmt"
	"strings"
)

// RGB is a 24-bit colour.
type RGB struct {
	R, G, B uint8
}

// FG returns the SGR params selecting c as the foreground colour.
func (c RGB) FG() []int {
	return []int{38, 2, int(c.R), int(c.G), int(c.B)}
}

// BG returns the SGR params selecting c as the background colour.
func (c RGB) BG() []int {
	return []int{48, 2, int(c.R), int(c.G), int(c.B)}
}

// Indexed is an entry of the 256 colour palette.
type Indexed uint8

func (i Indexed) FG() []int { return []int{38, 5, int(i)} }
func (i Indexed) BG() []int { return []int{48, 5, int(i)} }

// Name is one of the 16 standard colours.
type Name uint8

const (
	Black Name = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var names = [...]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

func (n Name) String() string {
	if int(n) < len(names) {
		return names[n]
	}
	return fmt.Sprintf("Name(%d)", n)
}

func (n Name) bright() bool {
	return n >= BrightBlack
}

// FG returns the SGR code selecting n as the foreground colour, 30-37 or
// 90-97.
func (n Name) FG() int {
	if n.bright() {
		return 90 + int(n-BrightBlack)
	}
	return 30 + int(n)
}

// BG returns the SGR code selecting n as the background colour, 40-47 or
// 100-107.
func (n Name) BG() int {
	return n.FG() + 10
}

// ParseName accepts the names printed by String, case insensitively.
// "bright red" and "bright_red" are accepted too.
func ParseName(s string) (Name, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "-", "_", "-").Replace(key)
	for i, name := range names {
		if name == key {
			return Name(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", s)
}
