package width

import (
	"fmt"
	"os"
	"strings"
)

// Policy decides how many columns wide glyphs such as emoji occupy.
type Policy int

const (
	// PolicyStandard counts wide glyphs (emoji, East Asian wide characters)
	// as 2 columns.
	PolicyStandard Policy = iota
	// PolicyNarrow counts every code point as 1 column. Some IDE embedded
	// terminals render emoji this way.
	PolicyNarrow
	// PolicyAuto picks PolicyNarrow inside known IDE terminals and
	// PolicyStandard everywhere else.
	PolicyAuto
)

func (p Policy) String() string {
	switch p {
	case PolicyStandard:
		return "standard"
	case PolicyNarrow:
		return "narrow"
	case PolicyAuto:
		return "auto"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy converts "standard", "narrow" or "auto" into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "standard":
		return PolicyStandard, nil
	case "narrow":
		return PolicyNarrow, nil
	case "auto":
		return PolicyAuto, nil
	}
	return PolicyStandard, fmt.Errorf("unknown width policy %q", s)
}

// Resolve returns a concrete policy. PolicyAuto consults getenv; the other
// policies are returned unchanged.
func (p Policy) Resolve(getenv func(string) string) Policy {
	if p != PolicyAuto {
		return p
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	if narrowTerminal(getenv) {
		return PolicyNarrow
	}
	return PolicyStandard
}

// narrowTerminal detects terminals embedded in editors that draw emoji in a
// single cell.
func narrowTerminal(getenv func(string) string) bool {
	if strings.EqualFold(getenv("TERM_PROGRAM"), "vscode") {
		return true
	}
	if strings.HasPrefix(getenv("TERMINAL_EMULATOR"), "JetBrains") {
		return true
	}
	return false
}
