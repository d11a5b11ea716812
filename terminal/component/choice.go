package component

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hnimtadd/termkit/terminal/ansi"
	"github.com/hnimtadd/termkit/terminal/panel"
)

const exitOption = "Exit"

type ChoiceOptions struct {
	// Optional adds an Exit entry. Choosing it makes Prompt report ok false.
	Optional bool

	// Styles, nil for the defaults.
	PromptStyle []int
	OptionStyle []int
	NumberStyle []int
	ErrorStyle  []int
	ExitStyle   []int
}

// Choice is a numbered menu answered by typing the number of an entry.
type Choice struct {
	in   *Input
	opts ChoiceOptions
}

func NewChoice(in *Input, opts ChoiceOptions) *Choice {
	if opts.PromptStyle == nil {
		opts.PromptStyle = []int{ansi.TextBold, ansi.FgCyan}
	}
	if opts.NumberStyle == nil {
		opts.NumberStyle = []int{ansi.FgYellow}
	}
	if opts.ErrorStyle == nil {
		opts.ErrorStyle = []int{ansi.FgRed}
	}
	if opts.ExitStyle == nil {
		opts.ExitStyle = []int{ansi.FgBrightBlack}
	}
	return &Choice{in: in, opts: opts}
}

// Prompt lists options and asks until a valid number is entered. It returns
// the chosen option, or ok false when the Exit entry was chosen.
func (c *Choice) Prompt(prompt string, options []string) (string, bool, error) {
	if len(options) == 0 {
		return "", false, fmt.Errorf("%w: no options to choose from", panel.ErrInvalidArgument)
	}
	entries := options
	if c.opts.Optional {
		entries = append(append([]string(nil), options...), exitOption)
	}
	t := c.in.term
	for {
		t.WriteStyled(prompt, c.opts.PromptStyle...)
		c.in.newline()
		for i, entry := range entries {
			style := c.opts.OptionStyle
			if c.opts.Optional && i == len(entries)-1 {
				style = c.opts.ExitStyle
			}
			t.WriteStyled(strconv.Itoa(i+1), c.opts.NumberStyle...).
				Write(". ").
				WriteStyled(entry, style...)
			c.in.newline()
		}
		c.in.newline()

		answer, err := c.in.Line("Enter your choice: ")
		if err != nil && !errors.Is(err, io.EOF) {
			return "", false, err
		}
		if n, valid := parseChoice(answer, len(entries)); valid {
			if c.opts.Optional && n == len(entries) {
				return "", false, nil
			}
			return options[n-1], true, nil
		}
		if errors.Is(err, io.EOF) {
			return "", false, err
		}
		c.in.logger.Debug("invalid choice", "input", answer)
		t.WriteStyled(fmt.Sprintf("Invalid choice. Please enter a number between 1 and %d.", len(entries)), c.opts.ErrorStyle...)
		c.in.newline()
		c.in.newline()
	}
}

// parseChoice accepts plain digits naming an entry 1..n.
func parseChoice(s string, n int) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.Trim(s, "0123456789") != "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 || v > n {
		return 0, false
	}
	return v, true
}
