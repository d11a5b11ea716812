package ansi

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	ESC = "\x1b"
	CSI = ESC + "["
	SS3 = ESC + "O"
)

// Text attributes (SGR).
const (
	TextReset     = 0
	TextBold      = 1
	TextDim       = 2
	TextItalic    = 3 // not always supported
	TextUnderline = 4
	TextInverse   = 7
	TextHidden    = 8
	TextStrike    = 9
)

// Standard foreground colors (30-37) and bright variants (90-97).
const (
	FgBlack = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

const (
	FgBrightBlack = iota + 90
	FgBrightRed
	FgBrightGreen
	FgBrightYellow
	FgBrightBlue
	FgBrightMagenta
	FgBrightCyan
	FgBrightWhite
)

// Standard background colors (40-47) and bright variants (100-107).
const (
	BgBlack = iota + 40
	BgRed
	BgGreen
	BgYellow
	BgBlue
	BgMagenta
	BgCyan
	BgWhite
)

const (
	BgBrightBlack = iota + 100
	BgBrightRed
	BgBrightGreen
	BgBrightYellow
	BgBrightBlue
	BgBrightMagenta
	BgBrightCyan
	BgBrightWhite
)

// sgrPattern matches well formed SGR sequences only. An unterminated
// sequence is not matched and stays in the text as literal characters.
var sgrPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Strip removes SGR sequences (ESC [ params m) from s.
func Strip(s string) string {
	if !strings.Contains(s, ESC) {
		return s
	}
	return sgrPattern.ReplaceAllString(s, "")
}

// SGRPrefixLen returns the length of the SGR sequence at the start of s, or 0
// when s does not start with one.
func SGRPrefixLen(s string) int {
	if !strings.HasPrefix(s, CSI) {
		return 0
	}
	loc := sgrPattern.FindStringIndex(s)
	if loc == nil || loc[0] != 0 {
		return 0
	}
	return loc[1]
}

// SGR builds a Select Graphic Rendition sequence from params.
func SGR(params ...int) string {
	var b strings.Builder
	b.WriteString(CSI)
	for i, p := range params {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(p))
	}
	b.WriteByte('m')
	return b.String()
}

// Styled wraps text in the given SGR params followed by a reset. With no
// params text is returned unchanged.
func Styled(text string, params ...int) string {
	if len(params) == 0 {
		return text
	}
	return SGR(params...) + text + SGR(TextReset)
}

// Sequence builds a CSI sequence with numeric params and a final byte.
func Sequence(final byte, params ...int) string {
	var b strings.Builder
	b.WriteString(CSI)
	for i, p := range params {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(p))
	}
	b.WriteByte(final)
	return b.String()
}
