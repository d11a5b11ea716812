package keypress

import (
	"github.com/hnimtadd/termkit/terminal/ansi"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnknownSequence is the name of input that is neither a named key nor a
// single printable character.
const UnknownSequence = "UNKNOWN SEQUENCE"

// names holds the labels that differ from the key value itself.
var names = map[Key]string{
	KeyUp:    "UP ARROW",
	KeyDown:  "DOWN ARROW",
	KeyLeft:  "LEFT ARROW",
	KeyRight: "RIGHT ARROW",
	KeyEsc:   "ESCAPE",
}

// named lists every key constant, including Ctrl+H which Decode never
// produces.
var named = func() map[Key]bool {
	set := map[Key]bool{KeyCtrlH: true}
	for _, k := range sequences {
		set[k] = true
	}
	return set
}()

var upper = cases.Upper(language.Und)

// Name returns a human readable label: "UP ARROW" for the named keys, the
// character in single quotes for a printable ASCII byte, and
// UnknownSequence for anything else.
func Name(k Key) string {
	if label, ok := names[k]; ok {
		return label
	}
	if named[k] {
		return string(k)
	}
	if len(k) == 1 && ansi.IsPrintable(k[0]) {
		return "'" + string(k) + "'"
	}
	return UnknownSequence
}

// DetectAlt recognises Alt+<char>, which terminals send as ESC followed by
// the character. It reports "ALT+<CHAR>" only for ESC plus exactly one
// printable ASCII byte other than the CSI and SS3 introducers.
func DetectAlt(raw string) (string, bool) {
	if len(raw) != 2 || raw[0] != ansi.C0.ESC {
		return "", false
	}
	c := raw[1]
	if !ansi.IsPrintable(c) || c == '[' || c == 'O' {
		return "", false
	}
	return "ALT+" + upper.String(string(c)), true
}
