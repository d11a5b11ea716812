package keypress

import (
	"github.com/hnimtadd/termkit/terminal/ansi"
)

// Modifier parameters carried in "CSI 1 ; <mod> <arrow>" sequences.
const (
	modShift = "2"
	modAlt   = "3"
	modCtrl  = "5"
)

func arrows(prefix string, up, down, right, left Key) map[string]Key {
	return map[string]Key{
		prefix + "A": up,
		prefix + "B": down,
		prefix + "C": right,
		prefix + "D": left,
	}
}

// sequences maps every recognised input chunk to its key. Control bytes are
// listed explicitly; 0x09, 0x0A and 0x0D are Tab, Enter and unmapped rather
// than Ctrl+I, Ctrl+J and Ctrl+M.
var sequences = func() map[string]Key {
	t := map[string]Key{
		"\n":                KeyEnter,
		" ":                 KeySpace,
		string(ansi.C0.BS):  KeyBackspace,
		string(ansi.C0.DEL): KeyBackspace,
		"\t":                KeyTab,
		ansi.ESC:            KeyEsc,
		"\x01":              KeyCtrlA,
		"\x02":              KeyCtrlB,
		"\x03":              KeyCtrlC,
		"\x04":              KeyCtrlD,
		"\x05":              KeyCtrlE,
		"\x06":              KeyCtrlF,
		"\x07":              KeyCtrlG,
		"\x0B":              KeyCtrlK,
		"\x0C":              KeyCtrlL,
		"\x0E":              KeyCtrlN,
		"\x0F":              KeyCtrlO,
		"\x10":              KeyCtrlP,
		"\x11":              KeyCtrlQ,
		"\x12":              KeyCtrlR,
		"\x13":              KeyCtrlS,
		"\x14":              KeyCtrlT,
		"\x15":              KeyCtrlU,
		"\x16":              KeyCtrlV,
		"\x17":              KeyCtrlW,
		"\x18":              KeyCtrlX,
		"\x19":              KeyCtrlY,
		"\x1A":              KeyCtrlZ,
		ansi.SS3 + "P":      KeyF1,
		ansi.SS3 + "Q":      KeyF2,
		ansi.SS3 + "R":      KeyF3,
		ansi.SS3 + "S":      KeyF4,
		ansi.CSI + "15~":    KeyF5,
		ansi.CSI + "17~":    KeyF6,
		ansi.CSI + "18~":    KeyF7,
		ansi.CSI + "19~":    KeyF8,
		ansi.CSI + "20~":    KeyF9,
		ansi.CSI + "21~":    KeyF10,
		ansi.CSI + "23~":    KeyF11,
		ansi.CSI + "24~":    KeyF12,
		ansi.CSI + "H":      KeyHome,
		ansi.CSI + "F":      KeyEnd,
		ansi.CSI + "5~":     KeyPageUp,
		ansi.CSI + "6~":     KeyPageDown,
		ansi.CSI + "2~":     KeyInsert,
		ansi.CSI + "3~":     KeyDelete,
	}
	for _, group := range []map[string]Key{
		arrows(ansi.CSI, KeyUp, KeyDown, KeyRight, KeyLeft),
		arrows(ansi.CSI+"1;"+modCtrl, KeyCtrlUp, KeyCtrlDown, KeyCtrlRight, KeyCtrlLeft),
		arrows(ansi.CSI+"1;"+modAlt, KeyAltUp, KeyAltDown, KeyAltRight, KeyAltLeft),
		arrows(ansi.CSI+"1;"+modShift, KeyShiftUp, KeyShiftDown, KeyShiftRight, KeyShiftLeft),
	} {
		for seq, k := range group {
			t[seq] = k
		}
	}
	return t
}()

// Decode returns the key for one captured input chunk. Chunks that are not a
// known sequence, including printable characters and unknown escape
// sequences, are returned unchanged as a Key.
func Decode(raw string) Key {
	if k, ok := sequences[raw]; ok {
		return k
	}
	return Key(raw)
}

// Known reports whether raw decodes to a named key.
func Known(raw string) bool {
	_, ok := sequences[raw]
	return ok
}

// DecodeAll splits a chunk holding several keypresses, as pasted or
// coalesced input arrives, and decodes each part.
func DecodeAll(chunk string) []Key {
	parts := Split(chunk)
	keys := make([]Key, len(parts))
	for i, part := range parts {
		keys[i] = Decode(part)
	}
	return keys
}
