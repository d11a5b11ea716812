// Package keypress turns raw terminal input into symbolic keys.
//
// Decode maps one captured chunk of input bytes to a Key. Known control
// bytes and escape sequences become named keys; anything else is returned
// unchanged, so a printable character decodes to itself. Decoding is pure
// and does no terminal I/O.
package keypress

// Key is a decoded keypress: one of the named constants below, or the raw
// input when the sequence is not recognised.
type Key string

// Basic keys.
const (
	KeyUp        Key = "UP"
	KeyDown      Key = "DOWN"
	KeyRight     Key = "RIGHT"
	KeyLeft      Key = "LEFT"
	KeyEnter     Key = "ENTER"
	KeySpace     Key = "SPACE"
	KeyBackspace Key = "BACKSPACE"
	KeyTab       Key = "TAB"
	KeyEsc       Key = "ESC"
)

// Ctrl combinations. Ctrl+I, Ctrl+J and Ctrl+M have no constant: their
// bytes are Tab, line feed and carriage return.
const (
	KeyCtrlA Key = "CTRL+A"
	KeyCtrlB Key = "CTRL+B"
	KeyCtrlC Key = "CTRL+C"
	KeyCtrlD Key = "CTRL+D"
	KeyCtrlE Key = "CTRL+E"
	KeyCtrlF Key = "CTRL+F"
	KeyCtrlG Key = "CTRL+G"
	KeyCtrlH Key = "CTRL+H" // same byte as Backspace, which wins when decoding
	KeyCtrlK Key = "CTRL+K"
	KeyCtrlL Key = "CTRL+L"
	KeyCtrlN Key = "CTRL+N"
	KeyCtrlO Key = "CTRL+O"
	KeyCtrlP Key = "CTRL+P"
	KeyCtrlQ Key = "CTRL+Q"
	KeyCtrlR Key = "CTRL+R"
	KeyCtrlS Key = "CTRL+S"
	KeyCtrlT Key = "CTRL+T"
	KeyCtrlU Key = "CTRL+U"
	KeyCtrlV Key = "CTRL+V"
	KeyCtrlW Key = "CTRL+W"
	KeyCtrlX Key = "CTRL+X"
	KeyCtrlY Key = "CTRL+Y"
	KeyCtrlZ Key = "CTRL+Z"
)

// Function keys.
const (
	KeyF1  Key = "F1"
	KeyF2  Key = "F2"
	KeyF3  Key = "F3"
	KeyF4  Key = "F4"
	KeyF5  Key = "F5"
	KeyF6  Key = "F6"
	KeyF7  Key = "F7"
	KeyF8  Key = "F8"
	KeyF9  Key = "F9"
	KeyF10 Key = "F10"
	KeyF11 Key = "F11"
	KeyF12 Key = "F12"
)

// Modified arrows.
const (
	KeyCtrlUp     Key = "CTRL+UP"
	KeyCtrlDown   Key = "CTRL+DOWN"
	KeyCtrlRight  Key = "CTRL+RIGHT"
	KeyCtrlLeft   Key = "CTRL+LEFT"
	KeyAltUp      Key = "ALT+UP"
	KeyAltDown    Key = "ALT+DOWN"
	KeyAltRight   Key = "ALT+RIGHT"
	KeyAltLeft    Key = "ALT+LEFT"
	KeyShiftUp    Key = "SHIFT+UP"
	KeyShiftDown  Key = "SHIFT+DOWN"
	KeyShiftRight Key = "SHIFT+RIGHT"
	KeyShiftLeft  Key = "SHIFT+LEFT"
)

// Navigation keys.
const (
	KeyHome     Key = "HOME"
	KeyEnd      Key = "END"
	KeyPageUp   Key = "PAGE UP"
	KeyPageDown Key = "PAGE DOWN"
	KeyInsert   Key = "INSERT"
	KeyDelete   Key = "DELETE"
)

func (k Key) String() string {
	return string(k)
}
