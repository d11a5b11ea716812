package ansi

// c0 names the 7-bit control bytes the toolkit emits or decodes from
// keyboard input.
type c0 struct {
	NUL uint8 // NUL is the null character (Caret: ^@, Char: \0).
	BEL uint8 // BEL is the bell character (Caret: ^G, Char: \a).
	BS  uint8 // BS is the backspace character (Caret: ^H, Char: \b).
	HT  uint8 // HT is the horizontal tab character (Caret: ^I, Char: \t).
	LF  uint8 // LF is the line feed character (Caret: ^J, Char: \n).
	VT  uint8 // VT is the vertical tab character (Caret: ^K, Char: \v).
	FF  uint8 // FF is the form feed character (Caret: ^L, Char: \f).
	CR  uint8 // CR is the carriage return character (Caret: ^M, Char: \r).
	SUB uint8 // SUB is the substitute character (Caret: ^Z).
	ESC uint8 // ESC is the Escape character (Caret: ^[).
	SP  uint8 // SP is the space character.
	DEL uint8 // DEL is the delete character (Caret: ^?).
}

// C0 (7-bit) control characters from ANSI, plus SP and DEL which keyboards
// send for Space and Backspace.
//
// see chapter 3 of the VT100 user guide:
// https://vt100.net/docs/vt100-ug/chapter3.html#S3.2
var C0 = c0{
	NUL: 0x00,
	BEL: 0x07,
	BS:  0x08,
	HT:  0x09,
	LF:  0x0A,
	VT:  0x0B,
	FF:  0x0C,
	CR:  0x0D,
	SUB: 0x1A,
	ESC: 0x1B,
	SP:  0x20,
	DEL: 0x7F,
}

// IsControl reports whether c is a C0 control byte or DEL.
func IsControl(c uint8) bool {
	return c < C0.SP || c == C0.DEL
}

// IsPrintable reports whether c is a printable ASCII byte (0x20-0x7E).
func IsPrintable(c uint8) bool {
	return c >= C0.SP && c < C0.DEL
}
