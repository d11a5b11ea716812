package ansi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	tcs := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "plain", input: "hello", expected: "hello"},
		{name: "only sgr", input: "\x1b[1m\x1b[31;42m\x1b[0m", expected: ""},
		{name: "styled word", input: "a\x1b[1mb\x1b[0mc", expected: "abc"},
		{name: "unterminated", input: "\x1b[31", expected: "\x1b[31"},
		{name: "cursor sequence kept", input: "\x1b[2Jx", expected: "\x1b[2Jx"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Strip(tc.input))
		})
	}
}

func TestSGRPrefixLen(t *testing.T) {
	assert.Equal(t, 4, SGRPrefixLen("\x1b[1mhello"))
	assert.Equal(t, 0, SGRPrefixLen("x\x1b[1m"))
	assert.Equal(t, 0, SGRPrefixLen("\x1b[1"))
}

func TestSGR(t *testing.T) {
	assert.Equal(t, "\x1b[1;31m", SGR(TextBold, FgRed))
	assert.Equal(t, "\x1b[m", SGR())
	assert.Equal(t, "\x1b[38;5;200m", SGR(38, 5, 200))
	assert.Equal(t, "\x1b[1mhi\x1b[0m", Styled("hi", TextBold))
	assert.Equal(t, "hi", Styled("hi"))
	assert.Equal(t, "\x1b[3;4H", Sequence('H', 3, 4))
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "ESC [ A", Quote("\x1b[A"))
	assert.Equal(t, "ESC [ 1 ; 5 A", Quote("\x1b[1;5A"))
	assert.Equal(t, "0x80", Quote("\x80"))
}

func TestPrintable(t *testing.T) {
	assert.True(t, IsPrintable(' '))
	assert.True(t, IsPrintable('~'))
	assert.False(t, IsPrintable(C0.DEL))
	assert.True(t, IsControl(C0.ESC))
	assert.True(t, IsControl(C0.DEL))
	assert.False(t, IsControl('a'))
}

func TestString(t *testing.T) {
	assert.Equal(t, `CR (0x0D) ('\r')`, String(C0.CR))
	assert.Equal(t, `ESC (0x1B) ('\x1b')`, String(C0.ESC))
	assert.Equal(t, `0x41 ('A')`, String('A'))
}
