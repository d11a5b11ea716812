package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName_Codes(t *testing.T) {
	tcs := []struct {
		name Name
		fg   int
		bg   int
	}{
		{name: Black, fg: 30, bg: 40},
		{name: Red, fg: 31, bg: 41},
		{name: White, fg: 37, bg: 47},
		{name: BrightBlack, fg: 90, bg: 100},
		{name: BrightCyan, fg: 96, bg: 106},
		{name: BrightWhite, fg: 97, bg: 107},
	}
	for _, tc := range tcs {
		t.Run(tc.name.String(), func(t *testing.T) {
			assert.Equal(t, tc.fg, tc.name.FG())
			assert.Equal(t, tc.bg, tc.name.BG())
		})
	}
}

func TestParseName(t *testing.T) {
	for _, s := range []string{"bright-red", "Bright Red", "BRIGHT_RED"} {
		n, err := ParseName(s)
		require.NoError(t, err, s)
		assert.Equal(t, BrightRed, n)
	}
	n, err := ParseName("cyan")
	require.NoError(t, err)
	assert.Equal(t, Cyan, n)

	_, err = ParseName("purple")
	assert.Error(t, err)
}

func TestName_String(t *testing.T) {
	assert.Equal(t, "green", Green.String())
	assert.Equal(t, "bright-magenta", BrightMagenta.String())
	assert.Equal(t, "Name(16)", Name(16).String())
}

func TestParams(t *testing.T) {
	assert.Equal(t, []int{38, 2, 255, 0, 10}, RGB{255, 0, 10}.FG())
	assert.Equal(t, []int{48, 2, 1, 2, 3}, RGB{1, 2, 3}.BG())
	assert.Equal(t, []int{38, 5, 196}, Indexed(196).FG())
	assert.Equal(t, []int{48, 5, 0}, Indexed(0).BG())
}
