// Package tabstops tracks which columns of a line are tab stops.
package tabstops

// Interval is the default distance between tab stops.
const Interval = 8

type unit = uint8

const unitBits = 8

// Tabstops is a growable bit set over columns 0..Len()-1.
type Tabstops struct {
	cols  int
	units []unit
}

var masks = func() [unitBits]unit {
	var m [unitBits]unit
	for i := range unitBits {
		m[i] = 1 << i
	}
	return m
}()

func entry(col int) int { return col / unitBits }
func index(col int) int { return col % unitBits }

// New returns stops for cols columns, one every interval columns starting at
// column interval. An interval of 0 sets none.
func New(cols, interval int) *Tabstops {
	t := &Tabstops{}
	t.Resize(cols)
	t.Reset(interval)
	return t
}

// Len returns the number of columns tracked.
func (t *Tabstops) Len() int {
	return t.cols
}

// Set marks col as a stop. Columns outside 0..Len()-1 are ignored.
func (t *Tabstops) Set(col int) {
	if col < 0 || col >= t.cols {
		return
	}
	t.units[entry(col)] |= masks[index(col)]
}

func (t *Tabstops) Unset(col int) {
	if col < 0 || col >= t.cols {
		return
	}
	t.units[entry(col)] &^= masks[index(col)]
}

// Get reports whether col is a stop.
func (t *Tabstops) Get(col int) bool {
	if col < 0 || col >= t.cols {
		return false
	}
	return t.units[entry(col)]&masks[index(col)] != 0
}

// Resize changes the number of columns. Stops in columns that survive are
// kept; columns dropped by shrinking come back unset.
func (t *Tabstops) Resize(cols int) {
	cols = max(cols, 0)
	for c := cols; c < t.cols; c++ {
		t.Unset(c)
	}
	needed := (cols + unitBits - 1) / unitBits
	if needed > len(t.units) {
		grown := make([]unit, needed)
		copy(grown, t.units)
		t.units = grown
	}
	t.cols = cols
}

// Reset clears every stop and then sets one every interval columns.
func (t *Tabstops) Reset(interval int) {
	clear(t.units)
	if interval <= 0 {
		return
	}
	for c := interval; c < t.cols; c += interval {
		t.Set(c)
	}
}

// Next returns the first stop after col.
func (t *Tabstops) Next(col int) (int, bool) {
	for c := max(col+1, 0); c < t.cols; c++ {
		if t.Get(c) {
			return c, true
		}
	}
	return 0, false
}
