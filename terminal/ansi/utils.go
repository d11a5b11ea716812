package ansi

import "fmt"

// table is a map of ANSI control characters to their names.
// any unsupported ansi characters will have hex value key.
var table = map[uint8]string{
	C0.NUL: "NUL", // Null
	0x01:   "SOH", // Start of Heading
	0x02:   "STX", // Start of Text
	0x03:   "ETX", // End of Text
	0x04:   "EOT", // End of Transmission
	0x05:   "ENQ", // Enquiry
	0x06:   "ACK", // Acknowledge
	C0.BEL: "BEL", // Bell
	C0.BS:  "BS",  // Backspace
	C0.HT:  "HT",  // Horizontal Tab
	C0.LF:  "LF",  // Line Feed
	C0.VT:  "VT",  // Vertical Tab
	C0.FF:  "FF",  // Form Feed
	C0.CR:  "CR",  // Carriage Return
	0x0E:   "SO",  // Shift Out
	0x0F:   "SI",  // Shift In
	0x10:   "DLE", // Data Link Escape
	0x11:   "DC1", // Device Control 1
	0x12:   "DC2", // Device Control 2
	0x13:   "DC3", // Device Control 3
	0x14:   "DC4", // Device Control 4
	0x15:   "NAK", // Negative Acknowledge
	0x16:   "SYN", // Synchronous Idle
	0x17:   "ETB", // End of Transmission Block
	0x18:   "CAN", // Cancel
	0x19:   "EM",  // End of Medium
	C0.SUB: "SUB", // Substitute
	C0.ESC: "ESC", // Escape
	0x1C:   "FS",  // File Separator
	0x1D:   "GS",  // Group Separator
	0x1E:   "RS",  // Record Separator
	0x1F:   "US",  // Unit Separator
	C0.DEL: "DEL", // Delete
}

// String describes a single byte for debug logs.
func String(val uint8) string {
	if name, ok := table[val]; ok {
		return fmt.Sprintf("%s (0x%02X) (%q)", name, val, rune(val))
	}
	return fmt.Sprintf("0x%02X (%q)", val, rune(val))
}

// Quote describes a raw byte sequence byte by byte, e.g. "ESC [ A".
func Quote(seq string) string {
	out := make([]byte, 0, len(seq)*3)
	for i := 0; i < len(seq); i++ {
		if i > 0 {
			out = append(out, ' ')
		}
		c := seq[i]
		if name, ok := table[c]; ok {
			out = append(out, name...)
			continue
		}
		if IsPrintable(c) {
			out = append(out, c)
			continue
		}
		out = fmt.Appendf(out, "0x%02X", c)
	}
	return string(out)
}
