package format

import (
	"fmt"
	"strings"
)

// Dump renders a hex/ASCII window of ±win bytes centred on pos: 16-byte
// rows, offsets prefixed, non-printables shown as '.'. The row containing
// pos is marked so a corruption report reads without the file at hand.
func Dump(b []byte, pos, win int) string {
	lo, hi := pos-win, pos+win
	if lo < 0 {
		lo = 0
	}
	if hi > len(b) {
		hi = len(b)
	}
	var sb strings.Builder
	for row := lo &^ 0xF; row < hi; row += 16 {
		start, end := row, row+16
		if start < lo {
			start = lo
		}
		if end > hi {
			end = hi
		}
		var hexPart, asciiPart strings.Builder
		for _, c := range b[start:end] {
			fmt.Fprintf(&hexPart, "%02X ", c)
			if c >= 32 && c <= 126 {
				asciiPart.WriteByte(c)
			} else {
				asciiPart.WriteByte('.')
			}
		}
		marker := ' '
		if row <= pos && pos < row+16 {
			marker = '>'
		}
		fmt.Fprintf(&sb, "%c 0x%08X: %-48s %s\n", marker, start, hexPart.String(), asciiPart.String())
	}
	return sb.String()
}
