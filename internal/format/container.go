package format

import (
	"fmt"

	"github.com/jsbtools/jsbkit/internal/buf"
)

// BodyStart locates the first token of a compound field. anchor must point
// at the first byte of the field's key text; the container marker follows
// the text directly. Object containers yield counted=false; array containers
// carry a 4-byte element count and yield counted=true.
func BodyStart(b []byte, anchor int, key string) (body int, count int, counted bool, err error) {
	if !AtKey(b, anchor, key) {
		return 0, 0, false, fmt.Errorf("%s at 0x%08X: %w", key, anchor, ErrAnchorMismatch)
	}
	pos := anchor + len(key)
	if pos >= len(b) {
		return 0, 0, false, fmt.Errorf("%s container at 0x%08X: %w", key, pos, ErrTruncated)
	}
	switch mark := b[pos]; {
	case IsObjectMarker(mark):
		return pos + 1, 0, false, nil
	case mark == MarkerArray:
		raw, ok := buf.Slice(b, pos+1, 4)
		if !ok {
			return 0, 0, false, fmt.Errorf("%s array count at 0x%08X: %w", key, pos, ErrTruncated)
		}
		return pos + 5, int(buf.U32LE(raw)), true, nil
	default:
		return 0, 0, false, fmt.Errorf("%s container 0x%02X at 0x%08X: %w", key, mark, pos, ErrBadContainer)
	}
}
