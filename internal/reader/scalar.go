package reader

import (
	"fmt"

	"github.com/jsbtools/jsbkit/internal/buf"
	"github.com/jsbtools/jsbkit/internal/format"
	"github.com/jsbtools/jsbkit/pkg/types"
)

// ParseScalar reads a single keyed integer at anchor. Only the fixed-width
// int32 and int64 markers are accepted here; anything else is a hard
// error, since the scalar fields this covers never use the tiny forms.
func ParseScalar(b []byte, anchor int, key string) (int64, error) {
	if !format.AtKey(b, anchor, key) {
		return 0, anchorMismatch(b, key, anchor)
	}
	pos := anchor + len(key)
	if pos >= len(b) {
		return 0, unexpectedEOF(b, key, pos)
	}
	switch b[pos] {
	case format.MarkerInt32:
		if !buf.Has(b, pos+1, 4) {
			return 0, unexpectedEOF(b, key, pos)
		}
		return int64(buf.I32LE(b[pos+1:])), nil
	case format.MarkerInt64:
		if !buf.Has(b, pos+1, 8) {
			return 0, unexpectedEOF(b, key, pos)
		}
		return buf.I64LE(b[pos+1:]), nil
	default:
		return 0, &types.Error{
			Kind:    types.ErrKindUnknownMarker,
			Msg:     fmt.Sprintf("%s: marker 0x%02X is not a fixed-width int", key, b[pos]),
			Offset:  pos,
			Context: format.Dump(b, pos, types.DumpWindow),
		}
	}
}
