// Package edit applies in-place integer patches to container buffers. All
// writes go through an offset table; the buffer never changes size, so a
// patched file stays byte-compatible with readers that memorized absolute
// offsets.
package edit

import (
	"fmt"
	"sort"

	"github.com/jsbtools/jsbkit/internal/buf"
	"github.com/jsbtools/jsbkit/internal/format"
	"github.com/jsbtools/jsbkit/pkg/types"
)

// Apply writes updates into data at the locations the offset table points
// at. Each table offset marks the first byte of the field's key text; the
// indicator byte follows the text and must be the fixed int32 marker, or
// the copy is skipped with a warning. Unknown keys warn too.
//
// Offsets are bounds-checked for every update before the first byte is
// written: a table that points outside the buffer aborts the whole apply
// with ErrInvalidOffsets and leaves data untouched. Room for the 4-byte
// payload is only demanded where the indicator really is the int32
// marker; a skippable occurrence near the end of the buffer is a
// warning, not a fatal table error.
//
// Updates are applied in key order so warnings come out deterministic.
func Apply(data []byte, table types.OffsetTable, updates map[string]uint32, ignore map[string]struct{}) ([]types.Warning, error) {
	keys := make([]string, 0, len(updates))
	for key := range updates {
		if _, skip := ignore[key]; skip {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		for _, off := range table[key] {
			ind := off + len(key)
			if off < 0 || ind >= len(data) {
				return nil, fmt.Errorf("%s at 0x%08X: %w", key, off, types.ErrInvalidOffsets)
			}
			if data[ind] == format.MarkerInt32 && ind+5 > len(data) {
				return nil, fmt.Errorf("%s at 0x%08X: %w", key, off, types.ErrInvalidOffsets)
			}
		}
	}

	var warns []types.Warning
	for _, key := range keys {
		offs, ok := table[key]
		if !ok {
			warns = append(warns, types.Warning{
				Kind:   types.WarnTableMiss,
				Field:  key,
				Detail: "key not present in offset table",
			})
			continue
		}
		for _, off := range offs {
			ind := off + len(key)
			if data[ind] != format.MarkerInt32 {
				warns = append(warns, types.Warning{
					Kind:   types.WarnIndicatorMismatch,
					Field:  key,
					Offset: ind,
					Detail: fmt.Sprintf("indicator 0x%02X limits editing", data[ind]),
				})
				continue
			}
			buf.PutU32LE(data, ind+1, updates[key])
		}
	}
	return warns, nil
}
