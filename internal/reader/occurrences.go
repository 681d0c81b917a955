package reader

import (
	"github.com/jsbtools/jsbkit/internal/format"
	"github.com/jsbtools/jsbkit/pkg/types"
)

// ReadOccurrence reads the integer stored for one field copy whose key
// text begins at off. The cursor first skips over the key's identifier
// bytes, then the indicator byte selects the value width. Unknown
// indicators and reads past the buffer yield ok=false rather than an
// error; a single stale offset should not sink the rest of the table.
func ReadOccurrence(b []byte, off int) (int64, bool) {
	if off < 0 || off >= len(b) {
		return 0, false
	}
	ind := format.ScanIndicator(b, off)
	if ind >= len(b) {
		return 0, false
	}
	width := format.IndicatorWidth(b[ind])
	if width == 0 || ind+1+width > len(b) {
		return 0, false
	}
	var v int64
	for i := width - 1; i >= 0; i-- {
		v = v<<8 | int64(b[ind+1+i])
	}
	return v, true
}

// DecodeOccurrences materializes every copy of every field the offset
// table knows about. The result has one map per copy slot; fields whose
// copy could not be read are absent from that map.
func DecodeOccurrences(b []byte, table types.OffsetTable, ignore map[string]struct{}) []map[string]int64 {
	copies := make([]map[string]int64, table.MaxCopies())
	for i := range copies {
		copies[i] = make(map[string]int64)
	}
	for key, offs := range table {
		if _, skip := ignore[key]; skip {
			continue
		}
		for i, off := range offs {
			if i >= len(copies) {
				break
			}
			if v, ok := ReadOccurrence(b, off); ok {
				copies[i][key] = v
			}
		}
	}
	return copies
}
