package reader

import (
	"fmt"

	"github.com/jsbtools/jsbkit/internal/format"
	"github.com/jsbtools/jsbkit/pkg/types"
)

var versionKeys = []string{
	"version_major",
	"version_minor",
	"version_release",
	"version_year",
}

// ParseVersion decodes the build-version record at anchor. The record is
// rigid: the outer key text, a version object marker, then the four keys
// in a fixed order, each with a single length byte. Any deviation is a
// hard error because a mismatch here means the anchor is stale.
func ParseVersion(b []byte, anchor int) (types.Version, error) {
	var v types.Version

	const outer = "version"
	if !format.AtKey(b, anchor, outer) {
		return v, anchorMismatch(b, outer, anchor)
	}
	pos := anchor + len(outer)
	if pos >= len(b) {
		return v, unexpectedEOF(b, outer, pos)
	}
	if b[pos] != format.VersionObjectMarker {
		return v, &types.Error{
			Kind:    types.ErrKindContainer,
			Msg:     fmt.Sprintf("version: expected container 0x%02X, got 0x%02X", format.VersionObjectMarker, b[pos]),
			Offset:  pos,
			Context: format.Dump(b, pos, types.DumpWindow),
		}
	}
	pos++

	out := make([]int64, len(versionKeys))
	for i, key := range versionKeys {
		if pos >= len(b) {
			return v, unexpectedEOF(b, key, pos)
		}
		if int(b[pos]) != len(key) {
			return v, &types.Error{
				Kind:    types.ErrKindTokenMismatch,
				Msg:     fmt.Sprintf("version: key length %d where %q expected", b[pos], key),
				Offset:  pos,
				Context: format.Dump(b, pos, types.DumpWindow),
			}
		}
		pos++
		if !format.AtKey(b, pos, key) {
			return v, anchorMismatch(b, key, pos)
		}
		pos += len(key)

		val, next, err := format.DecodeInt(b, pos, format.VersionIntRules)
		if err != nil {
			return v, decodeFail(b, "version "+key, pos, err)
		}
		out[i] = val
		pos = next
	}

	v.Major = out[0]
	v.Minor = out[1]
	v.Release = out[2]
	v.Year = out[3]
	return v, nil
}
