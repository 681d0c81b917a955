package reader

import (
	"bytes"
	"fmt"

	"github.com/jsbtools/jsbkit/internal/format"
	"github.com/jsbtools/jsbkit/pkg/types"
)

// ParseIndexTable decodes a two-column table of integers bounded either by
// a declared array count or by the stop offset. Rows are located by
// scanning for the two length-prefixed key sentinels rather than strict
// token stepping. When the container declares a count, parsing stops at
// exactly that count even if more matching rows follow, and a shortfall is
// a hard TruncatedOrCorrupt error, never a partial success.
func ParseIndexTable(b []byte, anchor, stop int, sectionKey, indexKey, valueKey string, rules format.IntRules) ([][2]int64, error) {
	body, declared, counted, err := format.BodyStart(b, anchor, sectionKey)
	if err != nil {
		return nil, containerErr(b, anchor, err)
	}
	if stop > len(b) || stop < body {
		stop = len(b)
	}

	idxSent := keySentinel(indexKey)
	valSent := keySentinel(valueKey)
	ctx := sectionKey + " table"

	var rows [][2]int64
	cur := body
	for {
		rel := bytes.Index(b[cur:stop], idxSent)
		if rel < 0 {
			break
		}
		ipos := cur + rel + len(idxSent)
		index, after, derr := format.DecodeInt(b, ipos, rules)
		if derr != nil {
			return nil, decodeFail(b, ctx+" "+indexKey, ipos, derr)
		}

		vrel := bytes.Index(b[after:stop], valSent)
		if vrel < 0 {
			return nil, unexpectedEOF(b, ctx+" ("+valueKey+" sentinel missing)", after)
		}
		vpos := after + vrel + len(valSent)
		value, next, derr := format.DecodeInt(b, vpos, rules)
		if derr != nil {
			return nil, decodeFail(b, ctx+" "+valueKey, vpos, derr)
		}

		rows = append(rows, [2]int64{index, value})
		if counted && len(rows) >= declared {
			break
		}
		cur = next
	}

	if counted && len(rows) != declared {
		return nil, &types.Error{
			Kind:    types.ErrKindTruncated,
			Msg:     fmt.Sprintf("%s: declared %d rows, found %d", ctx, declared, len(rows)),
			Offset:  cur,
			Context: format.Dump(b, cur, types.DumpWindow),
		}
	}
	return rows, nil
}

// keySentinel renders the single-length-byte header form of a key, the
// shape the table rows embed it in.
func keySentinel(key string) []byte {
	return append([]byte{byte(len(key))}, key...)
}

// ParseRoleLookup decodes the role_lookup_data table into typed records.
func ParseRoleLookup(b []byte, anchor, stop int) ([]types.RoleLookup, error) {
	rows, err := ParseIndexTable(b, anchor, stop,
		"role_lookup_data", "index", "role", format.LookupIntRules)
	if err != nil {
		return nil, err
	}
	out := make([]types.RoleLookup, len(rows))
	for i, r := range rows {
		out[i] = types.RoleLookup{Index: r[0], Role: r[1]}
	}
	return out, nil
}
