package reader

import (
	"fmt"
	"strings"

	"github.com/jsbtools/jsbkit/internal/format"
	"github.com/jsbtools/jsbkit/pkg/types"
)

func tokenMismatch(b []byte, ctx, wantKey string, wantKinds []types.Kind, got types.Token) *types.Error {
	kinds := make([]string, len(wantKinds))
	for i, k := range wantKinds {
		kinds[i] = k.String()
	}
	return &types.Error{
		Kind: types.ErrKindTokenMismatch,
		Msg: fmt.Sprintf("%s: wanted (%s,%s), got (%s,%s)=%s",
			ctx, wantKey, strings.Join(kinds, "|"), got.Key, got.Kind, got.Value()),
		Offset:  got.Cursor,
		Context: format.Dump(b, got.Cursor, types.DumpWindow),
	}
}

func anchorMismatch(b []byte, key string, at int) *types.Error {
	return &types.Error{
		Kind:    types.ErrKindAnchor,
		Msg:     fmt.Sprintf("key text %q not found at 0x%08X", key, at),
		Offset:  at,
		Context: format.Dump(b, at, types.DumpWindow),
	}
}

func unexpectedEOF(b []byte, ctx string, at int) *types.Error {
	return &types.Error{
		Kind:    types.ErrKindTruncated,
		Msg:     "unexpected end of stream inside " + ctx,
		Offset:  at,
		Context: format.Dump(b, at, types.DumpWindow),
	}
}

func decodeFail(b []byte, ctx string, at int, err error) *types.Error {
	return &types.Error{
		Kind:    types.ErrKindUnknownMarker,
		Msg:     ctx + ": value decode failed",
		Offset:  at,
		Context: format.Dump(b, at, types.DumpWindow),
		Err:     err,
	}
}
