package reader

import (
	"fmt"

	"github.com/jsbtools/jsbkit/pkg/types"
)

// FieldSpec names one expected token inside a row: its key text, the kinds
// it may decode as, and an optional resynchronization policy applied to the
// decoded token before the next field is read.
type FieldSpec struct {
	Key    string
	Kinds  []types.Kind
	Resync ResyncPolicy
}

// RowShape describes a fixed-arity row. The several near-identical table
// shapes in the format are instances of this descriptor consumed by
// ParseRows, not separate parser functions.
type RowShape struct {
	Name   string // used in error context, e.g. "expected_score"
	Fields []FieldSpec
}

// ParseRows pulls rows*len(shape.Fields) tokens from a fresh stream over
// b[body:stop] and checks each against the shape. Any mismatch aborts the
// whole parse; partial rows are never returned.
func ParseRows(b []byte, body, stop, rows int, shape RowShape) ([][]types.Token, error) {
	ts := NewStream(b, body, stop)
	out := make([][]types.Token, 0, rows)
	for row := 0; row < rows; row++ {
		ctx := fmt.Sprintf("%s row %02d", shape.Name, row)
		toks := make([]types.Token, 0, len(shape.Fields))
		for _, f := range shape.Fields {
			tok, ok := ts.Next()
			if !ok {
				return nil, unexpectedEOF(b, ctx, ts.Pos())
			}
			if tok.Key != f.Key || !kindAllowed(f.Kinds, tok.Kind) {
				return nil, tokenMismatch(b, ctx, f.Key, f.Kinds, tok)
			}
			if f.Resync != nil {
				if trimmed, drift := f.Resync(tok); drift {
					// One restart: trim the stray byte and rewind the
					// stream a single byte to realign. If the stream is
					// still off, the next field check is fatal.
					tok.Str = trimmed
					ts.Seek(tok.Cursor - 1)
				}
			}
			toks = append(toks, tok)
		}
		out = append(out, toks)
	}
	return out, nil
}

func kindAllowed(kinds []types.Kind, k types.Kind) bool {
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}
