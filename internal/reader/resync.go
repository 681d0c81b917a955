package reader

import "github.com/jsbtools/jsbkit/pkg/types"

// ResyncPolicy inspects a freshly decoded string token and decides whether
// the stream has drifted. When it returns ok=true, the parser replaces the
// token's string with trimmed and restarts the stream one byte before the
// token's cursor. At most one restart is attempted per token; a mismatch
// after that is fatal.
//
// Detecting drift from token content is a heuristic, not a format
// guarantee, which is why it lives behind this narrow type: shapes opt in
// per field, and a policy can be swapped or disabled without touching the
// tokenizer.
type ResyncPolicy func(tok types.Token) (trimmed string, ok bool)

// TrailingControl reports drift when a string token's last character is a
// control byte (< 32). That happens when the tokenizer mis-sizes the
// preceding value and a stray marker byte gets glued onto the string.
func TrailingControl(tok types.Token) (string, bool) {
	if tok.Kind != types.KindString || tok.Str == "" {
		return "", false
	}
	last := tok.Str[len(tok.Str)-1]
	if last >= 32 {
		return "", false
	}
	return tok.Str[:len(tok.Str)-1], true
}
