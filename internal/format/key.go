package format

import "github.com/jsbtools/jsbkit/internal/buf"

// DecodeKey reads a key header at off. On success it returns the key text and
// the offset of the value marker that follows.
//
// A malformed header (declared length 0 or > MaxKeyLen, or text running past
// the buffer) is not an error: the stream reader treats it as noise. skip is
// the offset scanning should resume from in that case — one byte past the
// offending length byte, exactly mirroring the recovery the format tolerates.
func DecodeKey(b []byte, off int) (key string, next int, skip int, ok bool) {
	if off >= len(b) {
		return "", 0, len(b), false
	}
	mark := b[off]
	i := off + 1
	var klen int
	switch {
	case IsKeyLenPrefix(mark):
		if i >= len(b) {
			return "", 0, len(b), false
		}
		klen = int(b[i])
		i++
		if klen <= 0 || klen > MaxKeyLen {
			return "", 0, i, false
		}
	case mark > 0 && int(mark) <= MaxKeyLen:
		klen = int(mark)
	default:
		return "", 0, off + 1, false
	}
	text, fits := buf.Slice(b, i, klen)
	if !fits {
		return "", 0, off + 1, false
	}
	return DecodeText(text), i + klen, 0, true
}

// AtKey reports whether the bytes at off spell exactly the given key text.
// Anchored shapes use this before trusting a caller-supplied offset.
func AtKey(b []byte, off int, key string) bool {
	text, fits := buf.Slice(b, off, len(key))
	if !fits {
		return false
	}
	return string(text) == key
}
