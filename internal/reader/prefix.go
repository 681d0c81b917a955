package reader

import (
	"bytes"

	"github.com/jsbtools/jsbkit/internal/buf"
	"github.com/jsbtools/jsbkit/internal/format"
)

// PrefixHit is one flat key the prefix scanner recovered. HasVal is false
// for bare keys and for keys that open a nested object.
type PrefixHit struct {
	Key    string
	Val    int64
	HasVal bool
}

// bareKeyFollowers are the bytes that may legally follow a value-less key:
// a short-string marker, a version object, a prefixed key header, or NUL
// padding. A prefixed key text followed by anything else is treated as a
// false positive and skipped.
var bareKeyFollowers = []byte{0x82, 0x5A, 0x6A, 0x00}

// ScanPrefixed walks the whole buffer looking for keys that start with one
// of the given prefixes, without tracking container structure at all. The
// weights container nests its packs irregularly, so structural walking is
// not reliable there; matching key families by prefix is.
//
// Three shapes are accepted after the key text: an int32 marker with its
// four value bytes, a nested-object marker (skipped, no value), or one of
// bareKeyFollowers (no value).
func ScanPrefixed(b []byte, prefixes []string) []PrefixHit {
	var hits []PrefixHit
	pos := 0
	for pos < len(b) {
		start, pfx := nextPrefix(b, pos, prefixes)
		if start < 0 {
			break
		}
		i := start + len(pfx)
		limit := i + format.MaxKeyLen
		for i < len(b) && i < limit && isWeightIdent(b[i]) {
			i++
		}
		if i == start+len(pfx) {
			pos = start + 1
			continue
		}
		key := string(b[start:i])

		switch {
		case i < len(b) && b[i] == format.MarkerInt32 && buf.Has(b, i+1, 4):
			hits = append(hits, PrefixHit{Key: key, Val: int64(buf.I32LE(b[i+1:])), HasVal: true})
			pos = i + 5
		case i < len(b) && b[i] == format.MarkerNested && buf.Has(b, i+1, 5):
			hits = append(hits, PrefixHit{Key: key})
			pos = i + 6
		case i < len(b) && bytes.IndexByte(bareKeyFollowers, b[i]) >= 0:
			hits = append(hits, PrefixHit{Key: key})
			pos = i
		case i-1 > start+len(pfx) && bytes.IndexByte(bareKeyFollowers, b[i-1]) >= 0:
			// 'Z' is both a tail byte and a key-prefix follower, so the
			// greedy loop can run one byte past a bare key. Give the last
			// byte back and let it serve as the follower.
			hits = append(hits, PrefixHit{Key: string(b[start : i-1])})
			pos = i - 1
		default:
			pos = start + 1
		}
	}
	return hits
}

func nextPrefix(b []byte, pos int, prefixes []string) (int, string) {
	best := -1
	var hit string
	for _, p := range prefixes {
		i := bytes.Index(b[pos:], []byte(p))
		if i < 0 {
			continue
		}
		if at := pos + i; best < 0 || at < best {
			best, hit = at, p
		}
	}
	return best, hit
}

// isWeightIdent matches the continuation alphabet of weight keys. The
// prefixes themselves may carry lowercase, the tails never do.
func isWeightIdent(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == ':'
}
