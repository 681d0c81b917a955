// Package jsb provides read and patch access to JSB binary container files.
//
// # Overview
//
// A JSB container is a length-prefixed, self-describing record store: keys
// carry their own length headers, values carry a one-byte marker selecting
// their encoding, and compound fields nest through container markers. The
// files ship without a table of contents, so structured access starts from
// externally supplied anchors (absolute offsets of key text) or offset
// tables (absolute offsets per field copy).
//
// # Key Types
//
//   - Container: an opened file, mmap-backed on unix
//   - types.Season: the full record tree one set of anchors decodes to
//   - types.OffsetTable: field name to absolute offsets of each copy
//   - types.Anchors: section offsets for one season object
//
// # Opening a Container
//
//	c, err := jsb.Open("player_ratings_data.jsb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
// In-memory buffers go through Load instead.
//
// # Decoding
//
// DecodeSeason walks the anchored sections in order: the expected-score
// triplet table, the coefficient block array, the role lookup table, the
// start-value scalar and the version record. DecodeOccurrences reads every
// copy of every field an offset table names. DecodeWeights recovers
// flat prefixed keys from containers whose nesting is too irregular to
// walk structurally.
//
// # Patching
//
// Patch rewrites 32-bit values in place through an offset table. The
// buffer never changes length, so all other absolute offsets stay valid.
// Fields whose stored encoding is not the fixed 32-bit form are skipped
// with a warning rather than rewritten.
//
// Decode failures carry the absolute offset and a hex/ASCII window of the
// surrounding bytes; see pkg/types.Error.
//
// For cross-copy consistency checking, see the verify package.
package jsb
