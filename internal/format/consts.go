// Package format houses the low-level byte codec for JSB containers: key
// headers, value markers, tiny and varint integer encodings, and the hex
// dump used in diagnostics. The goal is to keep the parsing focused,
// allocation-free where possible, and independent from the public API so
// higher-level packages can orchestrate the data in a more ergonomic form.
package format

const (
	// MarkerInt32 precedes a 4-byte little-endian signed integer.
	MarkerInt32 = 0x02

	// MarkerInt64 precedes an 8-byte little-endian signed integer.
	MarkerInt64 = 0x03

	// MarkerUint32 and MarkerUint64 precede the unsigned fixed-width
	// variants. Only some record shapes use them.
	MarkerUint32 = 0x04
	MarkerUint64 = 0x05

	// MarkerLongString precedes a 4-byte unsigned length followed by that
	// many UTF-8 bytes.
	MarkerLongString = 0x08

	// MarkerArray declares an array container; a 4-byte little-endian
	// element count follows immediately.
	MarkerArray = 0x09

	// MarkerNested declares a nested object header inside prefix-scanned
	// sections; five bytes follow and are skipped.
	MarkerNested = 0x0A

	// ShortStringBase through ShortStringTop are inline strings: the
	// marker's low nibble is the byte length (0-15), text follows directly.
	ShortStringBase = 0x80
	ShortStringTop  = 0x8F

	// TinyPositiveBase and TinyNegativeBase split the high marker range
	// into tiny signed integers in coefficient context: 0x80-0xBF encode
	// value-0x80, 0xC0-0xFF encode -(value-0xC0).
	TinyPositiveBase = 0x80
	TinyNegativeBase = 0xC0

	// NibbleIndicatorLow is the low nibble that, combined with the top bit
	// set, marks a 1-byte compressed integer: value = (marker & 0x7F) >> 4.
	NibbleIndicatorLow = 0x02

	// VersionTinyMask extracts the 0-63 payload of a tiny integer inside
	// the version record shape.
	VersionTinyMask = 0x3F

	// MaxKeyLen bounds the decoded length of any key header. Anything
	// larger is treated as noise, not a key.
	MaxKeyLen = 96
)

// KeyLenPrefixes are the sentinel bytes announcing "read one more length
// byte, then the key text". A first byte in 1..MaxKeyLen is itself the
// length.
var KeyLenPrefixes = [...]byte{0x2A, 0x4A, 0x5A, 0x6A}

// ObjectMarkers are the container bytes declaring a compound field as an
// object. Objects carry no element count.
var ObjectMarkers = [...]byte{0xC9, 0x99}

// VersionObjectMarker is the only container byte the strict version record
// accepts.
const VersionObjectMarker = 0x5A

// IsObjectMarker reports whether b opens an object container.
func IsObjectMarker(b byte) bool {
	for _, m := range ObjectMarkers {
		if b == m {
			return true
		}
	}
	return false
}

// IsKeyLenPrefix reports whether b announces a prefixed key header.
func IsKeyLenPrefix(b byte) bool {
	for _, p := range KeyLenPrefixes {
		if b == p {
			return true
		}
	}
	return false
}
