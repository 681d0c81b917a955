package types

// Container format limits. These come from the format itself, not from any
// particular file: key headers never claim more than MaxKeyLen bytes of text,
// and a length byte outside 1..MaxKeyLen is noise the stream reader skips.
const (
	// MaxKeyLen is the longest key text a well-formed header can declare.
	MaxKeyLen = 96

	// ShortStringMax is the longest string an inline short-string marker
	// can carry (the marker's low nibble).
	ShortStringMax = 15

	// DumpWindow is the default half-width, in bytes, of the hex/ASCII
	// context window attached to decode errors.
	DumpWindow = 64
)
