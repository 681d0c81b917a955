package format

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/jsbtools/jsbkit/internal/buf"
)

// ValKind is the low-level class DecodeValue assigns a decoded value.
// The reader layer maps these onto the public token kinds.
type ValKind uint8

const (
	ValInt32 ValKind = iota
	ValInt64
	ValString
	ValControl
)

// Val is a decoded value plus the offset of the first byte after it.
type Val struct {
	Kind ValKind
	Int  int64
	Str  string
	Ctl  byte
	Next int
}

var utf8Lossy = unicode.UTF8.NewDecoder()

// DecodeText converts raw key or string bytes to UTF-8, replacing invalid
// sequences with U+FFFD. String decoding never fails on bad bytes.
func DecodeText(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	out, err := utf8Lossy.Bytes(raw)
	if err != nil {
		// The UTF-8 decoder substitutes rather than erroring; this is
		// unreachable in practice but string decode must stay total.
		return string(raw)
	}
	return string(out)
}

// DecodeValue decodes the value whose marker byte sits at off, using the
// stream-context rules: fixed int32/int64, long string, short string, and
// anything else as a control byte carrying no payload.
//
// ErrTruncated is returned when the marker promises more bytes than remain.
func DecodeValue(b []byte, off int) (Val, error) {
	if off >= len(b) {
		return Val{}, fmt.Errorf("value at 0x%08X: %w", off, ErrTruncated)
	}
	mark := b[off]
	i := off + 1
	switch {
	case mark == MarkerInt32:
		raw, ok := buf.Slice(b, i, 4)
		if !ok {
			return Val{}, fmt.Errorf("int32 at 0x%08X: %w", off, ErrTruncated)
		}
		return Val{Kind: ValInt32, Int: int64(buf.I32LE(raw)), Next: i + 4}, nil
	case mark == MarkerInt64:
		raw, ok := buf.Slice(b, i, 8)
		if !ok {
			return Val{}, fmt.Errorf("int64 at 0x%08X: %w", off, ErrTruncated)
		}
		return Val{Kind: ValInt64, Int: buf.I64LE(raw), Next: i + 8}, nil
	case mark == MarkerLongString:
		raw, ok := buf.Slice(b, i, 4)
		if !ok {
			return Val{}, fmt.Errorf("string length at 0x%08X: %w", off, ErrTruncated)
		}
		slen := int(buf.U32LE(raw))
		text, ok := buf.Slice(b, i+4, slen)
		if !ok {
			return Val{}, fmt.Errorf("string body at 0x%08X: %w", off, ErrTruncated)
		}
		return Val{Kind: ValString, Str: DecodeText(text), Next: i + 4 + slen}, nil
	case mark >= ShortStringBase && mark <= ShortStringTop:
		slen := int(mark & 0x0F)
		text, ok := buf.Slice(b, i, slen)
		if !ok {
			return Val{}, fmt.Errorf("short string at 0x%08X: %w", off, ErrTruncated)
		}
		return Val{Kind: ValString, Str: DecodeText(text), Next: i + slen}, nil
	default:
		return Val{Kind: ValControl, Ctl: mark, Next: i}, nil
	}
}

// IntRules configures the shape-local integer decoding of DecodeInt. The
// tiny sub-ranges differ subtly between record shapes, so each shape carries
// its own rule set instead of sharing a global one.
type IntRules struct {
	// Nibble enables the 1-byte compressed form: top bit set and low
	// nibble == NibbleIndicatorLow, value = (marker & 0x7F) >> 4.
	Nibble bool
	// TinySigned enables the split tiny range: 0x80-0xBF positive,
	// 0xC0-0xFF negative.
	TinySigned bool
	// TinyUnsigned enables marker-0x80 for the whole 0x80-0xFF range.
	TinyUnsigned bool
	// TinyMasked enables marker&VersionTinyMask for the 0x80-0xFF range.
	TinyMasked bool
	// Unsigned32 and Unsigned64 admit the 0x04/0x05 fixed-width markers.
	Unsigned32 bool
	Unsigned64 bool
	// Varint falls back to a zigzag varint when no other rule matches.
	// Without it, an unmatched marker is ErrUnknownMarker.
	Varint bool
}

// Integer rule sets for the known record shapes. Unseen shapes must define
// their own; these boundaries are not a format-wide guarantee.
var (
	// CoefficientIntRules govern coefficient block values.
	CoefficientIntRules = IntRules{TinySigned: true, Varint: true}
	// LookupIntRules govern index/role table values.
	LookupIntRules = IntRules{Nibble: true, TinyUnsigned: true, Unsigned32: true, Unsigned64: true}
	// VersionIntRules govern the 4-field version record values.
	VersionIntRules = IntRules{TinyMasked: true}
)

// DecodeInt decodes an integer whose marker sits at off under the given
// shape-local rules. It fails closed: a marker no rule recognizes is
// ErrUnknownMarker, never a guess.
func DecodeInt(b []byte, off int, rules IntRules) (int64, int, error) {
	if off >= len(b) {
		return 0, 0, fmt.Errorf("int at 0x%08X: %w", off, ErrTruncated)
	}
	mark := b[off]
	i := off + 1

	// The nibble form shadows every other high-bit rule, so test it first.
	if rules.Nibble && mark >= 0x80 && mark&0x0F == NibbleIndicatorLow {
		return int64((mark & 0x7F) >> 4), i, nil
	}

	switch mark {
	case MarkerInt32:
		raw, ok := buf.Slice(b, i, 4)
		if !ok {
			return 0, 0, fmt.Errorf("int32 at 0x%08X: %w", off, ErrTruncated)
		}
		return int64(buf.I32LE(raw)), i + 4, nil
	case MarkerInt64:
		raw, ok := buf.Slice(b, i, 8)
		if !ok {
			return 0, 0, fmt.Errorf("int64 at 0x%08X: %w", off, ErrTruncated)
		}
		return buf.I64LE(raw), i + 8, nil
	case MarkerUint32:
		if rules.Unsigned32 {
			raw, ok := buf.Slice(b, i, 4)
			if !ok {
				return 0, 0, fmt.Errorf("uint32 at 0x%08X: %w", off, ErrTruncated)
			}
			return int64(buf.U32LE(raw)), i + 4, nil
		}
	case MarkerUint64:
		if rules.Unsigned64 {
			raw, ok := buf.Slice(b, i, 8)
			if !ok {
				return 0, 0, fmt.Errorf("uint64 at 0x%08X: %w", off, ErrTruncated)
			}
			return int64(buf.U64LE(raw)), i + 8, nil
		}
	}

	if mark >= 0x80 {
		switch {
		case rules.TinyMasked:
			return int64(mark & VersionTinyMask), i, nil
		case rules.TinySigned:
			if mark < TinyNegativeBase {
				return int64(mark - TinyPositiveBase), i, nil
			}
			return -int64(mark - TinyNegativeBase), i, nil
		case rules.TinyUnsigned:
			return int64(mark - TinyPositiveBase), i, nil
		}
	}

	if rules.Varint {
		return DecodeZigzag(b, off)
	}
	return 0, 0, fmt.Errorf("int marker 0x%02X at 0x%08X: %w", mark, off, ErrUnknownMarker)
}

// IndicatorWidth returns how many value bytes follow the indicator byte in
// offset-table decoding: 4 for the fixed int32 marker, 1 for the compressed
// nibble form, and 0 when the indicator is not an integer.
func IndicatorWidth(ind byte) int {
	if ind == MarkerInt32 {
		return 4
	}
	if ind&0x80 != 0 && ind&0x0F == NibbleIndicatorLow {
		return 1
	}
	return 0
}

// ScanIndicator advances from pos past the identifier characters of a key
// ([A-Za-z0-9_]) and returns the offset of the first non-identifier byte,
// which for a well-formed field is its indicator byte.
func ScanIndicator(b []byte, pos int) int {
	for pos < len(b) && isIdent(b[pos]) {
		pos++
	}
	return pos
}

func isIdent(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= 'a' && c <= 'z')
}
