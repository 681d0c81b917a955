// Package writer emits JSB container bytes: a low-level builder for
// composing sections and an atomic file sink for persisting patched buffers.
package writer

import (
	"encoding/binary"

	"github.com/jsbtools/jsbkit/internal/format"
)

// Builder appends container-format encodings to a growing buffer. It is the
// encode half of the codec; the decode tests across the repo use it to
// compose fixtures byte-for-byte identical to what the format produces.
type Builder struct {
	buf []byte
}

// Bytes returns the accumulated buffer. The builder retains ownership;
// callers that keep the slice should copy it.
func (w *Builder) Bytes() []byte { return w.buf }

// Len returns the current buffer length, i.e. the offset the next append
// lands at. Fixture code uses it to record anchors and offset-table entries.
func (w *Builder) Len() int { return len(w.buf) }

// Raw appends literal bytes.
func (w *Builder) Raw(b ...byte) *Builder {
	w.buf = append(w.buf, b...)
	return w
}

// Key appends a key header with a single inline length byte. Keys longer
// than format.MaxKeyLen cannot be encoded this way and panic; fixture bugs
// should fail loudly.
func (w *Builder) Key(name string) *Builder {
	if len(name) == 0 || len(name) > format.MaxKeyLen {
		panic("writer: key length out of range")
	}
	w.buf = append(w.buf, byte(len(name)))
	w.buf = append(w.buf, name...)
	return w
}

// PrefixedKey appends a key header using a sentinel prefix byte plus a
// separate length byte.
func (w *Builder) PrefixedKey(prefix byte, name string) *Builder {
	if !format.IsKeyLenPrefix(prefix) {
		panic("writer: not a key length prefix")
	}
	if len(name) == 0 || len(name) > format.MaxKeyLen {
		panic("writer: key length out of range")
	}
	w.buf = append(w.buf, prefix, byte(len(name)))
	w.buf = append(w.buf, name...)
	return w
}

// Int32 appends the fixed 32-bit marker and a little-endian value.
func (w *Builder) Int32(v int32) *Builder {
	w.buf = append(w.buf, format.MarkerInt32)
	w.buf = binary.LittleEndian.AppendUint32(w.buf, uint32(v))
	return w
}

// Int64 appends the fixed 64-bit marker and a little-endian value.
func (w *Builder) Int64(v int64) *Builder {
	w.buf = append(w.buf, format.MarkerInt64)
	w.buf = binary.LittleEndian.AppendUint64(w.buf, uint64(v))
	return w
}

// Uint32 appends the unsigned 32-bit marker and a little-endian value.
func (w *Builder) Uint32(v uint32) *Builder {
	w.buf = append(w.buf, format.MarkerUint32)
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
	return w
}

// String appends either a short string (length ≤ 15, inline marker) or a
// long string (u32 length prefix), whichever the format would pick.
func (w *Builder) String(s string) *Builder {
	if len(s) <= 15 {
		w.buf = append(w.buf, format.ShortStringBase|byte(len(s)))
		w.buf = append(w.buf, s...)
		return w
	}
	return w.LongString(s)
}

// LongString always uses the u32 length-prefixed form.
func (w *Builder) LongString(s string) *Builder {
	w.buf = append(w.buf, format.MarkerLongString)
	w.buf = binary.LittleEndian.AppendUint32(w.buf, uint32(len(s)))
	w.buf = append(w.buf, s...)
	return w
}

// TinySigned appends the 1-byte tiny encoding of v in coefficient context.
// v must be in [-63, 63].
func (w *Builder) TinySigned(v int64) *Builder {
	switch {
	case v >= 0 && v <= 63:
		w.buf = append(w.buf, format.TinyPositiveBase+byte(v))
	case v < 0 && v >= -63:
		w.buf = append(w.buf, format.TinyNegativeBase+byte(-v))
	default:
		panic("writer: tiny signed value out of range")
	}
	return w
}

// TinyUnsigned appends the 1-byte tiny encoding of v in lookup context.
// v must be in [0, 127] and must not collide with the nibble pattern.
func (w *Builder) TinyUnsigned(v int64) *Builder {
	if v < 0 || v > 127 {
		panic("writer: tiny unsigned value out of range")
	}
	mark := format.TinyPositiveBase + byte(v)
	if mark&0x0F == format.NibbleIndicatorLow {
		panic("writer: tiny unsigned collides with nibble encoding")
	}
	w.buf = append(w.buf, mark)
	return w
}

// Nibble appends the 1-byte compressed form used in index/role tables.
// v must be in [0, 7].
func (w *Builder) Nibble(v int64) *Builder {
	if v < 0 || v > 7 {
		panic("writer: nibble value out of range")
	}
	w.buf = append(w.buf, 0x80|byte(v)<<4|format.NibbleIndicatorLow)
	return w
}

// Varint appends the zigzag varint encoding of v.
func (w *Builder) Varint(v int64) *Builder {
	w.buf = format.AppendZigzag(w.buf, v)
	return w
}

// Object appends an object container marker.
func (w *Builder) Object(marker byte) *Builder {
	if !format.IsObjectMarker(marker) && marker != format.VersionObjectMarker {
		panic("writer: not an object marker")
	}
	w.buf = append(w.buf, marker)
	return w
}

// Array appends the array marker and its declared element count.
func (w *Builder) Array(count uint32) *Builder {
	w.buf = append(w.buf, format.MarkerArray)
	w.buf = binary.LittleEndian.AppendUint32(w.buf, count)
	return w
}
