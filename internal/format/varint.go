package format

import "fmt"

// DecodeZigzag reads a zigzag varint starting at off: 7 payload bits per
// byte, top bit as continuation, zigzag transform after accumulation.
func DecodeZigzag(b []byte, off int) (int64, int, error) {
	var acc uint64
	shift := 0
	i := off
	for {
		if i >= len(b) {
			return 0, 0, fmt.Errorf("varint at 0x%08X: %w", off, ErrTruncated)
		}
		if shift > 63 {
			return 0, 0, fmt.Errorf("varint at 0x%08X overlong: %w", off, ErrUnknownMarker)
		}
		c := b[i]
		acc |= uint64(c&0x7F) << shift
		i++
		if c < 0x80 {
			break
		}
		shift += 7
	}
	return int64(acc>>1) ^ -int64(acc&1), i, nil
}

// AppendZigzag appends the zigzag varint encoding of v to dst.
func AppendZigzag(dst []byte, v int64) []byte {
	u := uint64(v<<1) ^ uint64(v>>63)
	for u >= 0x80 {
		dst = append(dst, byte(u)|0x80)
		u >>= 7
	}
	return append(dst, byte(u))
}
