// Package reader contains the token stream and the structural parsers that
// assemble typed records from JSB container bytes. The stream is lazy and
// restartable; the parsers are all-or-nothing per record and attach a
// hex/ASCII context window to every failure.
package reader

import (
	"github.com/jsbtools/jsbkit/internal/format"
	"github.com/jsbtools/jsbkit/pkg/types"
)

// Stream walks a buffer between two offsets, producing tokens forward-only.
// A malformed key header is not an error: the stream advances a single byte
// and keeps scanning, bounded only by the stop offset. Callers recovering
// from desynchronization re-seed the stream at an earlier offset with Seek.
type Stream struct {
	b    []byte
	pos  int
	stop int
}

// NewStream returns a stream over b[start:stop]. A stop of -1 or past the
// buffer means the end of the buffer. Token offsets are absolute.
func NewStream(b []byte, start, stop int) *Stream {
	if stop < 0 || stop > len(b) {
		stop = len(b)
	}
	if start < 0 {
		start = 0
	}
	return &Stream{b: b, pos: start, stop: stop}
}

// Seek abandons the current position and restarts scanning at off.
func (s *Stream) Seek(off int) {
	if off < 0 {
		off = 0
	}
	s.pos = off
}

// Pos returns the offset the next scan starts from.
func (s *Stream) Pos() int { return s.pos }

// Next produces the next token, or ok=false when fewer than two bytes remain
// before the stop offset or a value's encoding runs off the buffer.
func (s *Stream) Next() (types.Token, bool) {
	for s.pos+2 < s.stop {
		key, vpos, skip, ok := format.DecodeKey(s.b, s.pos)
		if !ok {
			// Noise, not an error: advance and retry.
			s.pos = skip
			continue
		}
		v, err := format.DecodeValue(s.b, vpos)
		if err != nil {
			// A truncated value ends the stream; there is nothing
			// after it worth resynchronizing into.
			s.pos = s.stop
			return types.Token{}, false
		}
		s.pos = v.Next
		return tokenFromVal(key, v), true
	}
	return types.Token{}, false
}

func tokenFromVal(key string, v format.Val) types.Token {
	tok := types.Token{Key: key, Cursor: v.Next}
	switch v.Kind {
	case format.ValInt32:
		tok.Kind = types.KindInt32
		tok.Int = v.Int
	case format.ValInt64:
		tok.Kind = types.KindInt64
		tok.Int = v.Int
	case format.ValString:
		tok.Kind = types.KindString
		tok.Str = v.Str
	default:
		tok.Kind = types.KindControl
		tok.Ctl = v.Ctl
	}
	return tok
}
