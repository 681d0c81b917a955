package types

import "fmt"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindTokenMismatch ErrKind = iota // expected key/kind differs from decoded token
	ErrKindUnknownMarker                // value marker outside every recognized class
	ErrKindTruncated                    // declared element count not satisfiable
	ErrKindContainer                    // unexpected or missing container marker
	ErrKindAnchor                       // anchor does not point at the expected key text
	ErrKindOffsets                      // caller-supplied offsets outside the buffer
	ErrKindState                        // invalid operation for current state (e.g. closed)
)

// Error is a typed error with an optional underlying cause. Offset is the
// absolute byte position the failure was detected at, and Context carries a
// hex/ASCII window around it so the corruption is locatable without the file.
type Error struct {
	Kind    ErrKind
	Msg     string
	Offset  int
	Context string // hex/ASCII dump of surrounding bytes, "" when not applicable
	Err     error  // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if e.Offset > 0 {
		msg = fmt.Sprintf("%s (at 0x%08X)", e.Msg, e.Offset)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrClosed indicates an operation on a container whose mapping was released.
	ErrClosed = &Error{Kind: ErrKindState, Msg: "container is closed"}
	// ErrInvalidOffsets indicates caller-supplied offsets fall outside the buffer.
	ErrInvalidOffsets = &Error{Kind: ErrKindOffsets, Msg: "offsets outside buffer"}
)

// -----------------------------------------------------------------------------
// Tokens
// -----------------------------------------------------------------------------

// Kind enumerates the token classes the stream reader produces.
type Kind uint8

const (
	KindInt32 Kind = iota
	KindInt64
	KindString
	KindControl
)

// String implements the Stringer interface for Kind.
func (k Kind) String() string {
	switch k {
	case KindInt32:
		return "i32"
	case KindInt64:
		return "i64"
	case KindString:
		return "str"
	case KindControl:
		return "ctl"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Token is one (key, kind, value) unit produced by the stream reader.
// Cursor is the absolute offset of the first byte after the value, which is
// what resynchronization rewinds from.
type Token struct {
	Key    string
	Kind   Kind
	Int    int64  // valid for KindInt32/KindInt64
	Str    string // valid for KindString
	Ctl    byte   // the raw marker for KindControl
	Cursor int
}

// Value renders the token payload for diagnostics.
func (t Token) Value() string {
	switch t.Kind {
	case KindString:
		return fmt.Sprintf("%q", t.Str)
	case KindControl:
		return fmt.Sprintf("<m0x%02X>", t.Ctl)
	default:
		return fmt.Sprintf("%d", t.Int)
	}
}

// -----------------------------------------------------------------------------
// Warnings
// -----------------------------------------------------------------------------

// WarnKind classifies non-fatal conditions reported by patch and verify.
type WarnKind int

const (
	// WarnTableMiss: an edit named a field the offset table does not track.
	WarnTableMiss WarnKind = iota
	// WarnIndicatorMismatch: a patch target's indicator byte was not the
	// fixed 32-bit integer marker; the occurrence was left untouched.
	WarnIndicatorMismatch
	// WarnPartialBlock: a trailing coefficient fragment was discarded.
	WarnPartialBlock
	// WarnCopyDivergence: redundant copies disagree but at least one matched.
	WarnCopyDivergence
)

// String implements the Stringer interface for WarnKind.
func (k WarnKind) String() string {
	switch k {
	case WarnTableMiss:
		return "table-miss"
	case WarnIndicatorMismatch:
		return "indicator-mismatch"
	case WarnPartialBlock:
		return "partial-block"
	case WarnCopyDivergence:
		return "copy-divergence"
	default:
		return fmt.Sprintf("warn(%d)", int(k))
	}
}

// Warning records a skipped occurrence or a tolerated inconsistency.
type Warning struct {
	Kind   WarnKind
	Field  string
	Offset int // absolute offset when known, 0 otherwise
	Detail string
}

func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s at 0x%08X: %s", w.Field, w.Offset, w.Detail)
	}
	if w.Field != "" {
		return w.Field + ": " + w.Detail
	}
	return w.Detail
}
