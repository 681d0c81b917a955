package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes a value's encoding required.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrUnknownMarker indicates a value marker outside every recognized class.
	ErrUnknownMarker = errors.New("format: unknown value marker")
	// ErrBadContainer indicates an unexpected byte where a container marker was required.
	ErrBadContainer = errors.New("format: unexpected container marker")
	// ErrAnchorMismatch indicates an anchor offset does not point at the expected key text.
	ErrAnchorMismatch = errors.New("format: anchor does not point at expected key text")
)
