package jsb

import (
	"fmt"

	"github.com/jsbtools/jsbkit/internal/format"
	"github.com/jsbtools/jsbkit/internal/mmfile"
	"github.com/jsbtools/jsbkit/pkg/types"
)

// Container is an opened JSB file, backed by mmap on unix and a byte
// slice elsewhere. All decode methods read through the same buffer; the
// container itself is never mutated, Patch works on a copy.
type Container struct {
	data    []byte
	cleanup func() error
	closed  bool
}

// Open maps the file at path read-only.
func Open(path string) (*Container, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("jsb: open %s: %w", path, err)
	}
	return &Container{data: data, cleanup: cleanup}, nil
}

// Load wraps an in-memory buffer. The container aliases b; the caller
// must not mutate it while decoding.
func Load(b []byte) *Container {
	return &Container{data: b}
}

// Close releases the mapping. Further decode calls return ErrClosed.
// Closing twice is a no-op.
func (c *Container) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.data = nil
	if c.cleanup != nil {
		return c.cleanup()
	}
	return nil
}

// Bytes returns the underlying buffer, or nil after Close.
func (c *Container) Bytes() []byte { return c.data }

// Size returns the buffer length in bytes.
func (c *Container) Size() int { return len(c.data) }

// Dump renders a hex/ASCII window centered near off, for diagnostics.
func (c *Container) Dump(off, window int) string {
	if c.closed {
		return ""
	}
	return format.Dump(c.data, off, window)
}

func (c *Container) guard() error {
	if c.closed || c.data == nil {
		return &types.Error{Kind: types.ErrKindState, Msg: "container is closed", Err: types.ErrClosed}
	}
	return nil
}
