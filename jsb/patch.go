package jsb

import (
	"github.com/jsbtools/jsbkit/internal/edit"
	"github.com/jsbtools/jsbkit/pkg/types"
)

// Patch writes updates into a copy of the container through the offset
// table and returns the patched buffer, always the same length as the
// original. The container's own bytes are never touched.
//
// Keys in ignore are dropped silently. A table offset outside the buffer
// aborts with ErrInvalidOffsets before anything is written; per-field
// problems (unknown key, non-editable indicator) come back as warnings
// with the affected copies left at their original bytes.
func (c *Container) Patch(table types.OffsetTable, updates map[string]uint32, ignore map[string]struct{}) ([]byte, []types.Warning, error) {
	if err := c.guard(); err != nil {
		return nil, nil, err
	}
	out := append([]byte(nil), c.data...)
	warns, err := edit.Apply(out, table, updates, ignore)
	if err != nil {
		return nil, nil, err
	}
	return out, warns, nil
}
