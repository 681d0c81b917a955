package types

// OffsetTable maps a field name to the absolute offsets of every occurrence
// of that field's key text in one file layout. A format may store the same
// logical value at more than one location; each offset is one such copy.
//
// Tables are static data supplied by the caller (normally loaded from a YAML
// asset, see jsb/tables) and are never mutated by the codec.
type OffsetTable map[string][]int

// MaxCopies returns the largest occurrence count across all fields. Decoded
// copies are indexed 0..MaxCopies-1; fields with fewer occurrences are simply
// absent from the later copies.
func (t OffsetTable) MaxCopies() int {
	max := 0
	for _, offs := range t {
		if len(offs) > max {
			max = len(offs)
		}
	}
	return max
}

// Validate reports ErrInvalidOffsets when any occurrence offset (plus its key
// text) falls outside a buffer of bufLen bytes. Patch and decode both refuse
// to touch the buffer until the whole table checks out.
func (t OffsetTable) Validate(bufLen int) error {
	for field, offs := range t {
		for _, off := range offs {
			if off < 0 || off+len(field) >= bufLen {
				return &Error{
					Kind:   ErrKindOffsets,
					Msg:    "offset table entry for " + field + " outside buffer",
					Offset: off,
					Err:    ErrInvalidOffsets,
				}
			}
		}
	}
	return nil
}

// Anchors holds the section start offsets for one season object inside a
// ratings container. Each anchor points at the first byte of the section's
// key text; sections are parsed up to the next section's anchor.
type Anchors struct {
	ExpectedScoreData int `yaml:"expected_score_data"`
	RoleData          int `yaml:"role_data"`
	RoleLookupData    int `yaml:"role_lookup_data"`
	StartValue        int `yaml:"start_value"`
	Version           int `yaml:"version"`
}

// Validate reports ErrInvalidOffsets when any anchor lies outside a buffer of
// bufLen bytes, or the anchors are not in parse order.
func (a Anchors) Validate(bufLen int) error {
	offs := []int{a.ExpectedScoreData, a.RoleData, a.RoleLookupData, a.StartValue, a.Version}
	for _, off := range offs {
		if off < 0 || off >= bufLen {
			return &Error{Kind: ErrKindOffsets, Msg: "season anchor outside buffer", Offset: off, Err: ErrInvalidOffsets}
		}
	}
	for i := 1; i < len(offs); i++ {
		if offs[i] <= offs[i-1] {
			return &Error{Kind: ErrKindOffsets, Msg: "season anchors out of order", Offset: offs[i], Err: ErrInvalidOffsets}
		}
	}
	return nil
}
