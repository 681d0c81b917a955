package jsb

import (
	"fmt"

	"github.com/jsbtools/jsbkit/internal/reader"
	"github.com/jsbtools/jsbkit/pkg/types"
)

// CoefficientsPerBlock is the fixed size of a sealed coefficient block.
// Trailing entries that do not fill a whole block are dropped with a
// warning, never padded.
const CoefficientsPerBlock = 52

// VersionKeys are the trailer fields excluded from cross-copy comparison
// and patching: they legitimately differ between copies.
var VersionKeys = map[string]struct{}{
	"version_major":   {},
	"version_minor":   {},
	"version_release": {},
	"version_year":    {},
}

// DecodeSeason decodes the full record tree anchored by a. Sections are
// bounded by the following section's anchor, so the anchors must be in
// ascending order; Validate rejects anything else before any parsing.
//
// Warnings report recoverable oddities (a dropped partial coefficient
// block); any structural failure aborts the whole decode with no partial
// result.
func (c *Container) DecodeSeason(a types.Anchors) (types.Season, []types.Warning, error) {
	var s types.Season
	if err := c.guard(); err != nil {
		return s, nil, err
	}
	if err := a.Validate(len(c.data)); err != nil {
		return s, nil, err
	}
	var warns []types.Warning

	bands, err := reader.ParseScoreBands(c.data, a.ExpectedScoreData, a.RoleData)
	if err != nil {
		return s, nil, err
	}
	s.ExpectedScoreData = bands

	blocks, dropped, err := reader.ParseCoefficientBlocks(c.data, a.RoleData, a.RoleLookupData, CoefficientsPerBlock)
	if err != nil {
		return s, nil, err
	}
	if dropped > 0 {
		warns = append(warns, types.Warning{
			Kind:   types.WarnPartialBlock,
			Field:  "role_data",
			Detail: fmt.Sprintf("discarded trailing block of %d coefficients", dropped),
		})
	}
	s.RoleData = blocks

	lookup, err := reader.ParseRoleLookup(c.data, a.RoleLookupData, a.StartValue)
	if err != nil {
		return s, nil, err
	}
	s.RoleLookupData = lookup

	start, err := reader.ParseScalar(c.data, a.StartValue, "start_value")
	if err != nil {
		return s, nil, err
	}
	s.StartValue = start

	ver, err := reader.ParseVersion(c.data, a.Version)
	if err != nil {
		return s, nil, err
	}
	s.Version = ver

	return s, warns, nil
}

// DecodeOccurrences reads every copy of every field in table. Fields in
// ignore are skipped; fields whose stored bytes cannot be read are absent
// from that copy's map rather than failing the whole decode.
func (c *Container) DecodeOccurrences(table types.OffsetTable, ignore map[string]struct{}) ([]map[string]int64, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	return reader.DecodeOccurrences(c.data, table, ignore), nil
}
