package jsb

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsbtools/jsbkit/internal/writer"
	"github.com/jsbtools/jsbkit/pkg/types"
)

// seasonFixture composes a complete season section-by-section and returns
// the buffer with its anchors. extraCoeffs appends a trailing partial
// block to role_data.
func seasonFixture(extraCoeffs int) ([]byte, types.Anchors) {
	var w writer.Builder
	var a types.Anchors
	w.Raw(0, 0, 0, 0) // unrelated leading bytes

	a.ExpectedScoreData = w.Len()
	w.Raw([]byte("expected_score_data")...).Object(0xC9)
	for i := 0; i < 11; i++ {
		w.Key("name").String(fmt.Sprintf("Band %02d", i))
		w.Key("negative_multiplier").Int32(int32(-100 * i))
		w.Key("positive_multiplier").Int32(int32(100 * i))
	}

	a.RoleData = w.Len()
	w.Raw([]byte("role_data")...).Object(0xC9)
	writeCoeff := func(name string, v int64) {
		w.Raw(':').Key("name").String(name)
		w.Key("value").TinySigned(v)
	}
	for blk := 0; blk < 2; blk++ {
		for i := 0; i < CoefficientsPerBlock; i++ {
			writeCoeff(fmt.Sprintf("coeff_%d_%02d", blk, i), int64(i-26))
		}
	}
	for i := 0; i < extraCoeffs; i++ {
		writeCoeff(fmt.Sprintf("partial_%02d", i), 1)
	}

	a.RoleLookupData = w.Len()
	w.Raw([]byte("role_lookup_data")...).Array(5)
	for i := 0; i < 5; i++ {
		w.Key("index").Nibble(int64(i))
		w.Key("role").Uint32(1 << uint(i))
	}

	a.StartValue = w.Len()
	w.Raw([]byte("start_value")...).Int32(6700)

	a.Version = w.Len()
	w.Raw([]byte("version")...).Object(0x5A)
	w.Key("version_major").Raw(0x80)
	w.Key("version_minor").Raw(0x80)
	w.Key("version_release").Raw(0x80 | 6)
	w.Key("version_year").Raw(0x80 | 24)

	return w.Bytes(), a
}

func TestDecodeSeason(t *testing.T) {
	data, a := seasonFixture(0)
	c := Load(data)

	s, warns, err := c.DecodeSeason(a)
	require.NoError(t, err)
	require.Empty(t, warns)

	require.Len(t, s.ExpectedScoreData, 11)
	require.Equal(t, "Band 03", s.ExpectedScoreData[3].Name)
	require.Equal(t, int64(-300), s.ExpectedScoreData[3].NegativeMultiplier)

	require.Len(t, s.RoleData, 2)
	require.Len(t, s.RoleData[0].Coefficients, CoefficientsPerBlock)
	require.Equal(t, "coeff_1_51", s.RoleData[1].Coefficients[51].Name)
	require.Equal(t, int64(25), s.RoleData[1].Coefficients[51].Value)

	require.Len(t, s.RoleLookupData, 5)
	require.Equal(t, types.RoleLookup{Index: 2, Role: 4}, s.RoleLookupData[2])

	require.Equal(t, int64(6700), s.StartValue)
	require.Equal(t, types.Version{Major: 0, Minor: 0, Release: 6, Year: 24}, s.Version)
}

func TestDecodeSeasonDropsPartialBlock(t *testing.T) {
	data, a := seasonFixture(3)
	c := Load(data)

	s, warns, err := c.DecodeSeason(a)
	require.NoError(t, err)
	require.Len(t, s.RoleData, 2)
	require.Len(t, warns, 1)
	require.Equal(t, types.WarnPartialBlock, warns[0].Kind)
	require.Equal(t, "role_data", warns[0].Field)
}

func TestDecodeSeasonRejectsBadAnchors(t *testing.T) {
	data, a := seasonFixture(0)
	c := Load(data)

	bad := a
	bad.Version = len(data) + 10
	_, _, err := c.DecodeSeason(bad)
	require.ErrorIs(t, err, types.ErrInvalidOffsets)

	swapped := a
	swapped.RoleData, swapped.RoleLookupData = swapped.RoleLookupData, swapped.RoleData
	_, _, err = c.DecodeSeason(swapped)
	require.ErrorIs(t, err, types.ErrInvalidOffsets)
}

func TestOpenFile(t *testing.T) {
	data, a := seasonFixture(0)
	path := filepath.Join(t.TempDir(), "season.jsb")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	c, err := Open(path)
	require.NoError(t, err)
	defer c.Close()
	require.Equal(t, len(data), c.Size())

	s, _, err := c.DecodeSeason(a)
	require.NoError(t, err)
	require.Equal(t, int64(6700), s.StartValue)

	_, err = Open(filepath.Join(t.TempDir(), "missing.jsb"))
	require.Error(t, err)
}

func TestContainerClosed(t *testing.T) {
	data, a := seasonFixture(0)
	c := Load(data)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close()) // double close is a no-op

	_, _, err := c.DecodeSeason(a)
	require.ErrorIs(t, err, types.ErrClosed)
	_, err = c.DecodeOccurrences(types.OffsetTable{}, nil)
	require.ErrorIs(t, err, types.ErrClosed)
	_, _, err = c.Patch(types.OffsetTable{}, nil, nil)
	require.ErrorIs(t, err, types.ErrClosed)
	require.Nil(t, c.Bytes())
}

func TestPatchRoundTrip(t *testing.T) {
	var w writer.Builder
	table := types.OffsetTable{}
	for i := 0; i < 2; i++ {
		table["walk_speed"] = append(table["walk_speed"], w.Len())
		w.Raw([]byte("walk_speed")...).Int32(1200)
		table["version_year"] = append(table["version_year"], w.Len())
		w.Raw([]byte("version_year")...).Int32(24)
	}
	c := Load(w.Bytes())

	patched, warns, err := c.Patch(table,
		map[string]uint32{"walk_speed": 1500, "version_year": 99}, VersionKeys)
	require.NoError(t, err)
	require.Empty(t, warns)
	require.Len(t, patched, c.Size())

	copies, err := Load(patched).DecodeOccurrences(table, nil)
	require.NoError(t, err)
	require.Len(t, copies, 2)
	for _, cp := range copies {
		require.Equal(t, int64(1500), cp["walk_speed"])
		require.Equal(t, int64(24), cp["version_year"]) // ignored key untouched
	}

	// The source container is untouched.
	orig, err := c.DecodeOccurrences(table, nil)
	require.NoError(t, err)
	require.Equal(t, int64(1200), orig[0]["walk_speed"])
}

func TestDecodeWeights(t *testing.T) {
	var w writer.Builder
	pack := func(year int32) {
		w.Raw([]byte("ME_PACK_VERSION_MAJOR")...).Int32(1)
		w.Raw([]byte("ME_PACK_VERSION_MINOR")...).Int32(0)
		w.Raw([]byte("ME_PACK_VERSION_RELEASE")...).Int32(3)
		w.Raw([]byte("ME_PACK_VERSION_YEAR")...).Int32(year)
		w.Raw([]byte("TEAM_PICKING_STYLE::TPS_FIRST_TEAM_PICKING")...)
		w.Raw(0x0A, 0, 0, 0, 0, 0)
		w.Raw([]byte("simatchshared::TSF_CA")...).Int32(50)
		w.Raw([]byte("simatchshared::TSF_MORALE")...).Int32(20)
	}
	pack(23)
	pack(24)
	c := Load(w.Bytes())

	packs, err := c.DecodeWeights(nil)
	require.NoError(t, err)
	require.Len(t, packs, 2)
	require.Equal(t, int64(23), packs[0].Version.Year)
	require.Equal(t, int64(24), packs[1].Version.Year)
	require.Equal(t, types.Version{Major: 1, Minor: 0, Release: 3, Year: 24}, packs[1].Version)

	g, ok := packs[1].Groups["TEAM_PICKING_STYLE::TPS_FIRST_TEAM_PICKING"]
	require.True(t, ok)
	require.Equal(t, types.Group{
		"simatchshared::TSF_CA":     50,
		"simatchshared::TSF_MORALE": 20,
	}, g)
}

func TestDecodeWeightsStraysLandInMisc(t *testing.T) {
	var w writer.Builder
	w.Raw([]byte("simatchshared::TSF_FORM")...).Int32(7)
	c := Load(w.Bytes())

	packs, err := c.DecodeWeights(nil)
	require.NoError(t, err)
	require.Len(t, packs, 1)
	require.Equal(t, types.Group{"simatchshared::TSF_FORM": 7}, packs[0].Groups["MISC"])
}
