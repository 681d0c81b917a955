package reader

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsbtools/jsbkit/internal/format"
	"github.com/jsbtools/jsbkit/internal/writer"
	"github.com/jsbtools/jsbkit/pkg/types"
)

func TestParseVersion(t *testing.T) {
	var w writer.Builder
	anchor := w.Len()
	w.Raw([]byte("version")...).Object(format.VersionObjectMarker)
	w.Key("version_major").Raw(0x80 | 24)
	w.Key("version_minor").Raw(0x80 | 3)
	w.Key("version_release").Raw(0x80)
	w.Key("version_year").Int32(2024)

	v, err := ParseVersion(w.Bytes(), anchor)
	require.NoError(t, err)
	require.Equal(t, types.Version{Major: 24, Minor: 3, Release: 0, Year: 2024}, v)
}

func TestParseVersionTinyHighRange(t *testing.T) {
	// Tags at 0xC0 and above still decode through the 6-bit mask.
	var w writer.Builder
	w.Raw([]byte("version")...).Object(format.VersionObjectMarker)
	w.Key("version_major").Raw(0xC0 | 17)
	w.Key("version_minor").Raw(0x80)
	w.Key("version_release").Raw(0x80)
	w.Key("version_year").Raw(0x80 | 23)

	v, err := ParseVersion(w.Bytes(), 0)
	require.NoError(t, err)
	require.Equal(t, int64(17), v.Major)
	require.Equal(t, int64(23), v.Year)
}

func TestParseVersionWrongContainer(t *testing.T) {
	var w writer.Builder
	w.Raw([]byte("version")...).Object(0xC9)
	w.Key("version_major").Raw(0x80)

	_, err := ParseVersion(w.Bytes(), 0)
	require.Error(t, err)
	var te *types.Error
	require.ErrorAs(t, err, &te)
	require.Equal(t, types.ErrKindContainer, te.Kind)
}

func TestParseVersionKeyOutOfOrder(t *testing.T) {
	var w writer.Builder
	w.Raw([]byte("version")...).Object(format.VersionObjectMarker)
	w.Key("version_minor").Raw(0x80) // major expected first
	w.Key("version_major").Raw(0x80)
	w.Key("version_release").Raw(0x80)
	w.Key("version_year").Raw(0x80)

	_, err := ParseVersion(w.Bytes(), 0)
	require.Error(t, err)
	var te *types.Error
	require.ErrorAs(t, err, &te)
	require.Equal(t, types.ErrKindAnchor, te.Kind)
}

func TestParseVersionBadAnchor(t *testing.T) {
	_, err := ParseVersion([]byte("not a version block"), 0)
	require.Error(t, err)
	var te *types.Error
	require.ErrorAs(t, err, &te)
	require.Equal(t, types.ErrKindAnchor, te.Kind)
}
