package reader

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsbtools/jsbkit/internal/writer"
	"github.com/jsbtools/jsbkit/pkg/types"
)

func TestParseScalarInt32(t *testing.T) {
	var w writer.Builder
	w.Raw(0xFF, 0xFF)
	anchor := w.Len()
	w.Raw([]byte("start_value")...).Int32(-12345)

	v, err := ParseScalar(w.Bytes(), anchor, "start_value")
	require.NoError(t, err)
	require.Equal(t, int64(-12345), v)
}

func TestParseScalarInt64(t *testing.T) {
	var w writer.Builder
	w.Raw([]byte("start_value")...).Int64(1 << 40)

	v, err := ParseScalar(w.Bytes(), 0, "start_value")
	require.NoError(t, err)
	require.Equal(t, int64(1)<<40, v)
}

func TestParseScalarRejectsOtherMarkers(t *testing.T) {
	var w writer.Builder
	w.Raw([]byte("start_value")...).Uint32(7) // unsigned form is not allowed here

	_, err := ParseScalar(w.Bytes(), 0, "start_value")
	require.Error(t, err)
	var te *types.Error
	require.ErrorAs(t, err, &te)
	require.Equal(t, types.ErrKindUnknownMarker, te.Kind)
}

func TestParseScalarBadAnchor(t *testing.T) {
	_, err := ParseScalar([]byte("something_else\x02\x01\x00\x00\x00"), 0, "start_value")
	require.Error(t, err)
	var te *types.Error
	require.ErrorAs(t, err, &te)
	require.Equal(t, types.ErrKindAnchor, te.Kind)
}

func TestParseScalarTruncated(t *testing.T) {
	b := append([]byte("start_value"), 0x02, 0xAA)
	_, err := ParseScalar(b, 0, "start_value")
	require.Error(t, err)
	var te *types.Error
	require.ErrorAs(t, err, &te)
	require.Equal(t, types.ErrKindTruncated, te.Kind)
}
