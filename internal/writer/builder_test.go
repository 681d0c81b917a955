package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsbtools/jsbkit/internal/format"
)

func TestBuilderKeyEncodings(t *testing.T) {
	var w Builder
	w.Key("role").PrefixedKey(0x5A, "index")
	b := w.Bytes()

	key, next, _, ok := format.DecodeKey(b, 0)
	require.True(t, ok)
	require.Equal(t, "role", key)

	key, _, _, ok = format.DecodeKey(b, next)
	require.True(t, ok)
	require.Equal(t, "index", key)
}

func TestBuilderValueRoundTrips(t *testing.T) {
	var w Builder
	w.Int32(-650).Int64(1 << 40).String("Neutral").LongString("Exceed Significant with Win")
	b := w.Bytes()

	v, err := format.DecodeValue(b, 0)
	require.NoError(t, err)
	require.Equal(t, int64(-650), v.Int)

	v, err = format.DecodeValue(b, v.Next)
	require.NoError(t, err)
	require.Equal(t, int64(1<<40), v.Int)

	v, err = format.DecodeValue(b, v.Next)
	require.NoError(t, err)
	require.Equal(t, "Neutral", v.Str)

	v, err = format.DecodeValue(b, v.Next)
	require.NoError(t, err)
	require.Equal(t, "Exceed Significant with Win", v.Str)
	require.Equal(t, len(b), v.Next)
}

func TestBuilderTinyRoundTrips(t *testing.T) {
	for _, v := range []int64{0, 5, 63, -1, -63} {
		var w Builder
		w.TinySigned(v)
		got, _, err := format.DecodeInt(w.Bytes(), 0, format.CoefficientIntRules)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
	for _, v := range []int64{0, 3, 7} {
		var w Builder
		w.Nibble(v)
		got, _, err := format.DecodeInt(w.Bytes(), 0, format.LookupIntRules)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestBuilderPanicsOnBadFixtures(t *testing.T) {
	var w Builder
	require.Panics(t, func() { w.Key("") })
	require.Panics(t, func() { w.TinySigned(64) })
	require.Panics(t, func() { w.Nibble(8) })
	require.Panics(t, func() { w.PrefixedKey(0x00, "x") })
}

func TestFileWriterAtomicWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsb")
	fw := &FileWriter{Path: path}
	want := []byte{0x01, 0x02, 0x03}
	require.NoError(t, fw.WriteContainer(want))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, want, got)

	// Overwrite keeps the path stable.
	require.NoError(t, fw.WriteContainer([]byte{0xFF}))
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF}, got)
}
