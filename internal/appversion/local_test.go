package appversion

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalReader_MissingMarker(t *testing.T) {
	r := NewLocalReader(t.TempDir(), "")

	v, err := r.Get()
	require.NoError(t, err)
	assert.True(t, v.IsUnknown())

	for _, remote := range []string{"0.0.0", "0.0.1", "1.0.0"} {
		assert.Equal(t, -1, Compare(v, MustParse(remote)))
	}
}

func TestLocalReader_ReadsMarker(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultMarker), []byte("1.0.0\r\n"), 0o644))

	v, err := NewLocalReader(dir, "").Get()
	require.NoError(t, err)
	assert.True(t, v.Equal(MustParse("1.0")))
}

func TestLocalReader_CustomMarker(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "eo.ver"), []byte("2.3"), 0o644))

	r := NewLocalReader(dir, "eo.ver")
	assert.Equal(t, filepath.Join(dir, "eo.ver"), r.Path())

	v, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, "2.3.0", v.String())
}

func TestLocalReader_MalformedMarker(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultMarker), []byte("garbage"), 0o644))

	v, err := NewLocalReader(dir, "").Get()
	assert.ErrorIs(t, err, ErrInvalidVersionFormat)
	assert.True(t, v.IsUnknown())
}

func TestLocalReader_Store(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "install")
	r := NewLocalReader(dir, "")

	require.NoError(t, r.Store(context.Background(), MustParse("1.1")))

	v, err := r.Get()
	require.NoError(t, err)
	assert.True(t, v.Equal(MustParse("1.1.0")))

	assert.Error(t, r.Store(context.Background(), Unknown()))
}
