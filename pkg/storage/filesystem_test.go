package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), 0)
	require.NoError(t, err)

	require.NoError(t, s.Write("students", []byte(`[]`)))
	data, err := s.Read("students")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	require.NoError(t, s.Delete("students"))
	_, err = s.Read("students")
	assert.True(t, errors.Is(err, appErrors.ErrKeyNotFound))
	assert.NoError(t, s.Delete("students"))
}

func TestLocalStorageQuota(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), 10)
	require.NoError(t, err)

	require.NoError(t, s.Write("a", []byte("12345")))
	// Replacing a blob only counts its new size.
	require.NoError(t, s.Write("a", []byte("123456")))

	err = s.Write("b", []byte("12345"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrQuotaExceeded))

	used, err := s.Usage()
	require.NoError(t, err)
	assert.Equal(t, int64(6), used)
}

func TestLocalStorageKeepsNamesInsideBaseDir(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, 0)
	require.NoError(t, err)
	assert.Equal(t, dir+"/passwd.json", s.Path("../../etc/passwd"))
}
