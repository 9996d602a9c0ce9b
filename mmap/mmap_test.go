package mmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createFile(t *testing.T, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.mmap")
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o600))
	return path
}

func TestOpenWrite(t *testing.T) {
	t.Run("write flush reopen", func(t *testing.T) {
		path := createFile(t, 64)

		m, err := OpenWrite(path)
		require.NoError(t, err)
		assert.Equal(t, 64, m.Size())

		copy(m.Bytes(), []byte("hello mmap"))
		require.NoError(t, m.Flush())
		require.NoError(t, m.Close())

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("hello mmap"), raw[:10])
	})

	t.Run("empty file", func(t *testing.T) {
		path := createFile(t, 0)

		m, err := OpenWrite(path)
		require.NoError(t, err)
		assert.Equal(t, 0, m.Size())
		assert.Nil(t, m.Bytes())
		assert.NoError(t, m.Flush())
		assert.NoError(t, m.Close())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := OpenWrite(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})
}

func TestMappingClose(t *testing.T) {
	path := createFile(t, 16)
	m, err := OpenWrite(path)
	require.NoError(t, err)

	require.NoError(t, m.Close())
	assert.NoError(t, m.Close(), "close must be idempotent")

	assert.Nil(t, m.Bytes())
	assert.NoError(t, m.Flush(), "flush after close is a no-op")
	assert.ErrorIs(t, m.Lock(), ErrClosed)
	assert.ErrorIs(t, m.Advise(AccessNormal), ErrClosed)

	_, err = m.Region(0, 8)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestMappingReadAt(t *testing.T) {
	path := createFile(t, 8)
	m, err := OpenWrite(path)
	require.NoError(t, err)
	defer m.Close()

	copy(m.Bytes(), []byte{1, 2, 3, 4, 5, 6, 7, 8})

	buf := make([]byte, 4)
	n, err := m.ReadAt(buf, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{3, 4, 5, 6}, buf)

	_, err = m.ReadAt(buf, -1)
	assert.ErrorIs(t, err, ErrInvalidOffset)

	n, err = m.ReadAt(buf, 6)
	assert.Equal(t, 2, n)
	assert.Error(t, err)
}

func TestRegion(t *testing.T) {
	path := createFile(t, 32)
	m, err := OpenWrite(path)
	require.NoError(t, err)
	defer m.Close()

	t.Run("bytes window", func(t *testing.T) {
		r, err := m.Region(8, 8)
		require.NoError(t, err)
		assert.Equal(t, 8, r.Size())

		copy(r.Bytes(), []byte("abcd"))
		assert.Equal(t, []byte("abcd"), m.Bytes()[8:12])
	})

	t.Run("out of bounds", func(t *testing.T) {
		_, err := m.Region(24, 16)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		_, err = m.Region(-1, 4)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("advise", func(t *testing.T) {
		r, err := m.Region(0, 16)
		require.NoError(t, err)
		assert.NoError(t, r.Advise(AccessSequential))
	})
}

func TestMappingAdvise(t *testing.T) {
	path := createFile(t, 16)
	m, err := OpenWrite(path)
	require.NoError(t, err)
	defer m.Close()

	for _, pattern := range []AccessPattern{AccessNormal, AccessRandom, AccessSequential} {
		assert.NoError(t, m.Advise(pattern), pattern.String())
	}
}

func TestMappingLock(t *testing.T) {
	path := createFile(t, 16)
	m, err := OpenWrite(path)
	require.NoError(t, err)
	defer m.Close()

	// Mlock may be refused by RLIMIT_MEMLOCK; only hard-fail on success
	// not sticking.
	if err := m.Lock(); err != nil {
		t.Skipf("mlock not permitted: %v", err)
	}
}

func TestDefaultAccessPattern(t *testing.T) {
	assert.Equal(t, AccessRandom, DefaultAccessPattern(), "initial default is random")

	SetDefaultAccessPattern(AccessSequential)
	defer SetDefaultAccessPattern(AccessRandom)
	assert.Equal(t, AccessSequential, DefaultAccessPattern())

	path := createFile(t, 16)
	m, err := OpenWrite(path)
	require.NoError(t, err)
	assert.NoError(t, m.Close())
}

func TestAccessPatternText(t *testing.T) {
	for pattern, name := range map[AccessPattern]string{
		AccessNormal:       "normal",
		AccessRandom:       "random",
		AccessSequential:   "sequential",
		AccessPopulateRead: "populate_read",
	} {
		var got AccessPattern
		require.NoError(t, got.UnmarshalText([]byte(name)))
		assert.Equal(t, pattern, got)
		assert.Equal(t, name, pattern.String())
	}

	var p AccessPattern
	assert.Error(t, p.UnmarshalText([]byte("bogus")))
}
