package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_FileBacked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flows.db")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)

	require.NoError(t, s.Save("persisted", []byte(`{"nodes":[],"edges":[]}`)))
	require.NoError(t, s.Close())

	// Data survives reopening the same file.
	s2, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer s2.Close()

	loaded, err := s2.Load("persisted")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"nodes":[],"edges":[]}`), loaded)
}

func TestSQLiteStore_RevisionAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flows.db")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Save("flow", []byte("v1")))
	require.NoError(t, s.Save("flow", []byte("v2")))
	require.NoError(t, s.Close())

	s2, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer s2.Close()

	require.NoError(t, s2.Save("flow", []byte("v3")))

	infos, err := s2.List()
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, 3, infos[0].Revision)
}

func TestSQLiteStore_CloseIdempotent(t *testing.T) {
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)

	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestSQLiteStore_BadPath(t *testing.T) {
	_, err := NewSQLiteStore(filepath.Join(t.TempDir(), "missing-dir", "flows.db"))
	assert.Error(t, err)
}
