package store

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spicery/fwdlist/pkg/fwdlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	logger, _ := test.NewNullLogger()
	s, err := Open(filepath.Join(t.TempDir(), "lists.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	upToDate, err := s.CheckMigration()
	require.NoError(t, err)
	assert.False(t, upToDate)

	require.NoError(t, s.Migrate())
	return s
}

func TestMigrationIsRecorded(t *testing.T) {
	s := openTestStore(t)
	upToDate, err := s.CheckMigration()
	require.NoError(t, err)
	assert.True(t, upToDate)

	// Migrating twice is harmless.
	require.NoError(t, s.Migrate())
}

func TestSaveAndLoadPreservesOrder(t *testing.T) {
	s := openTestStore(t)
	original := fwdlist.Of("c", "a", "b", "a")

	id, err := s.Save("letters", original)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	loaded, err := s.Load("letters")
	require.NoError(t, err)
	assert.Equal(t, original.Values(), loaded.Values())
	assert.Equal(t, 4, loaded.Size())

	// The loaded list is independent of the saved one.
	loaded.PushFront("z")
	assert.Equal(t, 4, original.Size())
}

func TestSaveEmptyList(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Save("empty", fwdlist.New[string]())
	require.NoError(t, err)

	loaded, err := s.Load("empty")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestSaveReplacesSnapshot(t *testing.T) {
	s := openTestStore(t)
	first, err := s.Save("l", fwdlist.Of("1", "2", "3"))
	require.NoError(t, err)
	second, err := s.Save("l", fwdlist.Of("9"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	current, err := s.SnapshotID("l")
	require.NoError(t, err)
	assert.Equal(t, second, current)

	loaded, err := s.Load("l")
	require.NoError(t, err)
	assert.Equal(t, []string{"9"}, loaded.Values())
}

func TestNamesAndDelete(t *testing.T) {
	s := openTestStore(t)
	for _, name := range []string{"b", "a", "c"} {
		_, err := s.Save(name, fwdlist.Of(name))
		require.NoError(t, err)
	}

	names, err := s.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names)

	require.NoError(t, s.Delete("b"))
	names, err = s.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, names)

	_, err = s.Load("b")
	assert.True(t, errors.Is(err, ErrListNotFound))

	err = s.Delete("b")
	assert.True(t, errors.Is(err, ErrListNotFound))
}

func TestMissingList(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Load("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrListNotFound))
	assert.Contains(t, err.Error(), `"nope"`)

	_, err = s.SnapshotID("nope")
	assert.True(t, errors.Is(err, ErrListNotFound))
}

func TestSaveRejectsEmptyName(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Save("", fwdlist.Of("x"))
	assert.Error(t, err)
}
