package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "cache.json"))
	require.NoError(t, err)
	return store
}

func TestSaveLoad(t *testing.T) {
	store := newStore(t)

	type settings struct {
		Theme string `json:"theme"`
	}

	require.NoError(t, store.Save(KeySettings, settings{Theme: "dark"}))

	var got settings
	ok, err := store.Load(KeySettings, &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "dark", got.Theme)

	t.Run("absent key", func(t *testing.T) {
		var out settings
		ok, err := store.Load(Prefix+"nothing", &out)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("survives reopening", func(t *testing.T) {
		reopened, err := New(store.path)
		require.NoError(t, err)

		var out settings
		ok, err := reopened.Load(KeySettings, &out)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "dark", out.Theme)
	})
}

func TestRemove(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Save(KeyUser, "ada"))
	require.NoError(t, store.Remove(KeyUser))

	var out string
	ok, err := store.Load(KeyUser, &out)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Remove(KeyUser), "removing an absent key is a no-op")
}

func TestClearOnlyTouchesPrefix(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Save(KeyUser, "ada"))
	require.NoError(t, store.Save(KeyCourses, []string{"js-course-2024"}))
	require.NoError(t, store.Save("other:thing", 42))

	require.NoError(t, store.Clear())

	var s string
	ok, err := store.Load(KeyUser, &s)
	require.NoError(t, err)
	assert.False(t, ok)

	var n int
	ok, err = store.Load("other:thing", &n)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 42, n)
}
