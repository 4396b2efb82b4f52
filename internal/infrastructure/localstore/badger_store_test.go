package localstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBadgerStoreRoundTrip(t *testing.T) {
	store, err := OpenBadger(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Get("missing")
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, store.Set("k", []byte(`{"a":1}`)))

	got, err = store.Get("k")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"a":1}`), got)

	require.NoError(t, store.Set("k", []byte("v2")))
	got, err = store.Get("k")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), got)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore()

	val := []byte("abc")
	require.NoError(t, store.Set("k", val))
	val[0] = 'x'

	got, err := store.Get("k")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), got)
}
