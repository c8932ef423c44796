package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordingStore(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("keep"), []byte("x")))
	require.NoError(t, base.Set([]byte("drop"), []byte("y")))

	db := NewRecordingStore(base)
	require.NoError(t, db.Set([]byte("new"), []byte("z")))
	require.NoError(t, db.Delete([]byte("drop")))

	r, ok := db.(Recorder)
	require.True(t, ok)
	assert.Equal(t, map[string][]byte{
		"new":  []byte("z"),
		"drop": nil,
	}, r.KVPairs())

	// reads and writes go to the wrapped store
	val, err := base.Get([]byte("new"))
	require.NoError(t, err)
	assert.Equal(t, []byte("z"), val)
	has, err := db.Has([]byte("drop"))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestRecordingStoreCacheWrap(t *testing.T) {
	db := NewRecordingStore(MemStore())
	cstore, ok := db.(CacheableKVStore)
	require.True(t, ok)

	discarded := cstore.CacheWrap()
	require.NoError(t, discarded.Set([]byte("lost"), []byte("1")))
	discarded.Discard()

	cache := cstore.CacheWrap()
	require.NoError(t, cache.Set([]byte("kept"), []byte("2")))
	require.NoError(t, cache.Write())

	assert.Equal(t, map[string][]byte{
		"kept": []byte("2"),
	}, db.(Recorder).KVPairs())
}
