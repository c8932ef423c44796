package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeBase() (CacheableKVStore, func()) {
	return MemStore(), func() {}
}

func TestMemStoreConformance(t *testing.T) {
	RunConformanceTests(t, makeBase)
}

func TestNestedCacheDiscard(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte("1")))

	outer := base.CacheWrap()
	require.NoError(t, outer.Set([]byte("b"), []byte("2")))

	inner := outer.CacheWrap()
	require.NoError(t, inner.Set([]byte("c"), []byte("3")))
	require.NoError(t, inner.Delete([]byte("a")))
	inner.Discard()

	// discarded inner changes never reach the outer layer
	require.NoError(t, inner.Write())
	has, err := outer.Has([]byte("c"))
	require.NoError(t, err)
	assert.False(t, has)
	has, err = outer.Has([]byte("a"))
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, outer.Write())
	val, err := base.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), val)
}

func TestSliceIterator(t *testing.T) {
	it := NewSliceIterator([]Model{
		Pair([]byte("a"), []byte("1")),
		Pair([]byte("b"), []byte("2")),
	})
	defer it.Close()

	require.True(t, it.Valid())
	assert.Equal(t, []byte("a"), it.Key())
	assert.Equal(t, []byte("1"), it.Value())
	require.NoError(t, it.Next())
	assert.Equal(t, []byte("b"), it.Key())
	require.NoError(t, it.Next())
	assert.False(t, it.Valid())
	assert.Panics(t, func() { it.Key() })
	assert.Panics(t, func() { it.Next() })
}

func TestNonAtomicBatch(t *testing.T) {
	base := MemStore()
	b := NewNonAtomicBatch(base)
	require.NoError(t, b.Set([]byte("k"), []byte("v")))
	require.NoError(t, b.Delete([]byte("gone")))

	has, err := base.Has([]byte("k"))
	require.NoError(t, err)
	assert.False(t, has, "batch must not write before Write is called")

	require.NoError(t, b.Write())
	val, err := base.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)

	// ops are cleared after a write
	require.NoError(t, base.Delete([]byte("k")))
	require.NoError(t, b.Write())
	has, err = base.Has([]byte("k"))
	require.NoError(t, err)
	assert.False(t, has)
}
