package store

import (
	"bytes"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStoreConstructor returns a fresh store and a function that releases
// all its resources.
type TestStoreConstructor func() (base CacheableKVStore, cleanup func())

// RunConformanceTests checks that a CacheableKVStore implementation behaves
// like any other store: reads see their own writes, cache wraps are isolated
// until written and iteration merges cached and stored entries in key order.
func RunConformanceTests(t *testing.T, makeBase TestStoreConstructor) {
	t.Run("read own writes", func(t *testing.T) { testReadWrite(t, makeBase) })
	t.Run("layered caches", func(t *testing.T) { testLayers(t, makeBase) })
	t.Run("iteration", func(t *testing.T) { testIteration(t, makeBase) })
}

// AssertGetHas checks both the Get and Has methods of the store for given
// key. A nil val means the key must be absent.
func AssertGetHas(t testing.TB, kv ReadOnlyKVStore, key, val []byte) {
	t.Helper()
	got, err := kv.Get(key)
	require.NoError(t, err)
	assert.Equal(t, val, got, "value of %q", key)
	exists, err := kv.Has(key)
	require.NoError(t, err)
	assert.Equal(t, val != nil, exists, "presence of %q", key)
}

func testReadWrite(t *testing.T, makeBase TestStoreConstructor) {
	base, cleanup := makeBase()
	defer cleanup()

	creator, platform := []byte("creator"), []byte("platform")
	AssertGetHas(t, base, creator, nil)
	require.NoError(t, base.Set(creator, []byte("700")))
	AssertGetHas(t, base, creator, []byte("700"))

	// discarded changes are lost
	discarded := base.CacheWrap()
	require.NoError(t, discarded.Set(platform, []byte("300")))
	require.NoError(t, discarded.Delete(creator))
	AssertGetHas(t, discarded, platform, []byte("300"))
	AssertGetHas(t, discarded, creator, nil)
	discarded.Discard()
	AssertGetHas(t, base, platform, nil)
	AssertGetHas(t, base, creator, []byte("700"))

	// written changes reach the base
	written := base.CacheWrap()
	require.NoError(t, written.Set(platform, []byte("300")))
	require.NoError(t, written.Delete(creator))
	AssertGetHas(t, base, platform, nil)
	require.NoError(t, written.Write())
	AssertGetHas(t, base, platform, []byte("300"))
	AssertGetHas(t, base, creator, nil)
}

type op struct {
	key   string
	value string // empty value deletes the key
}

func apply(t testing.TB, db SetDeleter, ops []op) {
	t.Helper()
	for _, o := range ops {
		if o.value == "" {
			require.NoError(t, db.Delete([]byte(o.key)))
		} else {
			require.NoError(t, db.Set([]byte(o.key), []byte(o.value)))
		}
	}
}

func testLayers(t *testing.T, makeBase TestStoreConstructor) {
	cases := map[string]struct {
		parent     []op
		child      []op
		wantParent map[string]string
		wantChild  map[string]string
	}{
		"overwrite, delete and add": {
			parent:     []op{{"a", "1"}, {"b", "2"}},
			child:      []op{{"a", "10"}, {"b", ""}, {"c", "3"}},
			wantParent: map[string]string{"a": "1", "b": "2", "c": ""},
			wantChild:  map[string]string{"a": "10", "b": "", "c": "3"},
		},
		"delete then set again": {
			parent:     []op{{"a", "1"}},
			child:      []op{{"a", ""}, {"a", "5"}},
			wantParent: map[string]string{"a": "1"},
			wantChild:  map[string]string{"a": "5"},
		},
		"delete of a missing key": {
			child:      []op{{"z", ""}},
			wantParent: map[string]string{"z": ""},
			wantChild:  map[string]string{"z": ""},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			parent, cleanup := makeBase()
			defer cleanup()

			apply(t, parent, tc.parent)
			child := parent.CacheWrap()
			apply(t, child, tc.child)

			assertState(t, parent, tc.wantParent)
			assertState(t, child, tc.wantChild)

			require.NoError(t, child.Write())
			assertState(t, parent, tc.wantChild)
		})
	}
}

func assertState(t testing.TB, db ReadOnlyKVStore, want map[string]string) {
	t.Helper()
	for k, v := range want {
		var val []byte
		if v != "" {
			val = []byte(v)
		}
		AssertGetHas(t, db, []byte(k), val)
	}
}

func testIteration(t *testing.T, makeBase TestStoreConstructor) {
	// keys are written in a shuffled order, fmt padding keeps their byte
	// order equal to their numeric order
	var all []op
	for _, n := range []int{7, 3, 11, 0, 5, 9, 1, 14, 12, 2, 8, 13, 4, 10, 6} {
		all = append(all, op{key: fmt.Sprintf("wallet:%02d", n), value: fmt.Sprintf("%d", n*100)})
	}
	keys := func(from, to int) []string {
		var res []string
		for i := from; i < to; i++ {
			res = append(res, fmt.Sprintf("wallet:%02d", i))
		}
		return res
	}
	key := func(n int) []byte { return []byte(fmt.Sprintf("wallet:%02d", n)) }

	cases := map[string]struct {
		parent  []op
		child   []op
		start   []byte
		end     []byte
		reverse bool
		want    []string
	}{
		"everything stored in parent": {
			parent: all,
			want:   keys(0, 15),
		},
		"everything stored in child, reversed": {
			child:   all,
			reverse: true,
			want:    reverseStrings(keys(0, 15)),
		},
		"split between layers, bounded": {
			parent: all[:7],
			child:  all[7:],
			start:  key(3),
			end:    key(9),
			want:   keys(3, 9),
		},
		"child deletes parent entries": {
			parent: all,
			child:  []op{{"wallet:04", ""}, {"wallet:05", ""}, {"wallet:06", ""}},
			end:    key(9),
			want:   append(keys(0, 4), keys(7, 9)...),
		},
		"child overwrites and deletes, reversed with start": {
			parent:  all,
			child:   []op{{"wallet:10", "changed"}, {"wallet:12", ""}},
			start:   key(9),
			reverse: true,
			want:    reverseStrings(append(keys(9, 12), keys(13, 15)...)),
		},
		"empty range": {
			parent: all,
			start:  key(5),
			end:    key(5),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			base, cleanup := makeBase()
			defer cleanup()
			apply(t, base, tc.parent)
			child := base.CacheWrap()
			apply(t, child, tc.child)

			var (
				it  Iterator
				err error
			)
			if tc.reverse {
				it, err = child.ReverseIterator(tc.start, tc.end)
			} else {
				it, err = child.Iterator(tc.start, tc.end)
			}
			require.NoError(t, err)
			defer it.Close()

			var got []string
			for ; it.Valid(); require.NoError(t, it.Next()) {
				got = append(got, string(it.Key()))
				val, err := child.Get(it.Key())
				require.NoError(t, err)
				assert.Equal(t, val, it.Value())
			}
			assert.Equal(t, tc.want, got)
			assert.True(t, sort.SliceIsSorted(got, func(i, j int) bool {
				cmp := bytes.Compare([]byte(got[i]), []byte(got[j]))
				if tc.reverse {
					return cmp > 0
				}
				return cmp < 0
			}))
		})
	}
}

func reverseStrings(s []string) []string {
	res := make([]string, len(s))
	for i, v := range s {
		res[len(s)-1-i] = v
	}
	return res
}
