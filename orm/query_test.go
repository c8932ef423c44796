package orm

import (
	"testing"

	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/store"
	"github.com/iov-one/revshare/weavetest/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixRange(t *testing.T) {
	cases := map[string]struct {
		prefix  []byte
		wantEnd []byte
	}{
		"nil prefix":         {},
		"last byte bumped":   {prefix: []byte("ab"), wantEnd: []byte("ac")},
		"carry":              {prefix: []byte{7, 0xff}, wantEnd: []byte{8, 0}},
		"double carry":       {prefix: []byte{7, 0xff, 0xff}, wantEnd: []byte{8, 0, 0}},
		"no upper bound":     {prefix: []byte{0xff, 0xff}},
		"single byte prefix": {prefix: []byte{0}, wantEnd: []byte{1}},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			start, end := prefixRange(tc.prefix)
			assert.Equal(t, tc.prefix, start)
			assert.Equal(t, tc.wantEnd, end)
		})
	}
}

func TestQueryPrefix(t *testing.T) {
	db := store.MemStore()
	for i, k := range []string{"wallet:b", "wallet:a", "walle", "cnts:a", "wallet:a:x"} {
		require.NoError(t, db.Set([]byte(k), []byte{byte(i)}))
	}

	cases := map[string]struct {
		prefix   string
		wantKeys []string
	}{
		"ordered by key":  {prefix: "wallet:", wantKeys: []string{"wallet:a", "wallet:a:x", "wallet:b"}},
		"longer prefix":   {prefix: "wallet:a", wantKeys: []string{"wallet:a", "wallet:a:x"}},
		"exact key":       {prefix: "cnts:a", wantKeys: []string{"cnts:a"}},
		"nothing matches": {prefix: "zz"},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			res, err := queryPrefix(db, []byte(tc.prefix))
			require.NoError(t, err)
			var keys []string
			for _, m := range res {
				keys = append(keys, string(m.Key))
			}
			assert.Equal(t, tc.wantKeys, keys)
		})
	}
}

func TestRawQuery(t *testing.T) {
	db := store.MemStore()
	require.NoError(t, db.Set([]byte("cnts:a"), []byte{1}))
	require.NoError(t, db.Set([]byte("cnts:b"), []byte{2}))
	require.NoError(t, db.Set([]byte("wallet:a"), []byte{3}))

	qr := revshare.NewQueryRouter()
	RegisterQuery(qr)
	h := qr.Handler("/")
	require.NotNil(t, h)

	res, err := h.Query(db, revshare.KeyQueryMod, []byte("cnts:b"))
	require.NoError(t, err)
	assert.Equal(t, []revshare.Model{revshare.Pair([]byte("cnts:b"), []byte{2})}, res)

	res, err = h.Query(db, revshare.KeyQueryMod, []byte("cnts:z"))
	require.NoError(t, err)
	require.Empty(t, res)

	res, err = h.Query(db, revshare.PrefixQueryMod, []byte("cnts:"))
	require.NoError(t, err)
	require.Len(t, res, 2)

	_, err = h.Query(db, "range", nil)
	require.True(t, ErrInvalidQuery.Is(err), "%+v", err)
}
