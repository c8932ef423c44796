package cash

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
	"github.com/iov-one/revshare/store"
	"github.com/iov-one/revshare/weavetest"
	"github.com/iov-one/revshare/weavetest/assert"
)

func TestGenesisInitializer(t *testing.T) {
	addr1 := weavetest.NewCondition().Address()
	addr2 := weavetest.NewCondition().Address()

	genesis := []byte(`{"cash": [
		{"address": "` + addr1.String() + `", "amount": 500},
		{"address": "` + addr2.String() + `", "amount": 3}
	]}`)
	var opts revshare.Options
	assert.Nil(t, json.Unmarshal(genesis, &opts))

	db := store.MemStore()
	assert.Nil(t, Initializer{}.FromGenesis(opts, db))

	ctrl := NewController()
	got, err := ctrl.Balance(db, addr1)
	assert.Nil(t, err)
	assert.Equal(t, uint64(500), got)
	got, err = ctrl.Balance(db, addr2)
	assert.Nil(t, err)
	assert.Equal(t, uint64(3), got)
}

func TestGenesisInitializerMissingAddress(t *testing.T) {
	var opts revshare.Options
	assert.Nil(t, json.Unmarshal([]byte(`{"cash": [{"amount": 5}]}`), &opts))

	err := Initializer{}.FromGenesis(opts, store.MemStore())
	if !errors.ErrEmpty.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
}
