package cash

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file.
// Address is hex encoded.
type GenesisAccount struct {
	Address revshare.Address `json:"address"`
	Amount  uint64           `json:"amount"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ revshare.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts revshare.Options, kv revshare.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	control := NewController()
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		if err := control.CoinMint(kv, acct.Address, acct.Amount); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
