package revenue

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
	"github.com/iov-one/revshare/gconf"
)

// Initializer stores the revenue configuration found in the genesis under
// "conf" -> "revenue". A genesis without it is accepted, but the contract
// cannot be created until the configuration is provided.
type Initializer struct{}

var _ revshare.Initializer = Initializer{}

func (Initializer) FromGenesis(opts revshare.Options, db revshare.KVStore) error {
	err := gconf.InitConfig(db, opts, packageName, &Configuration{})
	if err != nil && !errors.ErrNotFound.Is(err) {
		return err
	}
	return nil
}
