package app

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
)

// stateLayers keeps the committed store together with the two caches built
// on top of it. Transactions executed by DeliverTx and CheckTx never see each
// other's writes. On commit the deliver cache is flushed and both caches are
// rebuilt from the new committed state.
type stateLayers struct {
	committed revshare.CommitKVStore
	deliver   revshare.KVCacheWrap
	check     revshare.KVCacheWrap
}

// newStateLayers loads the latest version of the store. It panics if the
// store cannot be loaded, as the application cannot start without it.
func newStateLayers(kv revshare.CommitKVStore) *stateLayers {
	if err := kv.LoadLatestVersion(); err != nil {
		panic(err)
	}
	l := &stateLayers{committed: kv}
	l.reset()
	return l
}

func (l *stateLayers) reset() {
	l.deliver = l.committed.CacheWrap()
	l.check = l.committed.CacheWrap()
}

func (l *stateLayers) latest() (revshare.CommitID, error) {
	return l.committed.LatestVersion()
}

// snapshot returns a throw away view of the last committed state.
func (l *stateLayers) snapshot() revshare.ReadOnlyKVStore {
	return l.committed.CacheWrap()
}

func (l *stateLayers) commit() (revshare.CommitID, error) {
	if err := l.deliver.Write(); err != nil {
		return revshare.CommitID{}, errors.Wrap(err, "flush deliver cache")
	}
	l.check.Discard()

	id, err := l.committed.Commit()
	if err != nil {
		return id, errors.Wrap(err, "commit")
	}
	l.reset()
	return id, nil
}

// Application internal data lives under the _rs: prefix.
const chainIDKey = "_rs:chainID"

func loadChainID(kv revshare.ReadOnlyKVStore) (string, error) {
	raw, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		return "", errors.Wrap(err, "load chain id")
	}
	return string(raw), nil
}

// saveChainID writes the chain id once. Any later attempt is rejected.
func saveChainID(kv revshare.KVStore, chainID string) error {
	if !revshare.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}
	switch stored, err := loadChainID(kv); {
	case err != nil:
		return err
	case stored != "":
		return errors.Wrapf(errors.ErrUnauthorized, "chain id %q already set", stored)
	}
	return errors.Wrap(kv.Set([]byte(chainIDKey), []byte(chainID)), "save chain id")
}
