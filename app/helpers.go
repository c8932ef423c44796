package app

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
	"github.com/iov-one/revshare/store"
	abci "github.com/tendermint/tendermint/abci/types"
)

// ABCIStore reads the committed state of an application through its Query
// method, so buckets can be used on the client side of the abci boundary.
type ABCIStore struct {
	app abci.Application
}

var _ revshare.ReadOnlyKVStore = (*ABCIStore)(nil)

func NewABCIStore(app abci.Application) *ABCIStore {
	return &ABCIStore{app: app}
}

func (a *ABCIStore) query(path string, key []byte) ([]revshare.Model, error) {
	res := a.app.Query(abci.RequestQuery{Path: path, Data: key})
	if res.Code != 0 {
		return nil, errors.Wrapf(errors.ErrDatabase, "query code %d: %s", res.Code, res.Log)
	}
	return DecodeModels(res.Key, res.Value)
}

func (a *ABCIStore) Get(key []byte) ([]byte, error) {
	models, err := a.query("/", key)
	switch {
	case err != nil:
		return nil, err
	case len(models) == 0:
		return nil, nil
	case len(models) > 1:
		return nil, errors.Wrapf(errors.ErrState, "%d results for a single key", len(models))
	case models[0].Value == nil:
		// stored values are never nil
		return []byte{}, nil
	}
	return models[0].Value, nil
}

func (a *ABCIStore) Has(key []byte) (bool, error) {
	val, err := a.Get(key)
	return val != nil, err
}

// Iterator only supports the full range, fetched with a single prefix
// query.
func (a *ABCIStore) Iterator(start, end []byte) (revshare.Iterator, error) {
	if start != nil || end != nil {
		return nil, errors.Wrap(errors.ErrHuman, "iterator only implemented for entire range")
	}
	models, err := a.query("/?"+revshare.PrefixQueryMod, nil)
	if err != nil {
		return nil, err
	}
	return store.NewSliceIterator(models), nil
}

func (a *ABCIStore) ReverseIterator(start, end []byte) (revshare.Iterator, error) {
	return nil, errors.Wrap(errors.ErrHuman, "reverse iterator not implemented")
}
