package revshare

import (
	"encoding/json"

	"github.com/iov-one/revshare/errors"
)

// Handler executes the messages registered for it. CheckTx only calls
// Check, DeliverTx only Deliver.
type Handler interface {
	Checker
	Deliverer
}

// Checker is the part of a Handler a decorator calls from Check.
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer is the part of a Handler a decorator calls from Deliver.
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator runs around the next handler of the stack, to authenticate or
// to isolate state changes for example.
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry is the setup side of a Router.
type Registry interface {
	Handle(path string, h Handler)
}

// Options is the app_state of the genesis, split by top level key.
type Options map[string]json.RawMessage

// ReadOptions decodes the JSON under key into obj. A missing key leaves obj
// untouched.
func (o Options) ReadOptions(key string, obj interface{}) error {
	raw, ok := o[key]
	if !ok || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, obj); err != nil {
		return errors.Wrapf(errors.ErrInput, "genesis %q: %s", key, err)
	}
	return nil
}

// Initializer loads the genesis state of an extension.
type Initializer interface {
	FromGenesis(Options, KVStore) error
}

// ChainInitializers combines several Initializers into one. They are run in
// the order given and the first failure stops the process.
func ChainInitializers(inits ...Initializer) Initializer {
	return chainInit(inits)
}

type chainInit []Initializer

func (c chainInit) FromGenesis(opts Options, kv KVStore) error {
	for _, i := range c {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}
