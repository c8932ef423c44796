package utils

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
)

// Savepoint runs the wrapped handler in a cache wrap that is written only
// if the handler succeeds. It is disabled until OnCheck or OnDeliver is
// called.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ revshare.Decorator = Savepoint{}

func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck enables the savepoint for CheckTx.
func (s Savepoint) OnCheck() Savepoint {
	s.onCheck = true
	return s
}

// OnDeliver enables the savepoint for DeliverTx.
func (s Savepoint) OnDeliver() Savepoint {
	s.onDeliver = true
	return s
}

func (s Savepoint) Check(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx, next revshare.Checker) (*revshare.CheckResult, error) {
	cache := wrap(db, s.onCheck)
	if cache == nil {
		return next.Check(ctx, db, tx)
	}
	res, err := next.Check(ctx, cache, tx)
	if err := settle(cache, err); err != nil {
		return nil, err
	}
	return res, nil
}

func (s Savepoint) Deliver(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx, next revshare.Deliverer) (*revshare.DeliverResult, error) {
	cache := wrap(db, s.onDeliver)
	if cache == nil {
		return next.Deliver(ctx, db, tx)
	}
	res, err := next.Deliver(ctx, cache, tx)
	if err := settle(cache, err); err != nil {
		return nil, err
	}
	return res, nil
}

// wrap returns nil when disabled or when db cannot be cache wrapped.
func wrap(db revshare.KVStore, enabled bool) revshare.KVCacheWrap {
	if c, ok := db.(revshare.CacheableKVStore); ok && enabled {
		return c.CacheWrap()
	}
	return nil
}

// settle writes the cache after a successful call and drops it otherwise.
func settle(cache revshare.KVCacheWrap, callErr error) error {
	if callErr != nil {
		cache.Discard()
		return callErr
	}
	return errors.Wrap(cache.Write(), "writing savepoint")
}
