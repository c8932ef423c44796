package utils

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
)

// Recovery turns a panic of the wrapped handler into an ErrPanic, which is
// redacted before it reaches the client.
type Recovery struct{}

var _ revshare.Decorator = Recovery{}

func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Check(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx, next revshare.Checker) (res *revshare.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, db, tx)
}

func (Recovery) Deliver(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx, next revshare.Deliverer) (res *revshare.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, db, tx)
}
