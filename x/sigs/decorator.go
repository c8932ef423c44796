/*
Package sigs authenticates transactions by their ed25519 signatures and
keeps a sequence per signer so that a signed transaction is accepted once.
*/
package sigs

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
)

// RegisterQuery exposes the signer sequences under "/auth".
func RegisterQuery(qr revshare.QueryRouter) {
	NewBucket().Register("auth", qr)
}

// Decorator verifies the signatures of every SignedTx and passes the signers
// down the stack in the context. Transactions that cannot be signed pass
// through untouched.
type Decorator struct {
	allowMissingSigs bool
}

var _ revshare.Decorator = Decorator{}

// NewDecorator returns a decorator that rejects a SignedTx without any
// signature.
func NewDecorator() Decorator {
	return Decorator{}
}

// AllowMissingSigs returns a copy that accepts unsigned transactions.
func (d Decorator) AllowMissingSigs() Decorator {
	d.allowMissingSigs = true
	return d
}

func (d Decorator) Check(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx, next revshare.Checker) (*revshare.CheckResult, error) {
	ctx, err := d.authenticate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return next.Check(ctx, db, tx)
}

func (d Decorator) Deliver(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx, next revshare.Deliverer) (*revshare.DeliverResult, error) {
	ctx, err := d.authenticate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}

func (d Decorator) authenticate(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx) (revshare.Context, error) {
	signed, ok := tx.(SignedTx)
	if !ok {
		return ctx, nil
	}
	signers, err := VerifyTxSignatures(db, signed, revshare.GetChainID(ctx))
	switch {
	case err != nil:
		return nil, errors.Wrap(err, "cannot verify signatures")
	case len(signers) == 0 && !d.allowMissingSigs:
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return withSigners(ctx, signers), nil
}
