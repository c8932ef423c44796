package sigs

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
	"github.com/iov-one/revshare/orm"
	"github.com/iov-one/revshare/x"
)

// RegisterRoutes exposes BumpSequenceMsg. The main signer of the
// transaction is the account whose sequence moves.
func RegisterRoutes(r revshare.Registry, auth x.Authenticator) {
	r.Handle(pathBumpSequenceMsg, bumpHandler{auth: auth, users: NewBucket()})
}

type bumpHandler struct {
	auth  x.Authenticator
	users Bucket
}

func (h bumpHandler) Check(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx) (*revshare.CheckResult, error) {
	_, _, err := h.load(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return &revshare.CheckResult{}, nil
}

func (h bumpHandler) Deliver(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx) (*revshare.DeliverResult, error) {
	user, msg, err := h.load(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	// The signature decorator already counted this transaction.
	if msg.Increment == 1 {
		return &revshare.DeliverResult{}, nil
	}
	user.Sequence += int64(msg.Increment) - 1
	if err := h.users.Save(db, orm.NewSimpleObj(user.Pubkey.Address(), user)); err != nil {
		return nil, errors.Wrap(err, "save user")
	}
	return &revshare.DeliverResult{}, nil
}

func (h bumpHandler) load(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx) (*UserData, *BumpSequenceMsg, error) {
	var msg BumpSequenceMsg
	if err := revshare.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	obj, err := h.users.Get(db, signer.Address())
	switch {
	case err != nil:
		return nil, nil, errors.Wrap(err, "bucket")
	case obj == nil:
		return nil, nil, errors.Wrap(errors.ErrNotFound, "no sequence")
	}
	user := AsUser(obj)
	if user.Sequence+int64(msg.Increment) < user.Sequence {
		return nil, nil, errors.Wrap(errors.ErrOverflow, "user sequence")
	}
	return user, &msg, nil
}
