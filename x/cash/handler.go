package cash

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
	"github.com/iov-one/revshare/x"
)

// RegisterRoutes exposes SendMsg.
func RegisterRoutes(r revshare.Registry, auth x.Authenticator, control Controller) {
	r.Handle(SendMsg{}.Path(), NewSendHandler(auth, control))
}

// RegisterQuery exposes the wallets under "/wallets".
func RegisterQuery(qr revshare.QueryRouter) {
	NewBucket().Register("wallets", qr)
}

// SendHandler moves funds between wallets. The source wallet must sign.
type SendHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ revshare.Handler = SendHandler{}

func NewSendHandler(auth x.Authenticator, control Controller) SendHandler {
	return SendHandler{auth: auth, control: control}
}

// Check does not look at balances, a failing transfer is only detected
// on delivery.
func (h SendHandler) Check(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx) (*revshare.CheckResult, error) {
	if _, err := h.authorized(ctx, tx); err != nil {
		return nil, err
	}
	return &revshare.CheckResult{}, nil
}

func (h SendHandler) Deliver(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx) (*revshare.DeliverResult, error) {
	msg, err := h.authorized(ctx, tx)
	if err != nil {
		return nil, err
	}
	err = h.control.MoveCoins(db, msg.Source, msg.Destination, msg.Amount)
	if err != nil {
		return nil, err
	}
	return &revshare.DeliverResult{}, nil
}

func (h SendHandler) authorized(ctx revshare.Context, tx revshare.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := revshare.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "source signature missing")
	}
	return &msg, nil
}
