package app

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp runs transactions through a handler on top of the state kept by
// StoreApp.
type BaseApp struct {
	*StoreApp
	decoder revshare.TxDecoder
	handler revshare.Handler
}

var _ abci.Application = (*BaseApp)(nil)

func NewBaseApp(store *StoreApp, decoder revshare.TxDecoder, handler revshare.Handler, debug bool) *BaseApp {
	return &BaseApp{
		StoreApp: store.WithDebug(debug),
		decoder:  decoder,
		handler:  handler,
	}
}

// DeliverTx executes the transaction against the block state.
func (b *BaseApp) DeliverTx(raw []byte) abci.ResponseDeliverTx {
	b.mu.Lock()
	defer b.mu.Unlock()

	ctx, tx, err := b.prepare(raw, "deliver_tx")
	if err != nil {
		return revshare.DeliverTxError(err, b.debug)
	}
	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	return revshare.DeliverOrError(res, err, b.debug)
}

// CheckTx validates the transaction against the mempool state.
func (b *BaseApp) CheckTx(raw []byte) abci.ResponseCheckTx {
	b.mu.Lock()
	defer b.mu.Unlock()

	ctx, tx, err := b.prepare(raw, "check_tx")
	if err != nil {
		return revshare.CheckTxError(err, b.debug)
	}
	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return revshare.CheckOrError(res, err, b.debug)
}

// prepare decodes raw and builds the context of the call. A panicking
// decoder is reported as an error.
func (b *BaseApp) prepare(raw []byte, call string) (ctx revshare.Context, tx revshare.Tx, err error) {
	defer errors.Recover(&err)
	if tx, err = b.decoder(raw); err != nil {
		return nil, nil, err
	}
	if tx == nil {
		return nil, nil, errors.Wrap(errors.ErrInput, "empty transaction")
	}
	ctx = revshare.WithLogInfo(b.BlockContext(), "call", call, "path", revshare.GetPath(tx))
	return ctx, tx, nil
}
