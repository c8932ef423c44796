package sigs

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/weavetest"
)

// StdTx is a signed transaction carrying a raw payload.
type StdTx struct {
	Payload    []byte
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)
var _ revshare.Tx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	return &StdTx{Payload: payload}
}

func (tx *StdTx) GetMsg() (revshare.Msg, error) {
	return &weavetest.Msg{RoutePath: "test/payload"}, nil
}

func (tx *StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx *StdTx) GetSignBytes() ([]byte, error) {
	return tx.Payload, nil
}
