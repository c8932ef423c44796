package revshared

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
	"github.com/iov-one/revshare/x/cash"
	"github.com/iov-one/revshare/x/revenue"
	"github.com/iov-one/revshare/x/sigs"
	amino "github.com/tendermint/go-amino"
)

var cdc = NewCodec()

// NewCodec returns a codec that can encode any message supported by the
// application as well as the transaction carrying it.
func NewCodec() *amino.Codec {
	c := amino.NewCodec()
	c.RegisterInterface((*revshare.Msg)(nil), nil)
	cash.RegisterCodec(c)
	revenue.RegisterCodec(c)
	sigs.RegisterCodec(c)
	c.RegisterConcrete(&Tx{}, "revshared/tx", nil)
	c.Seal()
	return c
}

// Tx is the only transaction type accepted by the application. It carries a
// single message together with the signatures authorizing it.
type Tx struct {
	Msg        revshare.Msg
	Signatures []*sigs.StdSignature
}

// make sure tx fulfills all interfaces
var _ revshare.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (revshare.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, err
	}
	return tx, nil
}

// Marshal serializes the transaction.
func (tx *Tx) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(tx)
}

// Unmarshal loads the transaction from its serialized form.
func (tx *Tx) Unmarshal(raw []byte) error {
	if err := cdc.UnmarshalBinaryBare(raw, tx); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return nil
}

// GetMsg returns the carried message.
func (tx *Tx) GetMsg() (revshare.Msg, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "no message")
	}
	return tx.Msg, nil
}

// GetSignatures returns all signatures attached to the transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// the sign bytes come only from the data itself, never from the
	// signatures already attached
	cpy := Tx{Msg: tx.Msg}
	return cpy.Marshal()
}
