package sigs

import (
	amino "github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

// RegisterCodec registers the messages of this extension so that they can be
// carried by a transaction.
func RegisterCodec(c *amino.Codec) {
	c.RegisterConcrete(&BumpSequenceMsg{}, "sigs/bump_sequence", nil)
}
