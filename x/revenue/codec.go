package revenue

import (
	amino "github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

// RegisterCodec registers the messages of this extension so that they can be
// carried by a transaction.
func RegisterCodec(c *amino.Codec) {
	c.RegisterConcrete(&CreateMsg{}, "revenue/create", nil)
	c.RegisterConcrete(&DistributeMsg{}, "revenue/distribute", nil)
	c.RegisterConcrete(&UpdateConfigurationMsg{}, "revenue/update_configuration", nil)
}
