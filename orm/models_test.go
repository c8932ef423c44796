package orm

import (
	"github.com/iov-one/revshare/errors"
	amino "github.com/tendermint/go-amino"
)

var testCdc = amino.NewCodec()

// Counter is a minimal model used across the package tests.
type Counter struct {
	Count int64
}

var _ Model = (*Counter)(nil)

func (c *Counter) Marshal() ([]byte, error) {
	return testCdc.MarshalBinaryBare(c)
}

func (c *Counter) Unmarshal(bz []byte) error {
	return testCdc.UnmarshalBinaryBare(bz, c)
}

func (c *Counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrInput, "negative count")
	}
	return nil
}

func (c *Counter) Copy() CloneableData {
	return &Counter{Count: c.Count}
}
