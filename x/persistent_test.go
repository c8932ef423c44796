package x

import (
	"encoding/binary"
	"testing"

	"github.com/iov-one/revshare/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter is a minimal persistent model, encoded as a big endian uint64.
type counter struct {
	Value uint64
}

func (c counter) Marshal() ([]byte, error) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, c.Value)
	return bz, nil
}

func (c *counter) Unmarshal(bz []byte) error {
	if len(bz) != 8 {
		return errors.Wrap(errors.ErrSchema, "counter must be 8 bytes")
	}
	c.Value = binary.BigEndian.Uint64(bz)
	return nil
}

func (c counter) Validate() error {
	if c.Value == 0 {
		return errors.Wrap(errors.ErrEmpty, "value")
	}
	return nil
}

func TestPersistent(t *testing.T) {
	good := &counter{Value: 700}
	bad := &counter{}
	should, err := good.Marshal()
	require.NoError(t, err)

	bz := MustMarshal(good)
	assert.Equal(t, should, bz)

	got := new(counter)
	MustUnmarshal(got, bz)
	assert.Equal(t, good, got)
	assert.Panics(t, func() { MustUnmarshal(got, []byte{17, 34}) })

	assert.Panics(t, func() { MustValidate(bad) })
	assert.NotPanics(t, func() { MustValidate(good) })
	assert.Panics(t, func() { MustMarshalValid(bad) })
	assert.Equal(t, should, MustMarshalValid(good))
}
