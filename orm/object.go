package orm

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
	"github.com/iov-one/revshare/x"
)

// SimpleObj is the Object used by every bucket: a key and a model.
type SimpleObj struct {
	key   []byte
	value Model
}

var _ x.Validater = (*SimpleObj)(nil)

func NewSimpleObj(key []byte, value Model) *SimpleObj {
	return &SimpleObj{key: key, value: value}
}

func (o SimpleObj) Key() []byte {
	return o.key
}

func (o *SimpleObj) SetKey(key []byte) {
	o.key = key
}

func (o SimpleObj) Value() revshare.Persistent {
	return o.value
}

// Validate requires both the key and the value and validates the value.
func (o SimpleObj) Validate() error {
	switch {
	case len(o.key) == 0:
		return errors.Field("Key", errors.ErrEmpty, "missing key")
	case o.value == nil:
		return errors.Field("Value", errors.ErrEmpty, "missing value")
	default:
		return errors.Field("Value", o.value.Validate(), "invalid value")
	}
}

// Clone returns a deep copy. An empty key stays nil.
func (o *SimpleObj) Clone() Object {
	cp := &SimpleObj{value: o.value.Copy().(Model)}
	if len(o.key) != 0 {
		cp.key = append([]byte(nil), o.key...)
	}
	return cp
}
