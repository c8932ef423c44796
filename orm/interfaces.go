package orm

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/x"
)

// Object is a keyed value held by a Bucket. The key is stored without the
// bucket prefix.
type Object interface {
	Keyed
	Cloneable
	x.Validater
	Value() revshare.Persistent
}

type Keyed interface {
	Key() []byte
	SetKey([]byte)
}

// Cloneable is implemented by the prototype of a bucket, each Clone is
// loaded with a stored value.
type Cloneable interface {
	Clone() Object
}

// CloneableData is the value of a SimpleObj.
type CloneableData interface {
	x.Validater
	revshare.Persistent
	Copy() CloneableData
}
