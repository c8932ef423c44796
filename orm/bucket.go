/*
Package orm maps typed objects onto the key value store.

Every type lives in its own Bucket, a key space prefixed with the bucket
name. Objects are addressed by their primary key within the bucket.
*/
package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Bucket stores objects of the same type as proto under the "<name>:"
// prefix. Wrap it in a type safe bucket for every model.
type Bucket struct {
	name   string
	prefix []byte
	proto  Cloneable
}

var _ revshare.QueryHandler = Bucket{}

// NewBucket panics when name is not 3 to 10 lower case letters or
// underscores.
func NewBucket(name string, proto Cloneable) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	return Bucket{name: name, prefix: []byte(name + ":"), proto: proto}
}

func (b Bucket) Name() string {
	return b.name
}

// Register exposes the bucket under "/<name>". An empty name uses the name
// of the bucket.
func (b Bucket) Register(name string, r revshare.QueryRouter) {
	if name == "" {
		name = b.name
	}
	r.Register("/"+name, b)
}

// Query answers key and prefix queries. Keys are given without the bucket
// prefix but returned with it.
func (b Bucket) Query(db revshare.ReadOnlyKVStore, mod string, data []byte) ([]revshare.Model, error) {
	switch mod {
	case revshare.PrefixQueryMod:
		return queryPrefix(db, b.DBKey(data))
	case revshare.KeyQueryMod:
		key := b.DBKey(data)
		switch value, err := db.Get(key); {
		case err != nil:
			return nil, err
		case value == nil:
			return nil, nil
		default:
			return []revshare.Model{revshare.Pair(key, value)}, nil
		}
	}
	return nil, errors.Wrapf(ErrInvalidQuery, "unknown mod: %q", mod)
}

// DBKey returns the prefixed key. The result never shares memory with key
// or with a previous result.
func (b Bucket) DBKey(key []byte) []byte {
	out := make([]byte, 0, len(b.prefix)+len(key))
	return append(append(out, b.prefix...), key...)
}

// Get returns nil without an error when nothing is stored under key.
func (b Bucket) Get(db revshare.ReadOnlyKVStore, key []byte) (Object, error) {
	raw, err := db.Get(b.DBKey(key))
	if err != nil || raw == nil {
		return nil, err
	}
	return b.Parse(key, raw)
}

func (b Bucket) Has(db revshare.ReadOnlyKVStore, key []byte) (bool, error) {
	return db.Has(b.DBKey(key))
}

// Parse decodes a stored value into a new object keyed by key.
func (b Bucket) Parse(key, raw []byte) (Object, error) {
	obj := b.proto.Clone()
	if len(raw) != 0 {
		if err := obj.Value().Unmarshal(raw); err != nil {
			return nil, err
		}
	}
	obj.SetKey(key)
	return obj, nil
}

// Save validates and stores the object under its key.
func (b Bucket) Save(db revshare.KVStore, obj Object) error {
	if err := obj.Validate(); err != nil {
		return err
	}
	raw, err := obj.Value().Marshal()
	if err != nil {
		return err
	}
	// a zero value may marshal to nil, which is not a valid store value
	if raw == nil {
		raw = []byte{}
	}
	return db.Set(b.DBKey(obj.Key()), raw)
}

func (b Bucket) Delete(db revshare.KVStore, key []byte) error {
	return db.Delete(b.DBKey(key))
}
