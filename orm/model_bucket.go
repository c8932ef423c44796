package orm

import (
	"reflect"

	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
)

// Model is a value stored by a ModelBucket. It is the same as CloneableData.
type Model interface {
	revshare.Persistent
	Validate() error
	Copy() CloneableData
}

// ModelBucket stores models without exposing the Object wrapper.
type ModelBucket interface {
	// One loads the model stored under key into dest. It fails with
	// ErrNotFound when nothing is stored and with ErrType when the stored
	// model cannot be assigned to dest.
	One(db revshare.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns ErrNotFound when nothing is stored under key.
	Has(db revshare.ReadOnlyKVStore, key []byte) error

	// Put validates and stores m under key.
	Put(db revshare.KVStore, key []byte, m Model) error

	// Delete fails with ErrNotFound when nothing is stored under key.
	Delete(db revshare.KVStore, key []byte) error

	Register(name string, r revshare.QueryRouter)
}

// NewModelBucket returns a bucket holding models of the same type as proto.
func NewModelBucket(name string, proto Model) ModelBucket {
	return modelBucket{Bucket: NewBucket(name, NewSimpleObj(nil, proto))}
}

type modelBucket struct {
	Bucket
}

var _ ModelBucket = modelBucket{}

func (mb modelBucket) One(db revshare.ReadOnlyKVStore, key []byte, dest Model) error {
	obj, err := mb.Get(db, key)
	if err != nil {
		return err
	}
	if obj == nil || obj.Value() == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	src := reflect.ValueOf(obj.Value())
	dst := reflect.ValueOf(dest)
	if !src.Type().AssignableTo(dst.Type()) {
		return errors.Wrapf(errors.ErrType, "%T cannot be represented as %T", obj.Value(), dest)
	}
	dst.Elem().Set(src.Elem())
	return nil
}

func (mb modelBucket) Has(db revshare.ReadOnlyKVStore, key []byte) error {
	switch ok, err := mb.Bucket.Has(db, key); {
	case err != nil:
		return errors.Wrap(errors.ErrDatabase, err.Error())
	case !ok:
		return errors.ErrNotFound
	}
	return nil
}

func (mb modelBucket) Put(db revshare.KVStore, key []byte, m Model) error {
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	return errors.Wrap(mb.Save(db, NewSimpleObj(key, m)), "cannot store in the database")
}

func (mb modelBucket) Delete(db revshare.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	return mb.Bucket.Delete(db, key)
}
