package gconf

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
)

// ReadStore is the part of revshare.ReadOnlyKVStore needed to load a
// configuration.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is the part of revshare.KVStore needed to save a configuration.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

// ValidMarshaler can validate and serialize itself.
type ValidMarshaler interface {
	Marshal() ([]byte, error)
	Validate() error
}

type Unmarshaler interface {
	Unmarshal([]byte) error
}

// Configuration is the persistent configuration of an extension.
type Configuration interface {
	ValidMarshaler
	Unmarshaler
}

// Every extension owns a single configuration entry, stored under
// "_c:<pkg>".
func confKey(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// Save validates src and stores it as the configuration of pkg.
func Save(db Store, pkg string, src ValidMarshaler) error {
	key := confKey(pkg)
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "validation: key %q", key)
	}
	raw, err := src.Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal: key %q", key)
	}
	return db.Set(key, raw)
}

// Load reads the configuration of pkg into dst. It fails with ErrNotFound
// when pkg has no configuration.
func Load(db ReadStore, pkg string, dst Unmarshaler) error {
	key := confKey(pkg)
	switch raw, err := db.Get(key); {
	case err != nil:
		return err
	case raw == nil:
		return errors.Wrapf(errors.ErrNotFound, "key %q", key)
	default:
		return errors.Wrapf(dst.Unmarshal(raw), "unmarshal: key %q", key)
	}
}

// InitConfig saves the genesis configuration of pkg, found under
// "conf" / pkg of the app_state.
func InitConfig(db Store, opts revshare.Options, pkg string, conf Configuration) error {
	var all revshare.Options
	if err := opts.ReadOptions("conf", &all); err != nil {
		return errors.Wrap(err, "read conf")
	}
	if _, ok := all[pkg]; !ok {
		return errors.Wrapf(errors.ErrNotFound, "no configuration in genesis for %q package", pkg)
	}
	if err := all.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(err, "read configuration for %s", pkg)
	}
	return errors.Wrapf(Save(db, pkg, conf), "save configuration for %s", pkg)
}
