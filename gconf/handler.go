package gconf

import (
	"reflect"

	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
	"github.com/iov-one/revshare/x"
)

// OwnedConfig is a configuration that declares its owner. Only the owner can
// change it.
type OwnedConfig interface {
	Configuration
	GetOwner() revshare.Address
}

// PatchMsg is implemented by messages carrying a configuration change.
// Non zero fields of the patch replace the stored values.
type PatchMsg interface {
	revshare.Msg
	ConfigPatch() OwnedConfig
}

// UpdateHandler applies PatchMsg messages to the configuration of a single
// package. The configuration must already exist, usually loaded from the
// genesis with InitConfig.
type UpdateHandler struct {
	pkg       string
	newConfig func() OwnedConfig
	auth      x.Authenticator
}

var _ revshare.Handler = UpdateHandler{}

// NewUpdateHandler returns a handler updating the configuration of pkg.
// newConfig must return a new zero instance on every call.
func NewUpdateHandler(pkg string, newConfig func() OwnedConfig, auth x.Authenticator) UpdateHandler {
	return UpdateHandler{pkg: pkg, newConfig: newConfig, auth: auth}
}

func (h UpdateHandler) Check(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx) (*revshare.CheckResult, error) {
	if _, err := h.apply(ctx, db, tx); err != nil {
		return nil, err
	}
	return &revshare.CheckResult{}, nil
}

func (h UpdateHandler) Deliver(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx) (*revshare.DeliverResult, error) {
	conf, err := h.apply(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	revshare.GetLogger(ctx).Info("configuration updated", "package", h.pkg, "owner", conf.GetOwner())
	return &revshare.DeliverResult{}, nil
}

func (h UpdateHandler) apply(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx) (OwnedConfig, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get message")
	}
	pm, ok := msg.(PatchMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrMsg, "not a configuration patch: %T", msg)
	}
	if err := pm.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid message")
	}

	conf := h.newConfig()
	if err := Load(db, h.pkg, conf); err != nil {
		return nil, errors.Wrap(err, "load current configuration")
	}
	owner := conf.GetOwner()
	if owner == nil || !h.auth.HasAddress(ctx, owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}

	if err := merge(conf, pm.ConfigPatch()); err != nil {
		return nil, err
	}
	if err := Save(db, h.pkg, conf); err != nil {
		return nil, errors.Wrap(err, "cannot save updated config")
	}
	return conf, nil
}

// merge copies every non zero field of patch into conf. Both must be
// pointers to the same struct type.
func merge(conf, patch OwnedConfig) error {
	dst, src := reflect.ValueOf(conf), reflect.ValueOf(patch)
	if src.Type() != dst.Type() || dst.Kind() != reflect.Ptr || dst.Elem().Kind() != reflect.Struct {
		return errors.Wrapf(errors.ErrType, "cannot patch %T with %T", conf, patch)
	}
	if src.IsNil() {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	dst, src = dst.Elem(), src.Elem()
	for i := 0; i < src.NumField(); i++ {
		f := src.Field(i)
		if reflect.DeepEqual(f.Interface(), reflect.Zero(f.Type()).Interface()) {
			continue
		}
		dst.Field(i).Set(f)
	}
	return nil
}
