package revenue

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
	"github.com/iov-one/revshare/gconf"
	"github.com/iov-one/revshare/x"
)

// CashController settles transfers. Required functionality is implemented
// by the x/cash extension.
type CashController interface {
	MoveCoins(db revshare.KVStore, src, dest revshare.Address, amount uint64) error
}

// RegisterRoutes registers handlers for revenue message processing.
func RegisterRoutes(r revshare.Registry, auth x.Authenticator, ctrl CashController) {
	r.Handle(pathCreateMsg, &createHandler{auth: auth})
	r.Handle(pathDistributeMsg, &distributeHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathUpdateConfigurationMsg, newUpdateConfigurationHandler(auth))
}

// RegisterQuery registers the beneficiaries query as "/revenue/addresses".
func RegisterQuery(qr revshare.QueryRouter) {
	qr.Register("/revenue/addresses", addressesQuery{})
}

type createHandler struct {
	auth x.Authenticator
}

func (h *createHandler) Check(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx) (*revshare.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &revshare.CheckResult{}, nil
}

func (h *createHandler) Deliver(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx) (*revshare.DeliverResult, error) {
	caller, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	state, err := Create(db, caller, conf.Owner)
	if err != nil {
		return nil, err
	}
	raw, err := state.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal state")
	}
	revshare.GetLogger(ctx).Info("revenue created",
		"creator", state.CreatorAddress,
		"platform", state.PlatformAddress)
	return &revshare.DeliverResult{Data: raw}, nil
}

func (h *createHandler) validate(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx) (revshare.Address, *Configuration, error) {
	var msg CreateMsg
	if err := revshare.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "creator signature required")
	}
	switch _, err := LoadState(db); {
	case err == nil:
		return nil, nil, ErrAlreadyCreated
	case !ErrNotCreated.Is(err):
		return nil, nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	return signer.Address(), conf, nil
}

type distributeHandler struct {
	auth x.Authenticator
	ctrl CashController
}

func (h *distributeHandler) Check(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx) (*revshare.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &revshare.CheckResult{}, nil
}

func (h *distributeHandler) Deliver(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx) (*revshare.DeliverResult, error) {
	msg, total, transfers, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if err := h.ctrl.MoveCoins(db, msg.Payment.Sender, ContractAddress, total); err != nil {
		return nil, errors.Wrap(err, "cannot collect payment")
	}
	// Transfers are settled in order, creator first.
	for _, t := range transfers {
		if t.Amount == 0 {
			continue
		}
		if err := h.ctrl.MoveCoins(db, ContractAddress, t.Recipient, t.Amount); err != nil {
			return nil, errors.Wrapf(err, "cannot pay %s", t.Recipient)
		}
	}

	res := DistributeResult{Total: total, Transfers: transfers}
	raw, err := res.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal result")
	}
	revshare.GetLogger(ctx).Info("revenue distributed",
		"sender", msg.Payment.Sender,
		"total", total,
		"creator_amount", transfers[0].Amount,
		"platform_amount", transfers[1].Amount)
	return &revshare.DeliverResult{Data: raw}, nil
}

func (h *distributeHandler) validate(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx) (*DistributeMsg, uint64, []OutboundTransfer, error) {
	var msg DistributeMsg
	if err := revshare.LoadMsg(tx, &msg); err != nil {
		return nil, 0, nil, errors.Wrap(err, "load msg")
	}
	state, err := LoadState(db)
	if err != nil {
		return nil, 0, nil, err
	}
	total, transfers, err := Split(state, ContractAddress, msg.Payment)
	if err != nil {
		return nil, 0, nil, err
	}
	if !h.auth.HasAddress(ctx, msg.Payment.Sender) {
		return nil, 0, nil, errors.Wrap(errors.ErrUnauthorized, "payment sender signature required")
	}
	return &msg, total, transfers, nil
}

// updateConfigurationHandler allows the configuration owner to change the
// deployer identity as long as the contract was not created.
type updateConfigurationHandler struct {
	conf gconf.UpdateHandler
}

func newUpdateConfigurationHandler(auth x.Authenticator) *updateConfigurationHandler {
	newConf := func() gconf.OwnedConfig { return &Configuration{} }
	return &updateConfigurationHandler{
		conf: gconf.NewUpdateHandler(packageName, newConf, auth),
	}
}

func (h *updateConfigurationHandler) Check(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx) (*revshare.CheckResult, error) {
	if err := h.validate(db); err != nil {
		return nil, err
	}
	return h.conf.Check(ctx, db, tx)
}

func (h *updateConfigurationHandler) Deliver(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx) (*revshare.DeliverResult, error) {
	if err := h.validate(db); err != nil {
		return nil, err
	}
	return h.conf.Deliver(ctx, db, tx)
}

func (h *updateConfigurationHandler) validate(db revshare.KVStore) error {
	switch _, err := LoadState(db); {
	case err == nil:
		return errors.Wrap(ErrAlreadyCreated, "configuration is frozen")
	case ErrNotCreated.Is(err):
		return nil
	default:
		return err
	}
}

type addressesQuery struct{}

var _ revshare.QueryHandler = addressesQuery{}

// Query returns the creator and the platform address, keyed by their
// database keys.
func (addressesQuery) Query(db revshare.ReadOnlyKVStore, mod string, data []byte) ([]revshare.Model, error) {
	if mod != revshare.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %q", mod)
	}
	creator, platform, err := Addresses(db)
	if err != nil {
		return nil, err
	}
	return []revshare.Model{
		revshare.Pair(CreatorKey, creator),
		revshare.Pair(PlatformKey, platform),
	}, nil
}
