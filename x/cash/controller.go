package cash

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
	"github.com/iov-one/revshare/orm"
)

// Controller is the functionality needed by other extensions to move funds.
type Controller interface {
	// Balance returns the amount owned by given address. An address that
	// never received funds has a zero balance.
	Balance(revshare.ReadOnlyKVStore, revshare.Address) (uint64, error)

	// MoveCoins transfers amount from src to dest. It fails if src does
	// not have enough funds or if amount is zero.
	MoveCoins(db revshare.KVStore, src, dest revshare.Address, amount uint64) error

	// CoinMint issues new funds to given address.
	CoinMint(db revshare.KVStore, dest revshare.Address, amount uint64) error
}

// BaseController is the default Controller implementation.
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller operating on the default bucket.
func NewController() BaseController {
	return BaseController{bucket: NewBucket()}
}

// Balance returns the balance of given address.
func (c BaseController) Balance(db revshare.ReadOnlyKVStore, addr revshare.Address) (uint64, error) {
	w, err := c.wallet(db, addr)
	if err != nil {
		return 0, err
	}
	return w.Amount, nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(db revshare.KVStore, src, dest revshare.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}

	sender, err := c.wallet(db, src)
	if err != nil {
		return err
	}
	if err := sender.Subtract(amount); err != nil {
		return err
	}
	// A transfer to self only requires the funds to be present.
	if src.Equals(dest) {
		return nil
	}

	recipient, err := c.wallet(db, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}

	if err := c.bucket.Put(db, src, sender); err != nil {
		return errors.Wrap(err, "save sender")
	}
	if err := c.bucket.Put(db, dest, recipient); err != nil {
		return errors.Wrap(err, "save recipient")
	}
	return nil
}

// CoinMint attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
func (c BaseController) CoinMint(db revshare.KVStore, dest revshare.Address, amount uint64) error {
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	w, err := c.wallet(db, dest)
	if err != nil {
		return err
	}
	if err := w.Add(amount); err != nil {
		return err
	}
	return c.bucket.Put(db, dest, w)
}

func (c BaseController) wallet(db revshare.ReadOnlyKVStore, addr revshare.Address) (*Wallet, error) {
	var w Wallet
	switch err := c.bucket.One(db, addr, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return &Wallet{}, nil
	default:
		return nil, errors.Wrap(err, "load wallet")
	}
}
