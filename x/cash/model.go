package cash

import (
	"github.com/iov-one/revshare/errors"
	"github.com/iov-one/revshare/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Wallet holds the balance of a single address. It is stored under the
// owner's address.
type Wallet struct {
	Amount uint64
}

var _ orm.Model = (*Wallet)(nil)

func (w *Wallet) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(w)
}

func (w *Wallet) Unmarshal(raw []byte) error {
	if err := cdc.UnmarshalBinaryBare(raw, w); err != nil {
		return errors.Wrap(errors.ErrSchema, err.Error())
	}
	return nil
}

// Validate always succeeds, any amount is a valid balance.
func (w *Wallet) Validate() error {
	return nil
}

func (w *Wallet) Copy() orm.CloneableData {
	return &Wallet{Amount: w.Amount}
}

// Add increases the balance, failing on overflow.
func (w *Wallet) Add(amount uint64) error {
	sum := w.Amount + amount
	if sum < w.Amount {
		return errors.Wrap(errors.ErrOverflow, "wallet balance")
	}
	w.Amount = sum
	return nil
}

// Subtract decreases the balance. The balance may not go below zero.
func (w *Wallet) Subtract(amount uint64) error {
	if w.Amount < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "balance %d, required %d", w.Amount, amount)
	}
	w.Amount -= amount
	return nil
}

// NewBucket returns a bucket storing wallets by owner address.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Wallet{})
}
