package revenue

import (
	"math"

	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
)

const (
	creatorShare  = 70
	platformShare = 30
	percent       = 100
)

// Split computes the payouts of a payment. The result always contains the
// creator transfer followed by the platform transfer. Each share is
// truncated on its own, so their sum can be lower than the total. The
// returned total is always the payment amount.
//
// Split does not touch any state. A payment that was not sent to the
// contract or that carries no value is rejected.
func Split(state *ContractState, contract revshare.Address, p Payment) (uint64, []OutboundTransfer, error) {
	if !p.Receiver.Equals(contract) {
		return 0, nil, errors.Wrapf(ErrWrongReceiver, "receiver %s", p.Receiver)
	}
	if p.Amount == 0 {
		return 0, nil, ErrNonPositiveAmount
	}
	if p.Amount > math.MaxUint64/creatorShare {
		return 0, nil, errors.Wrapf(errors.ErrOverflow, "amount %d", p.Amount)
	}
	transfers := []OutboundTransfer{
		{Recipient: state.CreatorAddress, Amount: p.Amount * creatorShare / percent},
		{Recipient: state.PlatformAddress, Amount: p.Amount * platformShare / percent},
	}
	return p.Amount, transfers, nil
}
