package cash

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
)

var _ revshare.Msg = (*SendMsg)(nil)

const maxMemoSize int = 128

// SendMsg moves funds from the source to the destination wallet. It must be
// signed by the source.
type SendMsg struct {
	Source      revshare.Address
	Destination revshare.Address
	Amount      uint64
	Memo        string
}

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return "cash/send"
}

// Validate makes sure that this is sensible
func (s *SendMsg) Validate() error {
	var err error
	if s.Amount == 0 {
		err = errors.Field("Amount", errors.ErrAmount, "non-positive")
	}
	err = errors.AppendField(err, "Source", s.Source.Validate())
	err = errors.AppendField(err, "Destination", s.Destination.Validate())
	if len(s.Memo) > maxMemoSize {
		err = errors.AppendField(err, "Memo", errors.Wrap(errors.ErrInput, "too long"))
	}
	return err
}
