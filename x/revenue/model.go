package revenue

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
)

var (
	// CreatorKey is the database key of the creator address.
	CreatorKey = []byte("revenue:creator_address")
	// PlatformKey is the database key of the platform address.
	PlatformKey = []byte("revenue:platform_address")
)

// ContractAddress is the account that receives payments before they are
// distributed. Residuals of the split accumulate here.
var ContractAddress = revshare.NewCondition("revenue", "contract", []byte("revenue")).Address()

// ContractState holds the beneficiaries of the contract. It is written once
// and never changes afterwards.
type ContractState struct {
	CreatorAddress  revshare.Address
	PlatformAddress revshare.Address
}

// Validate ensures both beneficiaries are set.
func (s *ContractState) Validate() error {
	var err error
	err = errors.AppendField(err, "CreatorAddress", s.CreatorAddress.Validate())
	err = errors.AppendField(err, "PlatformAddress", s.PlatformAddress.Validate())
	return err
}

func (s *ContractState) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(s)
}

func (s *ContractState) Unmarshal(raw []byte) error {
	if err := cdc.UnmarshalBinaryBare(raw, s); err != nil {
		return errors.Wrap(errors.ErrSchema, err.Error())
	}
	return nil
}

// Payment describes funds sent by the sender to the receiver. It is never
// stored.
type Payment struct {
	Sender   revshare.Address
	Receiver revshare.Address
	Amount   uint64
}

// OutboundTransfer is a single payout of a distribution.
type OutboundTransfer struct {
	Recipient revshare.Address
	Amount    uint64
}

// DistributeResult is returned as the data of a delivered distribution.
type DistributeResult struct {
	Total     uint64
	Transfers []OutboundTransfer
}

func (r *DistributeResult) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(r)
}

func (r *DistributeResult) Unmarshal(raw []byte) error {
	if err := cdc.UnmarshalBinaryBare(raw, r); err != nil {
		return errors.Wrap(errors.ErrSchema, err.Error())
	}
	return nil
}
