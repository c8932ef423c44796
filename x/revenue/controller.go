package revenue

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
)

// Create stores the contract state. The caller becomes the creator and the
// deployer the platform. It fails if the contract was already created, in
// which case the stored state is left untouched.
func Create(db revshare.KVStore, caller, deployer revshare.Address) (*ContractState, error) {
	ok, err := db.Has(CreatorKey)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if ok {
		return nil, ErrAlreadyCreated
	}
	state := ContractState{
		CreatorAddress:  caller.Clone(),
		PlatformAddress: deployer.Clone(),
	}
	if err := state.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid identity")
	}
	if err := db.Set(CreatorKey, state.CreatorAddress); err != nil {
		return nil, errors.Wrap(err, "save creator")
	}
	if err := db.Set(PlatformKey, state.PlatformAddress); err != nil {
		return nil, errors.Wrap(err, "save platform")
	}
	return &state, nil
}

// LoadState returns the stored contract state or ErrNotCreated.
func LoadState(db revshare.ReadOnlyKVStore) (*ContractState, error) {
	creator, err := db.Get(CreatorKey)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if creator == nil {
		return nil, ErrNotCreated
	}
	platform, err := db.Get(PlatformKey)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if platform == nil {
		return nil, errors.Wrap(errors.ErrState, "platform address missing")
	}
	return &ContractState{
		CreatorAddress:  revshare.Address(creator),
		PlatformAddress: revshare.Address(platform),
	}, nil
}

// Addresses returns the creator and the platform addresses.
func Addresses(db revshare.ReadOnlyKVStore) (creator, platform revshare.Address, err error) {
	state, err := LoadState(db)
	if err != nil {
		return nil, nil, err
	}
	return state.CreatorAddress, state.PlatformAddress, nil
}
