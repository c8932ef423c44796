package sigs

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/crypto"
	"github.com/iov-one/revshare/errors"
	"github.com/iov-one/revshare/orm"
)

// BucketName is the name of the bucket holding the signer sequences.
const BucketName = "sigs"

// maxSequence is the largest sequence a javascript client can represent,
// Number.MAX_SAFE_INTEGER.
const maxSequence = 1<<53 - 1

// UserData is the replay protection state of a single signer, stored under
// the address of its public key.
type UserData struct {
	Pubkey   *crypto.PublicKey
	Sequence int64
}

var _ orm.CloneableData = (*UserData)(nil)

func (u *UserData) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(u)
}

func (u *UserData) Unmarshal(raw []byte) error {
	if err := cdc.UnmarshalBinaryBare(raw, u); err != nil {
		return errors.Wrap(errors.ErrSchema, err.Error())
	}
	return nil
}

func (u *UserData) Validate() error {
	switch {
	case u.Sequence < 0:
		return errors.Field("Sequence", ErrInvalidSequence, "negative")
	case u.Sequence > 0 && u.Pubkey == nil:
		return errors.Field("Sequence", ErrInvalidSequence, "needs Pubkey")
	}
	return nil
}

func (u *UserData) Copy() orm.CloneableData {
	cp := *u
	return &cp
}

// CheckAndIncrementSequence accepts only the current sequence and moves it
// forward by one.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if u.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", expected, u.Sequence)
	}
	if u.Sequence >= maxSequence {
		return errors.Wrap(errors.ErrOverflow, "sequence out of range")
	}
	u.Sequence++
	return nil
}

// SetPubkey panics if the key was already set. A stored key never changes.
func (u *UserData) SetPubkey(pubkey *crypto.PublicKey) {
	if u.Pubkey != nil {
		panic("Cannot change pubkey for a user")
	}
	u.Pubkey = pubkey
}

// AsUser returns the UserData held by obj or nil.
func AsUser(obj orm.Object) *UserData {
	if obj == nil {
		return nil
	}
	u, _ := obj.Value().(*UserData)
	return u
}

// NewUser returns a fresh signer state for pubkey.
func NewUser(pubkey *crypto.PublicKey) orm.Object {
	var key revshare.Address
	if pubkey != nil {
		key = pubkey.Address()
	}
	return orm.NewSimpleObj(key, &UserData{Pubkey: pubkey})
}

// Bucket stores UserData by signer address.
type Bucket struct {
	orm.Bucket
}

func NewBucket() Bucket {
	return Bucket{Bucket: orm.NewBucket(BucketName, NewUser(nil))}
}

// GetOrCreate loads the state of pubkey or returns a new one with a zero
// sequence. A new state is not saved.
func (b Bucket) GetOrCreate(db revshare.KVStore, pubkey *crypto.PublicKey) (orm.Object, error) {
	obj, err := b.Get(db, pubkey.Address())
	switch {
	case err != nil:
		return nil, err
	case obj == nil:
		return NewUser(pubkey), nil
	}
	return obj, nil
}
