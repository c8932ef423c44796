package crypto

import (
	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/errors"
	amino "github.com/tendermint/go-amino"
)

// ExtensionName is used for the Conditions we get from signatures
const ExtensionName = "sigs"

var cdc = amino.NewCodec()

// PubKey represents a crypto public key we use
type PubKey interface {
	Verify(message []byte, sig *Signature) bool
	Condition() revshare.Condition
}

// Signer is the functionality we use from a private key
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() *PublicKey
}

// PublicKey is the serializable form of a public key. Only ed25519 keys are
// supported.
type PublicKey struct {
	Ed25519 []byte
}

// PrivateKey is the serializable form of a private key.
type PrivateKey struct {
	Ed25519 []byte
}

// Signature is the serializable form of a signature.
type Signature struct {
	Ed25519 []byte
}

var (
	_ PubKey              = (*PublicKey)(nil)
	_ Signer              = (*PrivateKey)(nil)
	_ revshare.Persistent = (*PublicKey)(nil)
	_ revshare.Persistent = (*Signature)(nil)
	_ revshare.Persistent = (*PrivateKey)(nil)
)

// Address returns the address of the condition this key authorizes.
// Nil for an empty key.
func (p *PublicKey) Address() revshare.Address {
	c := p.Condition()
	if c == nil {
		return nil
	}
	return c.Address()
}

// Marshal serializes the public key.
func (p PublicKey) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(p)
}

// Unmarshal loads a public key serialized with Marshal.
func (p *PublicKey) Unmarshal(raw []byte) error {
	if err := cdc.UnmarshalBinaryBare(raw, p); err != nil {
		return errors.Wrap(errors.ErrSchema, err.Error())
	}
	return nil
}

// Marshal serializes the private key.
func (p PrivateKey) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(p)
}

// Unmarshal loads a private key serialized with Marshal.
func (p *PrivateKey) Unmarshal(raw []byte) error {
	if err := cdc.UnmarshalBinaryBare(raw, p); err != nil {
		return errors.Wrap(errors.ErrSchema, err.Error())
	}
	return nil
}

// Marshal serializes the signature.
func (s Signature) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(s)
}

// Unmarshal loads a signature serialized with Marshal.
func (s *Signature) Unmarshal(raw []byte) error {
	if err := cdc.UnmarshalBinaryBare(raw, s); err != nil {
		return errors.Wrap(errors.ErrSchema, err.Error())
	}
	return nil
}
