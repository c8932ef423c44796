package sigs

import (
	"bytes"
	"crypto/sha512"
	"encoding/binary"

	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/crypto"
	"github.com/iov-one/revshare/errors"
)

// SignCodeV1 is prepended to every payload before it is hashed.
var SignCodeV1 = []byte{0, 0xCA, 0xFE, 0}

// BuildSignBytes returns the digest a signer signs for given payload. The
// digest is the sha512 of
//
//	SignCodeV1 | uint8 len(chainID) | chainID | int64 big endian seq | payload
//
// so a signature cannot be replayed on another chain or with another
// sequence.
func BuildSignBytes(payload []byte, chainID string, seq int64) ([]byte, error) {
	if seq < 0 {
		return nil, errors.Wrap(ErrInvalidSequence, "negative")
	}
	if !revshare.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}

	var buf bytes.Buffer
	buf.Grow(len(SignCodeV1) + 1 + len(chainID) + 8 + len(payload))
	buf.Write(SignCodeV1)
	buf.WriteByte(byte(len(chainID)))
	buf.WriteString(chainID)
	_ = binary.Write(&buf, binary.BigEndian, seq)
	buf.Write(payload)

	digest := sha512.Sum512(buf.Bytes())
	return digest[:], nil
}

// BuildSignBytesTx is BuildSignBytes for the payload of a transaction.
func BuildSignBytesTx(tx SignedTx, chainID string, seq int64) ([]byte, error) {
	payload, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	return BuildSignBytes(payload, chainID, seq)
}

// SignTx signs the transaction with given sequence.
func SignTx(signer crypto.Signer, tx SignedTx, chainID string, seq int64) (*StdSignature, error) {
	digest, err := BuildSignBytesTx(tx, chainID, seq)
	if err != nil {
		return nil, err
	}
	raw, err := signer.Sign(digest)
	if err != nil {
		return nil, err
	}
	return &StdSignature{Pubkey: signer.PublicKey(), Signature: raw, Sequence: seq}, nil
}

// VerifyTxSignatures verifies every signature of the transaction, in order,
// and returns the conditions of all signers. The first invalid signature
// fails the whole transaction.
func VerifyTxSignatures(db revshare.KVStore, tx SignedTx, chainID string) ([]revshare.Condition, error) {
	payload, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	signatures := tx.GetSignatures()
	signers := make([]revshare.Condition, len(signatures))
	for i, sig := range signatures {
		if signers[i], err = VerifySignature(db, sig, payload, chainID); err != nil {
			return nil, err
		}
	}
	return signers, nil
}

// VerifySignature checks a single signature of the payload. On success the
// sequence of the signer is incremented and stored.
func VerifySignature(db revshare.KVStore, sig *StdSignature, payload []byte, chainID string) (revshare.Condition, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	digest, err := BuildSignBytes(payload, chainID, sig.Sequence)
	if err != nil {
		return nil, err
	}

	b := NewBucket()
	obj, err := b.GetOrCreate(db, sig.Pubkey)
	if err != nil {
		return nil, err
	}
	user := AsUser(obj)
	if !user.Pubkey.Verify(digest, sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}
	if err := user.CheckAndIncrementSequence(sig.Sequence); err != nil {
		return nil, err
	}
	if err := b.Save(db, obj); err != nil {
		return nil, err
	}
	return user.Pubkey.Condition(), nil
}
