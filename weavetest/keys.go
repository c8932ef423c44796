package weavetest

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/crypto"
)

// NewKey returns a fresh ed25519 signer.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

var condSeq uint64

// NewCondition returns a condition that was never returned before during
// this process lifetime. Conditions are built from a sequence so tests are
// cheap and deterministic within a single run.
func NewCondition() revshare.Condition {
	n := atomic.AddUint64(&condSeq, 1)
	return revshare.NewCondition("test", "sequence", SequenceID(n))
}

// SequenceID returns the big endian encoded value of the sequence number.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
