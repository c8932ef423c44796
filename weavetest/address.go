package weavetest

import (
	"crypto/rand"
	"testing"

	"github.com/iov-one/revshare"
)

// RandomAddr returns a valid random address generated on the fly.
func RandomAddr(t testing.TB) revshare.Address {
	t.Helper()

	raw := make([]byte, revshare.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("cannot generate a random address: %s", err)
	}
	return revshare.Address(raw)
}
