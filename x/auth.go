package x

import (
	"github.com/iov-one/revshare"
)

// Authenticator tells handlers who authorized the current transaction.
// Handlers take it as a dependency so that tests can replace the
// signature based one.
type Authenticator interface {
	// GetConditions returns every condition fulfilled by the transaction.
	GetConditions(revshare.Context) []revshare.Condition
	// HasAddress reports whether any fulfilled condition has addr.
	HasAddress(revshare.Context, revshare.Address) bool
}

// MultiAuth merges the conditions of many authenticators.
type MultiAuth []Authenticator

var _ Authenticator = MultiAuth(nil)

// ChainAuth returns an authenticator consulting all of auths, in order.
func ChainAuth(auths ...Authenticator) MultiAuth {
	return MultiAuth(auths)
}

// GetConditions returns the conditions of all authenticators. A condition
// reported twice is kept at its first position.
func (m MultiAuth) GetConditions(ctx revshare.Context) []revshare.Condition {
	var res []revshare.Condition
	for _, auth := range m {
	conditions:
		for _, c := range auth.GetConditions(ctx) {
			for _, seen := range res {
				if seen.Equals(c) {
					continue conditions
				}
			}
			res = append(res, c)
		}
	}
	return res
}

func (m MultiAuth) HasAddress(ctx revshare.Context, addr revshare.Address) bool {
	for _, auth := range m {
		if auth.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first condition or nil. It identifies the caller
// of an operation.
func MainSigner(ctx revshare.Context, auth Authenticator) revshare.Condition {
	if conds := auth.GetConditions(ctx); len(conds) != 0 {
		return conds[0]
	}
	return nil
}
