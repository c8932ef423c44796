package weavetest

import (
	"context"
	"fmt"

	"github.com/iov-one/revshare"
)

// Auth is an x.Authenticator mock authenticating a fixed set of
// conditions: Signers followed by Signer, when set.
type Auth struct {
	Signer  revshare.Condition
	Signers []revshare.Condition
}

func (a *Auth) GetConditions(revshare.Context) []revshare.Condition {
	if a.Signer == nil {
		return a.Signers
	}
	// never append to Signers, the caller owns it
	all := make([]revshare.Condition, len(a.Signers), len(a.Signers)+1)
	copy(all, a.Signers)
	return append(all, a.Signer)
}

func (a *Auth) HasAddress(ctx revshare.Context, addr revshare.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

// CtxAuth is an x.Authenticator mock reading the conditions stored in the
// context under Key.
type CtxAuth struct {
	Key string
}

// SetConditions returns a context authenticating conds.
func (a *CtxAuth) SetConditions(ctx revshare.Context, conds ...revshare.Condition) revshare.Context {
	return context.WithValue(ctx, a.Key, conds)
}

func (a *CtxAuth) GetConditions(ctx revshare.Context) []revshare.Condition {
	switch v := ctx.Value(a.Key).(type) {
	case nil:
		return nil
	case []revshare.Condition:
		return v
	default:
		panic(fmt.Sprintf("instead of []revshare.Condition got %T", v))
	}
}

func (a *CtxAuth) HasAddress(ctx revshare.Context, addr revshare.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

func hasAddress(conds []revshare.Condition, addr revshare.Address) bool {
	for _, c := range conds {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
