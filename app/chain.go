package app

import (
	"reflect"

	"github.com/iov-one/revshare"
)

// Decorators is an ordered stack of decorators waiting for the handler they
// wrap. The first decorator runs first.
//
//	app.ChainDecorators(
//		utils.NewLogging(),
//		utils.NewRecovery(),
//		sigs.NewDecorator(),
//	).WithHandler(router)
type Decorators struct {
	chain []revshare.Decorator
}

// ChainDecorators starts a stack. Nil decorators are skipped.
func ChainDecorators(chain ...revshare.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain returns a new stack with chain appended. Nil decorators, including
// typed nil pointers, are skipped.
func (d Decorators) Chain(chain ...revshare.Decorator) Decorators {
	res := make([]revshare.Decorator, len(d.chain), len(d.chain)+len(chain))
	copy(res, d.chain)
	for _, dec := range chain {
		if !isNilDecorator(dec) {
			res = append(res, dec)
		}
	}
	return Decorators{chain: res}
}

func isNilDecorator(d revshare.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler returns a handler that runs the whole stack before h.
func (d Decorators) WithHandler(h revshare.Handler) revshare.Handler {
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{decorator: d.chain[i], next: h}
	}
	return h
}

// step binds a decorator to the handler it calls next.
type step struct {
	decorator revshare.Decorator
	next      revshare.Handler
}

var _ revshare.Handler = step{}

func (s step) Check(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx) (*revshare.CheckResult, error) {
	return s.decorator.Check(ctx, db, tx, s.next)
}

func (s step) Deliver(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx) (*revshare.DeliverResult, error) {
	return s.decorator.Deliver(ctx, db, tx, s.next)
}
