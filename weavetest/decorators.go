package weavetest

import "github.com/iov-one/revshare"

// Decorator is a revshare.Decorator mock. A non nil CheckErr or DeliverErr
// is returned without calling the next handler.
type Decorator struct {
	calls

	CheckErr   error
	DeliverErr error
}

var _ revshare.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx, next revshare.Checker) (*revshare.CheckResult, error) {
	d.check++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx, next revshare.Deliverer) (*revshare.DeliverResult, error) {
	d.deliver++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

// Decorate returns a handler passing every call through d to h.
func Decorate(h revshare.Handler, d revshare.Decorator) revshare.Handler {
	return decorated{handler: h, decorator: d}
}

type decorated struct {
	handler   revshare.Handler
	decorator revshare.Decorator
}

func (d decorated) Check(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx) (*revshare.CheckResult, error) {
	return d.decorator.Check(ctx, db, tx, d.handler)
}

func (d decorated) Deliver(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx) (*revshare.DeliverResult, error) {
	return d.decorator.Deliver(ctx, db, tx, d.handler)
}
