package weavetest

import "github.com/iov-one/revshare"

// Handler is a revshare.Handler mock returning the configured results.
//
// A non nil CheckErr or DeliverErr is returned instead of the result. When
// WriteKey is set, every call first writes WriteValue under it, so that
// rollbacks can be observed.
type Handler struct {
	calls

	CheckResult revshare.CheckResult
	CheckErr    error

	DeliverResult revshare.DeliverResult
	DeliverErr    error

	WriteKey   []byte
	WriteValue []byte
}

var _ revshare.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx) (*revshare.CheckResult, error) {
	h.check++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx) (*revshare.DeliverResult, error) {
	h.deliver++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) write(db revshare.KVStore) error {
	if h.WriteKey == nil {
		return nil
	}
	return db.Set(h.WriteKey, h.WriteValue)
}
