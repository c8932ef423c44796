package app

import (
	"context"
	"testing"

	"github.com/iov-one/revshare/errors"
	"github.com/iov-one/revshare/weavetest"
	"github.com/iov-one/revshare/weavetest/assert"
)

func TestRouterSuccess(t *testing.T) {
	r := NewRouter()

	var (
		msg     = &weavetest.Msg{RoutePath: "test/1"}
		handler = &weavetest.Handler{}
	)

	r.Handle(msg.Path(), handler)

	if _, err := r.Check(context.TODO(), nil, &weavetest.Tx{Msg: msg}); err != nil {
		t.Fatalf("check failed: %s", err)
	}
	if _, err := r.Deliver(context.TODO(), nil, &weavetest.Tx{Msg: msg}); err != nil {
		t.Fatalf("deliver failed: %s", err)
	}
	assert.Equal(t, 2, handler.CallCount())
}

func TestRouterNoHandler(t *testing.T) {
	r := NewRouter()

	tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/1"}}

	if _, err := r.Check(context.TODO(), nil, tx); !errors.ErrNotFound.Is(err) {
		t.Fatalf("expected not found error, got %s", err)
	}
	if _, err := r.Deliver(context.TODO(), nil, tx); !errors.ErrNotFound.Is(err) {
		t.Fatalf("expected not found error, got %s", err)
	}
}

func TestRouterBrokenTx(t *testing.T) {
	r := NewRouter()

	cases := map[string]struct {
		tx      *weavetest.Tx
		wantErr *errors.Error
	}{
		"message cannot be loaded": {
			tx:      &weavetest.Tx{Err: errors.ErrInput},
			wantErr: errors.ErrInput,
		},
		"no message": {
			tx:      &weavetest.Tx{},
			wantErr: errors.ErrMsg,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if _, err := r.Check(context.TODO(), nil, tc.tx); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected check error: %s", err)
			}
			if _, err := r.Deliver(context.TODO(), nil, tc.tx); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected deliver error: %s", err)
			}
		})
	}
}

func TestRouterRegistration(t *testing.T) {
	r := NewRouter()
	h := &weavetest.Handler{}

	r.Handle("revenue/create", h)
	assert.Panics(t, func() { r.Handle("revenue/create", h) })
	assert.Panics(t, func() { r.Handle("l:7", h) })
	assert.Panics(t, func() { r.Handle("", h) })
}
