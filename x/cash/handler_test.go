package cash

import (
	"context"
	"testing"

	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/app"
	"github.com/iov-one/revshare/errors"
	"github.com/iov-one/revshare/store"
	"github.com/iov-one/revshare/weavetest"
	"github.com/iov-one/revshare/weavetest/assert"
)

func TestSendHandler(t *testing.T) {
	var (
		perm  = weavetest.NewCondition()
		perm2 = weavetest.NewCondition()
		dest  = weavetest.NewCondition().Address()
	)

	cases := map[string]struct {
		signer         revshare.Condition
		msg            revshare.Msg
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		wantSource     uint64
		wantDest       uint64
	}{
		"successful send": {
			signer:     perm,
			msg:        &SendMsg{Source: perm.Address(), Destination: dest, Amount: 300, Memo: "lunch"},
			wantSource: 700,
			wantDest:   300,
		},
		"signature of the source is required": {
			signer:         perm2,
			msg:            &SendMsg{Source: perm.Address(), Destination: dest, Amount: 300},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
			wantSource:     1000,
		},
		"not enough funds": {
			signer:         perm,
			msg:            &SendMsg{Source: perm.Address(), Destination: dest, Amount: 1001},
			wantDeliverErr: errors.ErrInsufficientAmount,
			wantSource:     1000,
		},
		"zero amount message is invalid": {
			signer:         perm,
			msg:            &SendMsg{Source: perm.Address(), Destination: dest},
			wantCheckErr:   errors.ErrAmount,
			wantDeliverErr: errors.ErrAmount,
			wantSource:     1000,
		},
		"unknown message type": {
			signer:         perm,
			msg:            &weavetest.Msg{RoutePath: "cash/send"},
			wantCheckErr:   errors.ErrType,
			wantDeliverErr: errors.ErrType,
			wantSource:     1000,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController()
			assert.Nil(t, ctrl.CoinMint(db, perm.Address(), 1000))

			auth := &weavetest.Auth{Signer: tc.signer}
			r := app.NewRouter()
			RegisterRoutes(r, auth, ctrl)
			tx := &weavetest.Tx{Msg: tc.msg}

			cache := db.CacheWrap()
			if _, err := r.Check(context.Background(), cache, tx); !tc.wantCheckErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			cache.Discard()

			if _, err := r.Deliver(context.Background(), db, tx); !tc.wantDeliverErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}

			got, err := ctrl.Balance(db, perm.Address())
			assert.Nil(t, err)
			assert.Equal(t, tc.wantSource, got)
			got, err = ctrl.Balance(db, dest)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantDest, got)
		})
	}
}

func TestSendMsgValidate(t *testing.T) {
	addr := weavetest.NewCondition().Address()

	long := make([]byte, maxMemoSize+1)
	for i := range long {
		long[i] = 'a'
	}

	cases := map[string]struct {
		msg       SendMsg
		wantField string
		wantErr   *errors.Error
	}{
		"valid": {
			msg: SendMsg{Source: addr, Destination: addr, Amount: 1},
		},
		"missing source": {
			msg:       SendMsg{Destination: addr, Amount: 1},
			wantField: "Source",
			wantErr:   errors.ErrEmpty,
		},
		"bad destination": {
			msg:       SendMsg{Source: addr, Destination: revshare.Address{1}, Amount: 1},
			wantField: "Destination",
			wantErr:   errors.ErrInput,
		},
		"memo too long": {
			msg:       SendMsg{Source: addr, Destination: addr, Amount: 1, Memo: string(long)},
			wantField: "Memo",
			wantErr:   errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
				return
			}
			assert.FieldError(t, err, tc.wantField, tc.wantErr)
		})
	}
}

func TestWalletQuery(t *testing.T) {
	db := store.MemStore()
	addr := weavetest.NewCondition().Address()
	assert.Nil(t, NewController().CoinMint(db, addr, 77))

	qr := revshare.NewQueryRouter()
	RegisterQuery(qr)
	h := qr.Handler("/wallets")
	if h == nil {
		t.Fatal("wallets query handler not registered")
	}
	res, err := h.Query(db, revshare.KeyQueryMod, addr)
	assert.Nil(t, err)
	if len(res) != 1 {
		t.Fatalf("want one result, got %d", len(res))
	}
	var w Wallet
	assert.Nil(t, w.Unmarshal(res[0].Value))
	assert.Equal(t, uint64(77), w.Amount)
}
