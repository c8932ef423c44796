package revenue

import (
	"math"
	"testing"

	"github.com/iov-one/revshare/errors"
	"github.com/iov-one/revshare/weavetest"
	"github.com/iov-one/revshare/weavetest/assert"
)

func TestSplit(t *testing.T) {
	var (
		creator  = weavetest.NewCondition().Address()
		platform = weavetest.NewCondition().Address()
		sender   = weavetest.NewCondition().Address()
		state    = &ContractState{CreatorAddress: creator, PlatformAddress: platform}
	)

	cases := map[string]struct {
		payment       Payment
		wantErr       *errors.Error
		wantTotal     uint64
		wantCreator   uint64
		wantPlatform  uint64
		wantRemainder uint64
	}{
		"even split": {
			payment:      Payment{Sender: sender, Receiver: ContractAddress, Amount: 1000},
			wantTotal:    1000,
			wantCreator:  700,
			wantPlatform: 300,
		},
		"truncated shares leave a residual": {
			payment:       Payment{Sender: sender, Receiver: ContractAddress, Amount: 99},
			wantTotal:     99,
			wantCreator:   69,
			wantPlatform:  29,
			wantRemainder: 1,
		},
		"smallest payment is kept by the contract": {
			payment:       Payment{Sender: sender, Receiver: ContractAddress, Amount: 1},
			wantTotal:     1,
			wantRemainder: 1,
		},
		"two units residual": {
			payment:       Payment{Sender: sender, Receiver: ContractAddress, Amount: 3},
			wantTotal:     3,
			wantCreator:   2,
			wantPlatform:  0,
			wantRemainder: 1,
		},
		"zero amount": {
			payment: Payment{Sender: sender, Receiver: ContractAddress, Amount: 0},
			wantErr: ErrNonPositiveAmount,
		},
		"payment sent elsewhere": {
			payment: Payment{Sender: sender, Receiver: platform, Amount: 1000},
			wantErr: ErrWrongReceiver,
		},
		"receiver is checked before the amount": {
			payment: Payment{Sender: sender, Receiver: platform},
			wantErr: ErrWrongReceiver,
		},
		"multiplication overflow": {
			payment: Payment{Sender: sender, Receiver: ContractAddress, Amount: math.MaxUint64},
			wantErr: errors.ErrOverflow,
		},
		"largest amount that fits": {
			payment:      Payment{Sender: sender, Receiver: ContractAddress, Amount: math.MaxUint64 / 70},
			wantTotal:    263524915338707880,
			wantCreator:  184467440737095516,
			wantPlatform: 79057474601612364,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			total, transfers, err := Split(state, ContractAddress, tc.payment)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				assert.Equal(t, 0, len(transfers))
				return
			}
			assert.Equal(t, tc.wantTotal, total)
			assert.Equal(t, 2, len(transfers))
			assert.Equal(t, creator, transfers[0].Recipient)
			assert.Equal(t, tc.wantCreator, transfers[0].Amount)
			assert.Equal(t, platform, transfers[1].Recipient)
			assert.Equal(t, tc.wantPlatform, transfers[1].Amount)
			assert.Equal(t, tc.wantRemainder, total-transfers[0].Amount-transfers[1].Amount)
		})
	}
}

func TestSplitConservation(t *testing.T) {
	state := &ContractState{
		CreatorAddress:  weavetest.NewCondition().Address(),
		PlatformAddress: weavetest.NewCondition().Address(),
	}
	sender := weavetest.NewCondition().Address()
	for amount := uint64(1); amount <= 1000; amount++ {
		p := Payment{Sender: sender, Receiver: ContractAddress, Amount: amount}
		total, transfers, err := Split(state, ContractAddress, p)
		if err != nil {
			t.Fatalf("amount %d: %s", amount, err)
		}
		if total != amount {
			t.Fatalf("amount %d: total %d", amount, total)
		}
		paid := transfers[0].Amount + transfers[1].Amount
		if paid > amount || amount-paid > 1 {
			t.Fatalf("amount %d: paid %d", amount, paid)
		}

		// the same input always gives the same output
		_, again, _ := Split(state, ContractAddress, p)
		assert.Equal(t, transfers, again)
	}
}
