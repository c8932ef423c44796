package revshared

import (
	"fmt"
	"testing"

	"github.com/iov-one/revshare"
	"github.com/iov-one/revshare/app"
	"github.com/iov-one/revshare/crypto"
	"github.com/iov-one/revshare/errors"
	"github.com/iov-one/revshare/x/cash"
	"github.com/iov-one/revshare/x/revenue"
	"github.com/iov-one/revshare/x/sigs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const chainID = "revshare-test"

type testChain struct {
	t      *testing.T
	app    *app.BaseApp
	height int64
}

func newTestChain(t *testing.T, genesis string) *testChain {
	t.Helper()
	a, err := Application(Name, Stack(), TxDecoder, "", log.NewNopLogger(), true)
	require.NoError(t, err)
	a.InitChain(abci.RequestInitChain{
		ChainId:       chainID,
		AppStateBytes: []byte(genesis),
	})
	return &testChain{t: t, app: a}
}

// deliver runs a single transaction in its own block and commits it.
func (c *testChain) deliver(msg revshare.Msg, signer *crypto.PrivateKey) abci.ResponseDeliverTx {
	c.t.Helper()
	raw := c.sign(msg, signer)

	c.height++
	c.app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: c.height, ChainID: chainID}})
	res := c.app.DeliverTx(raw)
	c.app.EndBlock(abci.RequestEndBlock{Height: c.height})
	c.app.Commit()
	return res
}

func (c *testChain) sign(msg revshare.Msg, signer *crypto.PrivateKey) []byte {
	c.t.Helper()
	store := app.NewABCIStore(c.app)
	seq, err := sigs.NextNonce(store, signer.PublicKey().Address())
	require.NoError(c.t, err)

	tx := &Tx{Msg: msg}
	sig, err := sigs.SignTx(signer, tx, chainID, seq)
	require.NoError(c.t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	raw, err := tx.Marshal()
	require.NoError(c.t, err)
	return raw
}

func (c *testChain) balance(addr revshare.Address) uint64 {
	c.t.Helper()
	var w cash.Wallet
	err := cash.NewBucket().One(app.NewABCIStore(c.app), addr, &w)
	if errors.ErrNotFound.Is(err) {
		return 0
	}
	require.NoError(c.t, err)
	return w.Amount
}

func TestRevenueDistribution(t *testing.T) {
	creator := crypto.GenPrivKeyEd25519()
	platform := crypto.GenPrivKeyEd25519()
	payer := crypto.GenPrivKeyEd25519()

	genesis := fmt.Sprintf(`{
		"cash": [{"address": %q, "amount": 5000}],
		"conf": {"revenue": {"owner": %q}}
	}`, payer.PublicKey().Address(), platform.PublicKey().Address())
	chain := newTestChain(t, genesis)
	assert.Equal(t, chainID, chain.app.GetChainID())

	payment := &revenue.DistributeMsg{
		Payment: revenue.Payment{
			Sender:   payer.PublicKey().Address(),
			Receiver: revenue.ContractAddress,
			Amount:   1001,
		},
	}

	// nothing can be distributed before the contract exists
	res := chain.deliver(payment, payer)
	assert.Equal(t, revenue.ErrNotCreated.ABCICode(), res.Code, res.Log)

	res = chain.deliver(&revenue.CreateMsg{}, creator)
	require.Equal(t, uint32(0), res.Code, res.Log)

	var state revenue.ContractState
	require.NoError(t, state.Unmarshal(res.Data))
	assert.Equal(t, creator.PublicKey().Address(), state.CreatorAddress)
	assert.Equal(t, platform.PublicKey().Address(), state.PlatformAddress)

	// the contract is created only once, whoever asks
	res = chain.deliver(&revenue.CreateMsg{}, payer)
	assert.Equal(t, revenue.ErrAlreadyCreated.ABCICode(), res.Code, res.Log)

	res = chain.deliver(payment, payer)
	require.Equal(t, uint32(0), res.Code, res.Log)

	var result revenue.DistributeResult
	require.NoError(t, result.Unmarshal(res.Data))
	assert.Equal(t, uint64(1001), result.Total)
	assert.Equal(t, []revenue.OutboundTransfer{
		{Recipient: creator.PublicKey().Address(), Amount: 700},
		{Recipient: platform.PublicKey().Address(), Amount: 300},
	}, result.Transfers)

	assert.Equal(t, uint64(3999), chain.balance(payer.PublicKey().Address()))
	assert.Equal(t, uint64(700), chain.balance(creator.PublicKey().Address()))
	assert.Equal(t, uint64(300), chain.balance(platform.PublicKey().Address()))
	// truncation residual stays with the contract
	assert.Equal(t, uint64(1), chain.balance(revenue.ContractAddress))

	// the creator cannot spend the payer funds
	stolen := &revenue.DistributeMsg{Payment: payment.Payment}
	res = chain.deliver(stolen, creator)
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), res.Code, res.Log)

	// a payment larger than the balance changes nothing
	tooMuch := &revenue.DistributeMsg{Payment: payment.Payment}
	tooMuch.Payment.Amount = 4000
	res = chain.deliver(tooMuch, payer)
	assert.Equal(t, errors.ErrInsufficientAmount.ABCICode(), res.Code, res.Log)
	assert.Equal(t, uint64(3999), chain.balance(payer.PublicKey().Address()))
	assert.Equal(t, uint64(700), chain.balance(creator.PublicKey().Address()))

	// beneficiaries are readable by anyone
	q := chain.app.Query(abci.RequestQuery{Path: "/revenue/addresses"})
	require.Equal(t, uint32(0), q.Code, q.Log)
	var values app.ResultSet
	require.NoError(t, values.Unmarshal(q.Value))
	require.Len(t, values.Results, 2)
	assert.Equal(t, []byte(creator.PublicKey().Address()), values.Results[0])
	assert.Equal(t, []byte(platform.PublicKey().Address()), values.Results[1])
}

func TestReplayedTransactionIsRejected(t *testing.T) {
	sender := crypto.GenPrivKeyEd25519()
	receiver := crypto.GenPrivKeyEd25519()

	genesis := fmt.Sprintf(`{"cash": [{"address": %q, "amount": 10}]}`, sender.PublicKey().Address())
	chain := newTestChain(t, genesis)

	send := &cash.SendMsg{
		Source:      sender.PublicKey().Address(),
		Destination: receiver.PublicKey().Address(),
		Amount:      4,
	}
	raw := chain.sign(send, sender)

	chain.app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1, ChainID: chainID}})
	res := chain.app.DeliverTx(raw)
	require.Equal(t, uint32(0), res.Code, res.Log)
	res = chain.app.DeliverTx(raw)
	assert.Equal(t, sigs.ErrInvalidSequence.ABCICode(), res.Code, res.Log)
	chain.app.Commit()

	assert.Equal(t, uint64(6), chain.balance(sender.PublicKey().Address()))
	assert.Equal(t, uint64(4), chain.balance(receiver.PublicKey().Address()))
}

func TestTxDecoder(t *testing.T) {
	signer := crypto.GenPrivKeyEd25519()
	tx := &Tx{Msg: &sigs.BumpSequenceMsg{Increment: 2}}
	sig, err := sigs.SignTx(signer, tx, chainID, 0)
	require.NoError(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}

	raw, err := tx.Marshal()
	require.NoError(t, err)

	decoded, err := TxDecoder(raw)
	require.NoError(t, err)
	msg, err := decoded.GetMsg()
	require.NoError(t, err)
	assert.Equal(t, tx.Msg, msg)

	// signatures are not part of the signed content
	b1, err := tx.GetSignBytes()
	require.NoError(t, err)
	b2, err := (&Tx{Msg: tx.Msg}).GetSignBytes()
	require.NoError(t, err)
	assert.Equal(t, b1, b2)

	_, err = TxDecoder([]byte("not a transaction"))
	assert.True(t, errors.ErrInput.Is(err))

	empty := &Tx{}
	_, err = empty.GetMsg()
	assert.True(t, errors.ErrMsg.Is(err))
}

func TestGenInitOptions(t *testing.T) {
	owner := crypto.GenPrivKeyEd25519().PublicKey().Address()
	raw, keys, err := GenInitOptions([]string{owner.String(), "42"})
	require.NoError(t, err)
	assert.Nil(t, keys)

	chain := newTestChain(t, string(raw))
	chain.app.Commit()
	assert.Equal(t, uint64(42), chain.balance(owner))

	raw, keys, err = GenInitOptions(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, keys)
	assert.NotEmpty(t, raw)
}
