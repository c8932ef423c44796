package revshare

import (
	"github.com/iov-one/revshare/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
)

// DeliverResult is the outcome of a successfully delivered transaction.
// Failures are always reported as errors.
type DeliverResult struct {
	// Data is returned to the client, for example the transfers of a
	// distribution.
	Data []byte
	Log  string
	// Tags are indexed by tendermint to search transactions.
	Tags []common.KVPair
}

// ToABCI returns an empty response for a nil result.
func (d *DeliverResult) ToABCI() abci.ResponseDeliverTx {
	if d == nil {
		return abci.ResponseDeliverTx{}
	}
	return abci.ResponseDeliverTx{Data: d.Data, Log: d.Log, Tags: d.Tags}
}

// CheckResult is the outcome of a successfully checked transaction.
type CheckResult struct {
	Data []byte
	Log  string
}

// ToABCI returns an empty response for a nil result.
func (c *CheckResult) ToABCI() abci.ResponseCheckTx {
	if c == nil {
		return abci.ResponseCheckTx{}
	}
	return abci.ResponseCheckTx{Data: c.Data, Log: c.Log}
}

// DeliverOrError returns the error response when err is set, the result
// otherwise.
func DeliverOrError(result *DeliverResult, err error, debug bool) abci.ResponseDeliverTx {
	if err != nil {
		return DeliverTxError(err, debug)
	}
	return result.ToABCI()
}

// CheckOrError returns the error response when err is set, the result
// otherwise.
func CheckOrError(result *CheckResult, err error, debug bool) abci.ResponseCheckTx {
	if err != nil {
		return CheckTxError(err, debug)
	}
	return result.ToABCI()
}

// DeliverTxError reports err with its registered code. Internal errors are
// redacted unless debug is set.
func DeliverTxError(err error, debug bool) abci.ResponseDeliverTx {
	code, log := abciError("cannot deliver tx", err, debug)
	return abci.ResponseDeliverTx{Code: code, Log: log}
}

// CheckTxError reports err with its registered code. Internal errors are
// redacted unless debug is set.
func CheckTxError(err error, debug bool) abci.ResponseCheckTx {
	code, log := abciError("cannot check tx", err, debug)
	return abci.ResponseCheckTx{Code: code, Log: log}
}

func abciError(prefix string, err error, debug bool) (uint32, string) {
	code, log := errors.ABCIInfo(err, debug)
	if code == errors.SuccessABCICode {
		return code, log
	}
	return code, prefix + ": " + log
}
