package utils

import (
	"time"

	"github.com/iov-one/revshare"
)

// Logging logs every transaction with its path and duration. Failures are
// logged as errors, delivered transactions as info and checked ones as
// debug.
type Logging struct{}

var _ revshare.Decorator = Logging{}

func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx, next revshare.Checker) (*revshare.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	var msg string
	if err == nil {
		msg = res.Log
	}
	logResult(ctx, tx, time.Since(start), msg, err, true)
	return res, err
}

func (Logging) Deliver(ctx revshare.Context, db revshare.KVStore, tx revshare.Tx, next revshare.Deliverer) (*revshare.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	var msg string
	if err == nil {
		msg = res.Log
	}
	logResult(ctx, tx, time.Since(start), msg, err, false)
	return res, err
}

// logResult always writes an entry, even with an empty msg.
func logResult(ctx revshare.Context, tx revshare.Tx, took time.Duration, msg string, err error, check bool) {
	logger := revshare.GetLogger(ctx).With(
		"duration", took/time.Microsecond,
		"path", revshare.GetPath(tx),
	)
	switch {
	case err != nil:
		logger.With("err", err).Error(msg)
	case check:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
