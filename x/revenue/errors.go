package revenue

import (
	"github.com/iov-one/revshare/errors"
)

var (
	// ErrNotCreated is returned when the contract state is accessed
	// before the contract was created.
	ErrNotCreated = errors.Register(200, "revenue not created")

	// ErrAlreadyCreated is returned on every create call after the first
	// successful one.
	ErrAlreadyCreated = errors.Register(201, "revenue already created")

	// ErrWrongReceiver is returned when a payment was not sent to the
	// contract account.
	ErrWrongReceiver = errors.Register(202, "payment receiver is not the contract")

	// ErrNonPositiveAmount is returned when a payment does not carry any
	// value.
	ErrNonPositiveAmount = errors.Register(203, "payment amount must be positive")
)
