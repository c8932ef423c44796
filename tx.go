package revshare

import (
	"reflect"

	"github.com/iov-one/revshare/errors"
)

// Msg is the request of a transaction. Authentication data lives in the
// Tx carrying it.
type Msg interface {
	// Path selects the handler, for example "revenue/distribute". Only
	// [0-9A-Za-z_\-/] characters are allowed.
	Path() string

	// Validate runs the checks that do not need the state.
	Validate() error
}

// Marshaller is implemented by values, often non pointers, that can be
// serialized.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent values can be stored and loaded back.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx is what a client sends to the chain: a message plus whatever the
// decorators need, such as signatures.
type Tx interface {
	GetMsg() (Msg, error)
}

// GetPath is used for logging. It never fails.
func GetPath(tx Tx) string {
	if msg, err := tx.GetMsg(); err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// TxDecoder parses the raw bytes received from tendermint.
type TxDecoder func(txBytes []byte) (Tx, error)

// LoadMsg copies the message of tx into destination, a pointer to the exact
// message type, and validates it.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get transaction message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrMsg, "no message")
	}

	src := reflect.ValueOf(msg)
	if src.Kind() == reflect.Ptr {
		if src.IsNil() {
			return errors.Wrap(errors.ErrMsg, "nil message")
		}
		src = src.Elem()
	}
	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr || dest.IsNil() {
		return errors.Wrap(errors.ErrHuman, "destination must be a non nil pointer")
	}
	dest = dest.Elem()
	if src.Type() != dest.Type() {
		return errors.Wrapf(errors.ErrType, "want %s message, got %s", dest.Type(), src.Type())
	}
	dest.Set(src)

	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	return nil
}
