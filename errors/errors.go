package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Error is a registered root error. Every error returned by the application
// should wrap one of them, so that its code can be reported to the client.
type Error struct {
	code uint32
	desc string
}

// registry holds every root error by code.
var registry = map[uint32]*Error{}

// Register declares a new root error. Codes are unique and registering one
// twice panics, so call it only from package level variable declarations.
func Register(code uint32, description string) *Error {
	if prev, ok := registry[code]; ok {
		panic(fmt.Sprintf("error with code %d is already registered: %q", code, prev.desc))
	}
	e := &Error{code: code, desc: description}
	registry[code] = e
	return e
}

func (e Error) Error() string {
	return e.desc
}

// ABCICode returns the registered code.
func (e Error) ABCICode() uint32 {
	return e.code
}

// New is a shortcut for Wrap(e, description).
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Newf is New with formatting.
func (e *Error) Newf(format string, args ...interface{}) error {
	return Wrapf(e, format, args...)
}

// Is returns true if err is e or wraps it. A group created with Append
// matches when any of its members does. A nil *Error matches only nil
// errors, including typed nil pointers.
func (e *Error) Is(err error) bool {
	if e == nil {
		return isNilErr(err)
	}
	for err != nil {
		if err == e {
			return true
		}
		if group, ok := err.(unpacker); ok {
			for _, member := range group.Unpack() {
				if e.Is(member) {
					return true
				}
			}
		}
		c, ok := err.(causer)
		if !ok {
			return false
		}
		err = c.Cause()
	}
	return false
}

func isNilErr(err error) bool {
	if err == nil {
		return true
	}
	switch v := reflect.ValueOf(err); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

// Wrap adds a description to err. The innermost wrap also records a stack
// trace. Wrapping nil returns nil.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &wrappedError{parent: err, msg: description}
}

// Wrapf is Wrap with formatting.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrappedError struct {
	msg    string
	parent error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.parent.Error()
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Format prints only the message for %s. %v adds the [file:line] of the
// innermost wrap and %+v the whole stack trace.
func (e *wrappedError) Format(s fmt.State, verb rune) {
	st := stackTrace(e.parent)
	switch {
	case verb == 'v' && s.Flag('+') && st != nil:
		fmt.Fprintf(s, "%s\n%+v", e.Error(), st)
	case verb == 'v' && len(st) > 0:
		fmt.Fprint(s, e.Error())
		writeSimpleFrame(s, st[0])
	default:
		fmt.Fprint(s, e.Error())
	}
}

// Recover turns a panic into an ErrPanic assigned to err. It must be called
// with defer.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

type causer interface {
	Cause() error
}

type unpacker interface {
	Unpack() []error
}
