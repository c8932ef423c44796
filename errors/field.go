package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Field attaches the name of the invalid attribute to err, using Go
// naming such as Recipients.2.Weight. A nil err gives nil.
func Field(fieldName string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if len(args) != 0 {
		description = fmt.Sprintf(description, args...)
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &fieldError{field: fieldName, desc: description, parent: err}
}

// AppendField adds the field error, if any, to errs.
func AppendField(errs error, fieldName string, err error) error {
	return Append(errs, Field(fieldName, err, ""))
}

type fieldError struct {
	field  string
	desc   string
	parent error
}

func (e *fieldError) Error() string {
	msg := fmt.Sprintf("field %q: ", e.field)
	if e.desc != "" {
		msg += e.desc + ": "
	}
	return msg + e.parent.Error()
}

func (e *fieldError) Cause() error  { return e.parent }
func (e *fieldError) Field() string { return e.field }

// FieldErrors collects the errors reported for fieldName, looking through
// wrapped and appended errors.
func FieldErrors(err error, fieldName string) []error {
	var found []error
	for !isNilErr(err) {
		switch e := err.(type) {
		case *fieldError:
			if e.field == fieldName {
				return append(found, e)
			}
		case unpacker:
			for _, inner := range e.Unpack() {
				found = append(found, FieldErrors(inner, fieldName)...)
			}
			return found
		}
		c, ok := err.(causer)
		if !ok {
			return found
		}
		err = c.Cause()
	}
	return found
}
