package errors

import (
	stdlib "errors"
	"fmt"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCause(t *testing.T) {
	std := stdlib.New("disk failure")

	cases := map[string]struct {
		err  error
		root error
	}{
		"root error":           {err: ErrNotFound, root: ErrNotFound},
		"wrapped root error":   {err: Wrapf(ErrNotFound, "contract %d", 1), root: ErrNotFound},
		"wrapped stdlib error": {err: Wrap(Wrap(std, "read"), "load contract"), root: std},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.root, errors.Cause(tc.err))
		})
	}
}

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		kind *Error
		err  error
		want bool
	}{
		"same root error":               {ErrNotFound, ErrNotFound, true},
		"other root error":              {ErrNotFound, ErrModel, false},
		"wrapped root error":            {ErrNotFound, Wrap(ErrNotFound, "no contract"), true},
		"wrapped other root error":      {ErrNotFound, Wrap(ErrOverflow, "too big"), false},
		"stdlib error":                  {ErrNotFound, fmt.Errorf("not found"), false},
		"nil kind and nil error":        {nil, nil, true},
		"nil kind and typed nil error":  {nil, (*customError)(nil), true},
		"nil kind and an error":         {nil, ErrNotFound, false},
		"kind and nil error":            {ErrNotFound, nil, false},
		"group containing the kind":     {ErrNotFound, Append(ErrState, Wrap(ErrNotFound, "test")), true},
		"group not containing the kind": {ErrNotFound, Append(ErrState, ErrAmount), false},
		"field error wrapping the kind": {ErrAmount, Field("Amount", ErrAmount, "negative"), true},
		"new is a wrap of the kind":     {ErrState, ErrState.Newf("height %d", 3), true},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.kind.Is(tc.err))
		})
	}
}

type customError struct{}

func (customError) Error() string {
	return "custom error"
}

func TestWrapEmpty(t *testing.T) {
	if err := Wrap(nil, "wrapping <nil>"); err != nil {
		t.Fatal(err)
	}
}

func TestRegisterTwicePanics(t *testing.T) {
	assert.Panics(t, func() { Register(ErrNotFound.ABCICode(), "again") })
}

func TestRecover(t *testing.T) {
	run := func() (err error) {
		defer Recover(&err)
		panic("boom")
	}
	err := run()
	require.Error(t, err)
	assert.True(t, ErrPanic.Is(err))
	assert.Contains(t, err.Error(), "boom")
}

func TestAppend(t *testing.T) {
	assert.Nil(t, Append(nil, nil))
	assert.Equal(t, ErrEmpty, Append(nil, ErrEmpty, nil))

	err := Append(ErrEmpty, Append(ErrState, ErrAmount))
	require.Error(t, err)
	assert.Len(t, err.(multiErr), 3)
	assert.Equal(t, ErrEmpty.ABCICode(), abciCode(err))
}

func TestFieldErrors(t *testing.T) {
	err := Append(
		Field("Payment.Amount", ErrAmount, "must be positive"),
		Field("Payment.Receiver", ErrEmpty, ""),
		Field("Payment.Receiver", nil, "ignored"),
	)

	got := FieldErrors(err, "Payment.Amount")
	require.Len(t, got, 1)
	assert.True(t, ErrAmount.Is(got[0]))
	assert.Equal(t, `field "Payment.Amount": must be positive: invalid amount`, got[0].Error())

	assert.Len(t, FieldErrors(err, "Payment.Receiver"), 1)
	assert.Empty(t, FieldErrors(err, "Payment.Sender"))
	assert.Empty(t, FieldErrors(nil, "Payment.Sender"))
}

func TestABCInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"plain registered error": {
			err:      ErrNotFound,
			wantLog:  "not found",
			wantCode: ErrNotFound.code,
		},
		"wrapped registered error": {
			err:      Wrap(Wrap(ErrNotFound, "foo"), "bar"),
			wantLog:  "bar: foo: not found",
			wantCode: ErrNotFound.code,
		},
		"nil is empty message": {
			err:      nil,
			wantLog:  "",
			wantCode: 0,
		},
		"nil registered error is not an error": {
			err:      (*Error)(nil),
			wantLog:  "",
			wantCode: 0,
		},
		"stdlib is generic message": {
			err:      io.EOF,
			wantLog:  "internal error",
			wantCode: 1,
		},
		"stdlib returns error message in debug mode": {
			err:      io.EOF,
			debug:    true,
			wantLog:  "EOF",
			wantCode: 1,
		},
		"wrapped stdlib is only a generic message": {
			err:      Wrap(io.EOF, "cannot read file"),
			wantLog:  "internal error",
			wantCode: 1,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want %d code, got %d", tc.wantCode, code)
			}
			if log != tc.wantLog {
				t.Errorf("want %q log, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "internal error", Redact(io.EOF, false).Error())
	assert.Equal(t, "internal error", Redact(Wrap(ErrPanic, "secret"), false).Error())
	assert.True(t, ErrNotFound.Is(Redact(ErrNotFound, false)))
	assert.Equal(t, io.EOF, Redact(io.EOF, true))
}

func TestStackTrace(t *testing.T) {
	err := Wrap(fmt.Errorf("foo"), "standard")
	assert.Equal(t, "standard: foo", err.Error())

	// %v appends the location of the wrap.
	assert.Contains(t, fmt.Sprintf("%v", err), "errors_test.go")
	// %+v shows the full stack.
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestStackTrace")
}
