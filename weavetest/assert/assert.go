// Package assert contains the assertions used all over the test suite that
// testify does not provide in the same form, mostly around registered
// errors. All of them stop the test on failure.
package assert

import (
	"reflect"
	"testing"

	"github.com/iov-one/revshare/errors"
)

// Tester is the part of testing.TB the assertions need.
type Tester interface {
	Helper()
	Fatal(...interface{})
	Fatalf(string, ...interface{})
}

// Nil fails unless value is nil or a typed nil.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if value == nil {
		return
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		if v.IsNil() {
			return
		}
	}
	// %+v prints the stack trace of an error
	t.Fatalf("want a nil value, got %+v", value)
}

// Equal fails unless want and got are deeply equal. A nil slice is not
// equal to an empty one.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if reflect.DeepEqual(want, got) {
		return
	}
	t.Fatalf("values not equal \nwant %T %v\n got %T %v", want, want, got, got)
}

// Panics fails unless fn panics.
func Panics(t Tester, fn func()) {
	t.Helper()
	panicked := func() (p bool) {
		defer func() { p = recover() != nil }()
		fn()
		return false
	}()
	if !panicked {
		t.Fatal("panic expected")
	}
}

// FieldError checks the errors err holds for fieldName. With a nil want
// there must be none, otherwise there must be exactly one and of want kind.
func FieldError(t testing.TB, err error, fieldName string, want *errors.Error) {
	t.Helper()
	found := errors.FieldErrors(err, fieldName)
	switch {
	case want == nil && len(found) == 0:
		return
	case len(found) == 1 && want.Is(found[0]):
		return
	case want != nil && len(found) == 0:
		t.Fatalf("no error found for %q field", fieldName)
		return
	case want != nil && len(found) == 1:
		t.Fatalf("unexpected error found: %q", found[0])
		return
	}
	for i, e := range found {
		t.Logf("\terror %d: %q", i+1, e)
	}
	t.Fatalf("want %d error(s) for %q field, got %d", btoi(want != nil), fieldName, len(found))
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

// IsErr fails unless got is want or, for a registered error, wraps it.
func IsErr(t testing.TB, want, got error) {
	t.Helper()
	if want == got {
		return
	}
	if kind, ok := want.(interface{ Is(error) bool }); ok && kind.Is(got) {
		return
	}
	t.Fatalf("want %q, got %+v", want, got)
}
