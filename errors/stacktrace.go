package errors

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// stackTracer is implemented by pkg/errors instances that carry a stack.
type stackTracer interface {
	error
	StackTrace() errors.StackTrace
}

// stackTrace returns the first stack trace found in the error chain, or nil.
func stackTrace(err error) errors.StackTrace {
	for {
		if st, ok := err.(stackTracer); ok {
			return trimInternal(st.StackTrace())
		}
		c, ok := err.(causer)
		if !ok {
			return nil
		}
		err = c.Cause()
	}
}

// trimInternal cuts off the frames of this package and of the runtime, so
// that the first frame points to where the error was created.
func trimInternal(st errors.StackTrace) errors.StackTrace {
	for len(st) > 0 && isInternalFrame(st[0]) {
		st = st[1:]
	}
	for l := len(st) - 1; l > 0 && isRuntimeFrame(st[l]); l-- {
		st = st[:l]
	}
	return st
}

// isInternalFrame returns true for frames created by this package (tests
// excluded) or by the runtime when recovering a panic.
func isInternalFrame(f errors.Frame) bool {
	if isRuntimeFrame(f) {
		return true
	}
	file, _ := fileLine(f)
	if strings.HasSuffix(file, "_test.go") {
		return false
	}
	return strings.HasPrefix(funcName(f), pkgPrefix)
}

func isRuntimeFrame(f errors.Frame) bool {
	return strings.HasPrefix(funcName(f), "runtime.")
}

const pkgPrefix = "github.com/iov-one/revshare/errors."

func funcName(f errors.Frame) string {
	fn := runtime.FuncForPC(uintptr(f) - 1)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}

func fileLine(f errors.Frame) (string, int) {
	// this looks a bit like magic, but follows example here:
	// https://github.com/pkg/errors/blob/v0.8.1/stack.go#L14-L27
	// as this is where we get the Frames
	pc := uintptr(f) - 1
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown", 0
	}
	return fn.FileLine(pc)
}

func writeSimpleFrame(s io.Writer, f errors.Frame) {
	file, line := fileLine(f)
	// cut file at "github.com/"
	chunks := strings.SplitN(file, "github.com/", 2)
	if len(chunks) == 2 {
		file = chunks[1]
	}
	fmt.Fprintf(s, " [%s:%d]", file, line)
}
