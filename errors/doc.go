/*
Package errors implements custom error interfaces for revshare.

The idea is to reuse as many errors from this package as possible and define
custom package errors only when absolutely necessary. Extensions register
their own root errors with Register(code, description) during the program
startup phase. Codes below 100 are reserved for this package, 100~109 for
orm, and each extension picks its own range above 200.

Use ErrXyz.New, ErrXyz.Newf or Wrap(ErrXyz, "...") at the point of creation
to attach a stacktrace. If you wrap multiple times, only the first wrap
records the stacktrace.

Once you have an error, you can use `fmt.Printf/Sprintf` to get more context
for the error

	%s is just the error message
	%+v is the full stack trace
	%v appends a compressed [filename:line] where the error was created
*/
package errors
