// Package xerrors provides small error-handling helpers used throughout
// the engine, extending the standard library errors and log/slog packages.
package xerrors

import (
	"log/slog"
	"runtime"
	"strconv"
)

// Log logs the given error at error level if it is non-nil and returns it
// unchanged. Intended usage:
//
//	return xerrors.Log(doThing())
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 logs err at error level if it is non-nil and returns v unchanged
// in either case. Intended usage:
//
//	v := xerrors.Log1(doThing())
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Must panics if err is non-nil. Used for invariant violations that
// indicate buffer corruption rather than ordinary user error.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// CallerInfo reports the file and line of the caller of the function
// that called CallerInfo.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name() + " " + file + ":" + strconv.Itoa(line)
}
