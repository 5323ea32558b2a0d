// Package results provides Result, a value that is either an OK carrying data or a FAIL carrying an error,
// along with adapters that turn fallible functions into functions returning a Result.
//
// A Result is immutable once constructed and safe to share between goroutines.
package results

// Result holds either data of type D (the OK variant) or an error of type E (the FAIL variant), never both.
// The zero value is an OK holding the zero value of D.
type Result[D any, E any] struct {
	failed bool
	data   D
	err    E
}

// Of is a Result whose error type is the builtin error interface.
type Of[D any] = Result[D, error]

// Ok constructs the OK variant wrapping data.
func Ok[D any, E any](data D) Result[D, E] {
	return Result[D, E]{data: data}
}

// Fail constructs the FAIL variant wrapping err. A nil error still yields a FAIL.
func Fail[D any, E any](err E) Result[D, E] {
	return Result[D, E]{failed: true, err: err}
}

// New converts a Go (value, error) pair into a Result: OK when err is nil, FAIL otherwise.
func New[D any](data D, err error) Of[D] {
	if err != nil {
		return Failure[D](err)
	}
	return Success(data)
}

// Success is Ok for results carrying an error.
func Success[D any](data D) Of[D] {
	return Ok[D, error](data)
}

// Failure is Fail for results carrying an error.
func Failure[D any](err error) Of[D] {
	return Fail[D](err)
}

// IsOk reports whether r is the OK variant.
func (r Result[D, E]) IsOk() bool {
	return !r.failed
}

// IsFail reports whether r is the FAIL variant.
func (r Result[D, E]) IsFail() bool {
	return r.failed
}

// Unwrap returns the data of an OK result.  Calling Unwrap on a FAIL result panics with the wrapped error value.
func (r Result[D, E]) Unwrap() D {
	if r.failed {
		panic(r.err)
	}
	return r.data
}

// Get returns the data and the error of r.  Only the half matching the variant is meaningful; the other is a zero value.
func (r Result[D, E]) Get() (D, E) {
	return r.data, r.err
}

// Data returns the wrapped data and true when r is OK.
func (r Result[D, E]) Data() (D, bool) {
	if r.failed {
		return *new(D), false
	}
	return r.data, true
}

// Err returns the wrapped error and true when r is FAIL.
func (r Result[D, E]) Err() (E, bool) {
	if !r.failed {
		return *new(E), false
	}
	return r.err, true
}

// OnError recovers from a FAIL result by returning handler(err). The handler is not called for an OK result.
func (r Result[D, E]) OnError(handler func(E) D) D {
	if r.failed {
		return handler(r.err)
	}
	return r.data
}

// UnwrapOr returns the data of an OK result or fallback for a FAIL result.
func (r Result[D, E]) UnwrapOr(fallback D) D {
	if r.failed {
		return fallback
	}
	return r.data
}
