package results

import (
	"github.com/samber/lo"
	"go.uber.org/multierr"
)

// Map applies f to the data of an OK result.  A FAIL result is passed through with its error.
func Map[D any, E any, R any](r Result[D, E], f func(D) R) Result[R, E] {
	if r.failed {
		return Fail[R](r.err)
	}
	return Ok[R, E](f(r.data))
}

// FlatMap chains a computation that itself returns a Result.
func FlatMap[D any, E any, R any](r Result[D, E], f func(D) Result[R, E]) Result[R, E] {
	if r.failed {
		return Fail[R](r.err)
	}
	return f(r.data)
}

// MapErr applies f to the error of a FAIL result.  An OK result is passed through.
func MapErr[D any, E any, F any](r Result[D, E], f func(E) F) Result[D, F] {
	if r.failed {
		return Fail[D](f(r.err))
	}
	return Ok[D, F](r.data)
}

// Match calls exactly one of onOk or onFail depending on the variant of r and returns its value.
func Match[D any, E any, R any](r Result[D, E], onOk func(D) R, onFail func(E) R) R {
	if r.failed {
		return onFail(r.err)
	}
	return onOk(r.data)
}

// Values returns the data of every OK result, in order.
func Values[D any, E any](rs []Result[D, E]) []D {
	return lo.FilterMap(rs, func(r Result[D, E], _ int) (D, bool) {
		return r.Data()
	})
}

// Errors combines the errors of every FAIL result into a single error.  It returns nil when no result failed.
func Errors[D any](rs []Of[D]) error {
	return multierr.Combine(lo.FilterMap(rs, func(r Of[D], _ int) (error, bool) {
		return r.Err()
	})...)
}
