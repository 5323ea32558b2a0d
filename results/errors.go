package results

import (
	"fmt"

	"github.com/abevier/fallible/internal/recovery"
	"github.com/zeebo/errs"
)

// Error is the class of errors created by this package.
var Error = errs.Class("results")

var (
	// ErrNotFunction is the error carried by the FAIL result of an adapter whose target is a nil function.
	ErrNotFunction = Error.New("target is not a function")
	// ErrNilFuture is the error carried when an asynchronous target or handler returns a nil future.
	ErrNilFuture = Error.New("target returned a nil future")
)

// PanicError is the error carried by the FAIL result of an adapter whose target panicked with a non-error value.
type PanicError = recovery.PanicError

// ValueError carries a non-error FAIL payload through an API that requires an error, such as a failed future.
type ValueError[E any] struct {
	Value E
}

func (e *ValueError[E]) Error() string {
	return fmt.Sprintf("results: failed with %v", e.Value)
}

func asError[E any](v E) error {
	if err, ok := any(v).(error); ok {
		return err
	}
	return &ValueError[E]{Value: v}
}
