package results

import (
	"context"

	"github.com/abevier/fallible/futures"
)

// UnwrapAsync returns an already completed future: completed with the data of an OK result, or failed with the error
// of a FAIL result.  When E is not an error the future fails with a *ValueError[E] holding it.
func (r Result[D, E]) UnwrapAsync() *futures.Future[D] {
	if r.failed {
		return futures.Failed[D](asError(r.err))
	}
	return futures.Completed(r.data)
}

// OnErrorAsync recovers from a FAIL result with the future returned by handler(err).  For an OK result the handler is
// not called and a future completed with the data is returned.
func (r Result[D, E]) OnErrorAsync(handler func(E) *futures.Future[D]) *futures.Future[D] {
	if !r.failed {
		return futures.Completed(r.data)
	}

	f := handler(r.err)
	if f == nil {
		return futures.Failed[D](ErrNilFuture)
	}
	return f
}

// ResolveAll waits for all of the provided Futures to complete and returns a Result for each
// future at the index corresponding to the provided slice.
// If the provided context is canceled, the cancellation error will be returned as an error by this function.
func ResolveAll[T any](ctx context.Context, fs []*futures.Future[T]) ([]Of[T], error) {
	res := make([]Of[T], 0, len(fs))

	for _, f := range fs {
		r, err := f.Get(ctx)
		res = append(res, New(r, err))
		// check for error at the end of the loop to avoid the race of cancelling while Getting the last value in the list
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return res, nil
}
