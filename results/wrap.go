package results

import (
	"context"

	"github.com/abevier/fallible/futures"
	"github.com/abevier/fallible/internal/recovery"
)

// Wrap adapts f into a function that never panics and returns a Result instead of a (value, error) pair.
// Each call of the adapted function runs f exactly once.  A returned error or a panic raised by f becomes a FAIL
// result; a panic with a non-error value is reported as a *PanicError.  If f is nil the adapted function returns a
// FAIL carrying ErrNotFunction.
//
// Methods keep their receiver when passed as method values, e.g. Wrap(client.Fetch).
func Wrap[D any](f func() (D, error), opts ...Option) func() Of[D] {
	cfg := newConfig(opts)

	return func() Of[D] {
		if f == nil {
			return Failure[D](cfg.misused(ErrNotFunction))
		}
		return capture(cfg, f)
	}
}

// Wrap1 is Wrap for functions taking one argument.
func Wrap1[A any, D any](f func(A) (D, error), opts ...Option) func(A) Of[D] {
	cfg := newConfig(opts)

	return func(a A) Of[D] {
		if f == nil {
			return Failure[D](cfg.misused(ErrNotFunction))
		}
		return capture(cfg, func() (D, error) { return f(a) })
	}
}

// Wrap2 is Wrap for functions taking two arguments.
func Wrap2[A any, B any, D any](f func(A, B) (D, error), opts ...Option) func(A, B) Of[D] {
	cfg := newConfig(opts)

	return func(a A, b B) Of[D] {
		if f == nil {
			return Failure[D](cfg.misused(ErrNotFunction))
		}
		return capture(cfg, func() (D, error) { return f(a, b) })
	}
}

// WrapAsync adapts f, a function starting an asynchronous computation, into one whose future always completes with a
// Result and never fails.  A panic while f starts the computation, a nil future, and a failure of the future (including
// the context finishing before it completes) all become a FAIL result.  The adapted function does not block.
//
// While the target future is pending one goroutine waits on it until it completes or ctx is done; a target that
// never completes under a context that is never done keeps that goroutine alive.  Callers stop waiting by canceling
// ctx, or the target's owner may Cancel its future, which yields a FAIL carrying futures.ErrCanceled.
func WrapAsync[D any](f func(context.Context) *futures.Future[D], opts ...Option) func(context.Context) *futures.Future[Of[D]] {
	cfg := newConfig(opts)

	return func(ctx context.Context) *futures.Future[Of[D]] {
		if f == nil {
			return futures.Completed(Failure[D](cfg.misused(ErrNotFunction)))
		}
		return await(ctx, cfg, func() *futures.Future[D] { return f(ctx) })
	}
}

// WrapAsync1 is WrapAsync for functions taking one argument.
func WrapAsync1[A any, D any](f func(context.Context, A) *futures.Future[D], opts ...Option) func(context.Context, A) *futures.Future[Of[D]] {
	cfg := newConfig(opts)

	return func(ctx context.Context, a A) *futures.Future[Of[D]] {
		if f == nil {
			return futures.Completed(Failure[D](cfg.misused(ErrNotFunction)))
		}
		return await(ctx, cfg, func() *futures.Future[D] { return f(ctx, a) })
	}
}

// Go runs f in its own goroutine and returns a future for its outcome.  It turns a blocking fallible function into a
// target for WrapAsync.
func Go[D any](ctx context.Context, f func(context.Context) (D, error)) *futures.Future[D] {
	return futures.FromFunc(func() (D, error) {
		return f(ctx)
	})
}

func capture[D any](cfg *config, f func() (D, error)) (r Of[D]) {
	if cfg.capturePanics {
		defer func() {
			if err := recovery.ToError(recover()); err != nil {
				cfg.panicked(err)
				r = Failure[D](err)
			}
		}()
	}

	return New(f())
}

func await[D any](ctx context.Context, cfg *config, start func() *futures.Future[D]) *futures.Future[Of[D]] {
	pending := capture(cfg, func() (*futures.Future[D], error) {
		return start(), nil
	})

	f, ok := pending.Data()
	if !ok {
		return futures.Completed(Failure[D](pending.err))
	}
	if f == nil {
		return futures.Completed(Failure[D](cfg.misused(ErrNilFuture)))
	}

	select {
	case <-f.Done():
		return futures.Completed(New(f.Get(ctx)))
	default:
	}

	out := futures.New[Of[D]]()
	go func() {
		out.Complete(New(f.Get(ctx)))
	}()
	return out
}
