package futures

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abevier/fallible/internal/recovery"
	"github.com/stretchr/testify/require"
)

var (
	errTest = errors.New("test error")
)

func TestFuture(t *testing.T) {
	require := require.New(t)

	f := New[int]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		f.Complete(1)
		f.Complete(2)
		f.Complete(3)
	}()

	v, err := f.Get(context.TODO())
	require.NoError(err)
	require.Equal(1, v)
}

func TestFromFunc(t *testing.T) {
	req := require.New(t)

	f := FromFunc(func() (int, error) {
		time.Sleep(10 * time.Millisecond)
		return 42, nil
	})

	r, err := f.Get(context.Background())
	req.NoError(err)
	req.Equal(42, r)

	f = FromFunc(func() (int, error) {
		time.Sleep(10 * time.Millisecond)
		return 0, errTest
	})

	_, err = f.Get(context.Background())
	req.ErrorIs(err, errTest)
}

func TestFromFuncPanic(t *testing.T) {
	req := require.New(t)

	f := FromFunc(func() (int, error) {
		panic(errTest)
	})

	_, err := f.Get(context.Background())
	req.ErrorIs(err, errTest)

	f = FromFunc(func() (int, error) {
		panic("boom")
	})

	_, err = f.Get(context.Background())
	var pe *recovery.PanicError
	req.ErrorAs(err, &pe)
	req.Equal("boom", pe.Value)
}

func TestCompletedAndFailed(t *testing.T) {
	req := require.New(t)

	f := Completed(7)
	select {
	case <-f.Done():
	default:
		req.Fail("completed future is not done")
	}

	v, err := f.Get(context.Background())
	req.NoError(err)
	req.Equal(7, v)

	f.Fail(errTest)
	v, err = f.Get(context.Background())
	req.NoError(err)
	req.Equal(7, v)

	f = Failed[int](errTest)
	_, err = f.Get(context.Background())
	req.ErrorIs(err, errTest)
}

func TestComplete(t *testing.T) {
	require := require.New(t)

	f := New[int]()

	for i := 0; i <= 1000; i++ {
		go func() {
			f.Complete(42)
		}()
	}

	v, err := f.Get(context.TODO())
	require.NoError(err)
	require.Equal(42, v)
}

func TestCancel(t *testing.T) {
	require := require.New(t)

	f := New[int]()

	for i := 0; i <= 1000; i++ {
		go func() {
			time.Sleep(10 * time.Millisecond)
			f.Cancel()
		}()
	}

	_, err := f.Get(context.TODO())
	require.ErrorIs(err, ErrCanceled)
}

func TestFail(t *testing.T) {
	require := require.New(t)

	f := New[int]()

	for i := 0; i <= 1000; i++ {
		go func() {
			time.Sleep(10 * time.Millisecond)
			f.Fail(errTest)
		}()
	}

	_, err := f.Get(context.TODO())
	require.ErrorIs(err, errTest)
}

func TestCancelOnGet(t *testing.T) {
	require := require.New(t)

	f := New[int]()

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := f.Get(ctx)
	require.ErrorIs(err, context.Canceled)
}

func TestDeadlineOnGet(t *testing.T) {
	require := require.New(t)

	f := New[int]()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Get(ctx)
	require.ErrorIs(err, context.DeadlineExceeded)
}

func TestGetCompletedWithDoneContext(t *testing.T) {
	req := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for i := 0; i < 1000; i++ {
		v, err := Completed(5).Get(ctx)
		req.NoError(err)
		req.Equal(5, v)

		_, err = Failed[int](errTest).Get(ctx)
		req.ErrorIs(err, errTest)
	}

	_, err := New[int]().Get(ctx)
	req.ErrorIs(err, context.Canceled)
}
