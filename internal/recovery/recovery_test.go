package recovery

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToError(t *testing.T) {
	req := require.New(t)

	req.NoError(ToError(nil))

	errTest := errors.New("test err")
	req.Equal(errTest, ToError(errTest))

	err := ToError("boom")
	var pe *PanicError
	req.ErrorAs(err, &pe)
	req.Equal("boom", pe.Value)
	req.NotEmpty(pe.Stack)
	req.EqualError(err, "panic: boom")
}
