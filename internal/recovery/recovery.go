// Package recovery turns recovered panics into errors.
package recovery

import (
	"fmt"
	"runtime/debug"
)

// PanicError is the error reported for a panic whose value was not itself an error.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// ToError converts a value returned by recover into an error.
// Error values are returned unchanged so errors.Is and errors.As keep working against them.
// A nil value yields nil.
func ToError(v any) error {
	switch t := v.(type) {
	case nil:
		return nil
	case error:
		return t
	default:
		return &PanicError{Value: v, Stack: debug.Stack()}
	}
}
