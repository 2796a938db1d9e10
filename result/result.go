/*
Package result bridges Either and Go's (value, error) convention.
A result is an Either[error, T]: Left holds the error, Right the value
of a successful computation.

    r := result.Of(strconv.Atoi(s))
    r = either.Map(double, r)         // skipped if r holds an error
    n, err := result.Get(r)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

import (
	"errors"
	"fmt"

	"github.com/npillmayer/fp/either"
)

// Ok wraps a successful value.
func Ok[T any](x T) either.Either[error, T] {
	return either.Right[error](x)
}

// Err wraps an error. A nil error is replaced by ErrNilError.
func Err[T any](err error) either.Either[error, T] {
	if err == nil {
		err = ErrNilError
	}
	return either.Left[T](err)
}

// Of converts Go's (value, error) convention to a result. A non-nil err makes
// a Left, otherwise x is wrapped in a Right.
func Of[T any](x T, err error) either.Either[error, T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

// Get converts r back to Go's (value, error) convention.
func Get[T any](r either.Either[error, T]) (T, error) {
	if err, isErr := r.GetLeft(); isErr {
		var zero T
		return zero, err
	}
	x, _ := r.Get()
	return x, nil
}

// TryCatch calls f and returns its result. A panic within f is recovered and
// returned as a *PanicError.
func TryCatch[T any](f func() (T, error)) either.Either[error, T] {
	var err error
	x := either.TryCatch(func() T {
		var v T
		v, err = f()
		return v
	}, func(r any) error {
		return &PanicError{Value: r}
	})
	if x.IsRight() && err != nil {
		return Err[T](err)
	}
	return x
}

// ErrNilError is used in place of a nil error handed to Err.
var ErrNilError = errors.New("result: error expected, but got nil")

// PanicError wraps a value recovered from a panic.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

// Unwrap returns the recovered value if it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
