// Package result provides a two-variant container for the outcome of an
// operation that can fail. A Result is either a Success holding a value or a
// Failure holding an error; callers unwrap it explicitly with Fold, Map,
// Recover, or the projection accessors instead of relying on panics or
// sentinel returns for control flow.
package result

import (
	"context"
	"time"
)

// Result holds either a success value of type T or a failure error, never
// both and never neither. The variant is fixed at construction; every
// transforming operation returns a new Result and leaves the receiver
// untouched.
//
// The zero value is a Failure with a nil payload, equivalent to
// Failure[T](nil).
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Success returns a Result in the success variant holding value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Failure returns a Result in the failure variant holding err. The payload
// is opaque to this package; it is commonly a fault.Fault but any error
// works.
func Failure[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsSuccess reports whether the Result holds a success value.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether the Result holds a failure error.
func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// Value returns the success value and true, or the zero value of T and
// false when the Result is a Failure.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.ok
}

// Err returns the failure payload, or nil when the Result is a Success.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return r.err
}

// OnSuccess calls fn with the success value when the Result is a Success.
// It is a side-effect hook for logging and diagnostics; the Result is not
// altered.
func (r Result[T]) OnSuccess(fn func(T)) {
	if r.ok {
		fn(r.value)
	}
}

// OnFailure calls fn with the failure payload when the Result is a Failure.
func (r Result[T]) OnFailure(fn func(error)) {
	if !r.ok {
		fn(r.err)
	}
}

// Recover turns a Failure into a Success by applying fn to the failure
// payload. A Success is returned unchanged.
func (r Result[T]) Recover(fn func(error) T) Result[T] {
	if r.ok {
		return r
	}
	return Success(fn(r.err))
}

// Delay suspends the calling goroutine for at least d and then returns the
// receiver unchanged. Cancelling ctx cuts the wait short; the receiver is
// still returned as-is, so cancellation only discards the remaining wait.
// Delay never fails and must not be used as a timeout.
func (r Result[T]) Delay(ctx context.Context, d time.Duration) Result[T] {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
	return r
}

// Fold collapses a Result into a single value by applying exactly one of
// the two handlers: onSuccess to the success value or onFailure to the
// failure payload. Both handlers are required; Fold is the canonical way to
// unwrap a Result. The two variants are exhaustive by construction, so no
// third case can arise.
func Fold[T, R any](r Result[T], onSuccess func(T) R, onFailure func(error) R) R {
	if r.ok {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// Map transforms a success value with fn and wraps the result in a new
// Success. A Failure is carried through with its payload untouched. fn must
// be total; an operation that can itself fail should return a Result and be
// folded instead.
func Map[T, R any](r Result[T], fn func(T) R) Result[R] {
	if r.ok {
		return Success(fn(r.value))
	}
	return Failure[R](r.err)
}
