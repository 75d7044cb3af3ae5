package internal

import "github.com/pkg/errors"

// Threading error returns through the hull and propagation steps would
// clutter code that is otherwise straight math. Instead, internals panic
// with a typed error, and the public API recovers to convert it to an
// ordinary return.

// DegenerateGeometryError reports a hull computation whose input is empty,
// has fewer than three points, or is exactly collinear (zero area).
type DegenerateGeometryError struct {
	err error
}

func (e *DegenerateGeometryError) Error() string { return e.err.Error() }
func (e *DegenerateGeometryError) Unwrap() error { return e.err }

// NumericalFailureError reports a non-finite result out of the
// matrix-exponential primitive. The computation is deterministic, so
// retrying without changing the input is pointless.
type NumericalFailureError struct {
	err error
}

func (e *NumericalFailureError) Error() string { return e.err.Error() }
func (e *NumericalFailureError) Unwrap() error { return e.err }

// InvalidInputError reports a non-positive or non-finite step size, or
// non-finite input coordinates.
type InvalidInputError struct {
	err error
}

func (e *InvalidInputError) Error() string { return e.err.Error() }
func (e *InvalidInputError) Unwrap() error { return e.err }

// approxError marks panics raised by this package so the recover handler
// can tell them apart from genuine bugs, which keep propagating.
type approxError interface {
	error
	approxError()
}

func (e *DegenerateGeometryError) approxError() {}

func (e *NumericalFailureError) approxError() {}

func (e *InvalidInputError) approxError() {}

func degeneratef(format string, args ...interface{}) {
	panic(&DegenerateGeometryError{errors.Errorf(format, args...)})
}

func numericalf(format string, args ...interface{}) {
	panic(&NumericalFailureError{errors.Errorf(format, args...)})
}

func invalidf(format string, args ...interface{}) {
	panic(&InvalidInputError{errors.Errorf(format, args...)})
}

// HandleApproxPanicRecover converts a recovered panic back into an error if
// it was raised by this package, and re-panics otherwise.
func HandleApproxPanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(approxError); ok {
		return err
	}
	panic(r)
}
