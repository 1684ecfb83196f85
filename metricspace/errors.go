package metricspace

import "fmt"

// FailureError wraps any error returned by a caller-supplied metric
// function. The core never wraps an error in FailureError more than once,
// and never recovers from one: a metric failure always propagates to the
// top-level caller.
type FailureError struct {
	// Err is the underlying error returned by the metric function.
	Err error
}

// Error implements the error interface.
func (e *FailureError) Error() string {
	return fmt.Sprintf("metricspace: metric function failed: %v", e.Err)
}

// Unwrap allows errors.Is/errors.As to reach the underlying metric error.
func (e *FailureError) Unwrap() error {
	return e.Err
}

// NewFailureError wraps err as a FailureError, or returns nil if err is nil.
func NewFailureError(err error) error {
	if err == nil {
		return nil
	}

	return &FailureError{Err: err}
}
