package analytics

import "errors"

// Data-shape errors. These are the only failure modes of the analytics
// functions: the callers decide how to report them, nothing here is
// retried or recovered.
var (
	// ErrEmptyIntersection means two series share no common date.
	ErrEmptyIntersection = errors.New("no common dates between series")

	// ErrEmptyResult means a ticker/date filter left no rows.
	ErrEmptyResult = errors.New("no rows match the requested filter")

	// ErrInsufficientData means a regression was requested on fewer than
	// two joined observations.
	ErrInsufficientData = errors.New("not enough observations for regression")

	// ErrDivideByZero means a base-100 normalization starts on a zero
	// close price.
	ErrDivideByZero = errors.New("first value of series is zero")

	// ErrZeroVariance means the independent variable of a regression has
	// no variance, so the slope is undefined.
	ErrZeroVariance = errors.New("independent variable has zero variance")

	// ErrWindowTooSmall means a rolling window below the minimum of 2 was
	// requested. A single-point window would yield a spurious correlation.
	ErrWindowTooSmall = errors.New("rolling window must be at least 2")
)
