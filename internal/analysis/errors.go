package analysis

import "errors"

var (
	// ErrEmptyInput is returned when an aggregation is asked to summarize
	// zero observations. Callers guard with a has-data check upstream.
	ErrEmptyInput = errors.New("no observations to aggregate")

	// ErrEmptyPeriod is returned by Analyze when the selected period
	// contains no observations. It is surfaced as a structured error
	// result, never as a half-built report.
	ErrEmptyPeriod = errors.New("no data available for the selected period")

	// ErrInsufficientHistory is returned when a computation needs a
	// minimum window of observations, e.g. trend direction.
	ErrInsufficientHistory = errors.New("not enough observations for the requested window")
)

// ErrorResult is the error-shaped report body emitted instead of a Report
// when analysis cannot run. Serialized it carries a single "error" key.
type ErrorResult struct {
	Error string `json:"error"`
}

// NewErrorResult wraps an analysis error in the report error shape.
func NewErrorResult(err error) ErrorResult {
	return ErrorResult{Error: err.Error()}
}
