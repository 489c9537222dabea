package service

import "errors"

var (
	// ErrInvalidInput marks missing or malformed generation parameters. Not retryable without correction.
	ErrInvalidInput = errors.New("invalid input")
	// ErrGenerationFailed marks a capability error, timeout or non-conformant output. Retryable.
	ErrGenerationFailed = errors.New("quiz generation failed")
	// ErrGradingInputInvalid marks an empty question list passed to grading.
	ErrGradingInputInvalid = errors.New("grading input invalid")
	// ErrGeneratorUnavailable is returned by a generator that has no configured client.
	ErrGeneratorUnavailable = errors.New("quiz generator unavailable")
)
