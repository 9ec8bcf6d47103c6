package errors

// Package errors provides sentinel errors for generator output operations.
// They are wrapped in classified errors so callers can match on the cause.

import "errors"

var (
	// ErrOutputNotDirectory indicates the configured output path exists but is not a directory.
	ErrOutputNotDirectory = errors.New("output path is not a directory")

	// ErrPathEscapesOutput indicates a page file name would resolve outside the output directory.
	ErrPathEscapesOutput = errors.New("output path escapes output directory")

	// ErrWriteFailed indicates writing or renaming a generated file failed.
	ErrWriteFailed = errors.New("generated file write failed")

	// ErrNoPages indicates page selection left nothing to render.
	ErrNoPages = errors.New("no pages selected")
)
