// Package errors provides the classified error primitives used across rexdocs.
//
// A ClassifiedError carries a category (config, source, render, filesystem, ...),
// a severity and a small bag of structured context. Errors are built through a
// fluent builder:
//
//	err := errors.WrapError(cause, errors.CategoryFileSystem, "write page").
//		WithContext("path", outPath).
//		Build()
//
// The CLI adapter turns a classified error into a user-facing message and an exit code.
package errors
