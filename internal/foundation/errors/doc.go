// Package errors provides the classified error type used across moduledoc.
//
// Every failure surfaced by the generator is a ClassifiedError carrying a
// category, a severity and structured context. File system failures are all
// reported through a single kind, built with IOFailure, and are always fatal:
// the run stops at the first one and files already written stay on disk.
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryModel, "module model invalid").
//		Fatal().
//		WithContext("path", modelPath).
//		Build()
package errors
