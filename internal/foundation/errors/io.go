package errors

// IOFailure builds the single fatal error kind for every file system failure.
// op names the failed step ("mkdir", "remove", "create", "open", "read",
// "write", "close", "copy"); path is the file or directory involved.
func IOFailure(op, path string, cause error) *ClassifiedError {
	return WrapError(cause, CategoryFileSystem, "io failure: "+op).
		Fatal().
		WithContext("operation", op).
		WithContext("path", path).
		Build()
}

// IsIOFailure reports whether err, or anything it wraps, was built by IOFailure.
func IsIOFailure(err error) bool {
	return HasCategory(err, CategoryFileSystem)
}
