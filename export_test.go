package driveaccess

// This file is part of the package tests (package driveaccess) and provides
// helpers that allow tests in the external package to access internal
// package constructs.

// AccessorBundle exposes the normalized wire bundle for tests.
type AccessorBundle = accessorBundle

// NormalizeAccessors exposes accessor normalization for tests.
func NormalizeAccessors(accessors ...Accessor) AccessorBundle {
	return normalizeAccessors(accessors)
}

// NormalizeError exposes the error-normalization contract for tests.
func NormalizeError(err error) error {
	return normalizeError(err)
}

// ParseAPIError exposes non-2xx body parsing for tests.
func ParseAPIError(statusCode int, body []byte) *APIError {
	return parseAPIError(statusCode, body)
}

// UnwrapData exposes the response unwrap-or-passthrough rule for tests.
var UnwrapData = unwrapData

// NewAPIErrorForTest constructs a wrapped api error using the
// package-internal constructor.
func NewAPIErrorForTest(msg string, cause error) error {
	return newAPIError(msg, cause)
}

// NewTransportErrorForTest constructs a wrapped transport error using the
// package-internal constructor.
func NewTransportErrorForTest(msg string, cause error) error {
	return newTransportError(msg, cause)
}
