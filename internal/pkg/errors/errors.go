package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDecodeFailed covers any structural or validation failure while
	// decoding a legacy order file. Deliberately opaque: the upload
	// contract is all-or-nothing with no per-line diagnostics.
	ErrDecodeFailed = errors.New("decode failed")
)
