package models

import "errors"

var (
	// ErrNullInput is returned when no input stream was supplied.
	ErrNullInput = errors.New("configuration input is nil")

	// ErrIO is returned when reading the configuration stream fails.
	ErrIO = errors.New("configuration read failed")

	// ErrFormat is returned for an unparsable port or a malformed IPv4 address.
	ErrFormat = errors.New("invalid configuration format")

	// ErrConfig is returned when a required key is missing.
	ErrConfig = errors.New("missing configuration key")
)
