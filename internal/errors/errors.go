package errors

import "errors"

// Input errors indicate the user supplied something the tool cannot act on.
var (
	// ErrInvalidKey indicates a key does not match the identifier grammar.
	ErrInvalidKey = errors.New("invalid variable name")

	// ErrInvalidPair indicates an argument is not a KEY=VALUE pair.
	ErrInvalidPair = errors.New("invalid key=value pair")

	// ErrKeyNotFound indicates the requested key is not present in the file.
	ErrKeyNotFound = errors.New("variable not found")
)

// Generator errors indicate failures producing a random value.
var (
	// ErrInvalidLength indicates a non-positive password length was requested.
	ErrInvalidLength = errors.New("length must be a positive integer")

	// ErrXKCDPassUnavailable indicates the external passphrase generator is not installed.
	ErrXKCDPassUnavailable = errors.New("xkcdpass command not found")
)

// Export errors indicate issues rendering the parsed variables.
var (
	// ErrUnsupportedFormat indicates an unknown export format was requested.
	ErrUnsupportedFormat = errors.New("unsupported export format")
)
