package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrInvalidOption is returned when a caller supplied option or configuration is not usable
	ErrInvalidOption = goerr.New("invalid option")

	// ErrValidationFailed is returned when an input value does not satisfy its constraints
	ErrValidationFailed = goerr.New("validation failed")

	// ErrInvalidResponse is returned when output of git or a remote API can not be interpreted
	ErrInvalidResponse = goerr.New("invalid response")

	// ErrProcessFailed is returned when a subprocess exits with non-zero status or writes to stderr
	ErrProcessFailed = goerr.New("process failed")
)
