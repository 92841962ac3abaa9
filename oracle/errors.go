package oracle

import "errors"

var (
	// ErrWordNotFound indicates the oracle does not know the submitted word.
	ErrWordNotFound = errors.New("word not found in oracle dictionary")

	// ErrUnavailable indicates the oracle could not be reached.
	ErrUnavailable = errors.New("oracle unavailable")
)
