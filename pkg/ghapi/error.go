// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package ghapi

import (
	"errors"

	"github.com/google/go-github/v68/github"
)

// Error is a non-2xx answer from the GitHub API.
type Error struct {
	StatusCode int
	Message    string
	// Errors holds the field-level errors of a validation failure, in the order GitHub sent them.
	Errors []github.Error

	cause error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Detail returns the most specific message available: the first field-level error
// when there is one that carries a message, the top-level message otherwise.
func (e *Error) Detail() string {
	if len(e.Errors) > 0 && e.Errors[0].Message != "" {
		return e.Errors[0].Message
	}
	return e.Message
}

// AsError unwraps err into an *Error, if it is one.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
