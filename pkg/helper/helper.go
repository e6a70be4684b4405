// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package helper

import (
	"errors"

	"github.com/aws/smithy-go"
	"github.com/google/go-github/v68/github"
)

// HandleGitHubError checks if the provided error is one of the error types produced by
// github.CheckResponse and returns the message GitHub sent along with any field-level
// errors, and a boolean indicating if it was identified.
func HandleGitHubError(err error) (string, []github.Error, bool) {
	if err == nil {
		return "", nil, false
	}

	var twoFactor *github.TwoFactorAuthError
	var rateLimit *github.RateLimitError
	var abuseRateLimit *github.AbuseRateLimitError
	var errorResponse *github.ErrorResponse

	switch {
	case errors.As(err, &twoFactor):
		return twoFactor.Message, twoFactor.Errors, true
	case errors.As(err, &rateLimit):
		return rateLimit.Message, nil, true
	case errors.As(err, &abuseRateLimit):
		return abuseRateLimit.Message, nil, true
	case errors.As(err, &errorResponse):
		return errorResponse.Message, errorResponse.Errors, true
	default:
		return "", nil, false
	}
}

// HandleAWSError checks if the provided error is an AWS API error and returns its
// error code and message, and a boolean indicating if it was identified.
// E.g. a missing secret yields ResourceNotFoundException.
func HandleAWSError(err error) (string, string, bool) {
	if err == nil {
		return "", "", false
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		// Not an AWS API error, e.g. a transport failure
		return "", "", false
	}

	return apiErr.ErrorCode(), apiErr.ErrorMessage(), true
}
