// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package arn

import (
	"strings"

	awsarn "github.com/aws/aws-sdk-go-v2/aws/arn"
)

// SecretsManager parses s if it is the ARN of a Secrets Manager secret.
func SecretsManager(s string) (awsarn.ARN, bool) {
	if !awsarn.IsARN(s) {
		return awsarn.ARN{}, false
	}

	parsed, err := awsarn.Parse(s)
	if err != nil || parsed.Service != "secretsmanager" {
		return awsarn.ARN{}, false
	}
	return parsed, true
}

// IdFrom returns the last segment of the ARN's resource, e.g. the secret name of
// arn:aws:secretsmanager:us-east-1:123456789012:secret:github-token-AbCdEf.
func IdFrom(parsed awsarn.ARN) string {
	frags := strings.Split(parsed.Resource, "/")
	if len(frags) > 1 {
		return frags[len(frags)-1]
	}

	frags = strings.Split(parsed.Resource, ":")
	return frags[len(frags)-1]
}
