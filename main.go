// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"

	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/logging"
	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/responder"
)

func main() {
	logging.Setup(os.Stdout, os.Getenv("AWS_LAMBDA_LOG_LEVEL"))

	handler := NewHandler(responder.New(http.DefaultClient, lambdacontext.LogStreamName))
	lambda.Start(handler.Handle)
}
