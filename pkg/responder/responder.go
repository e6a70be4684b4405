// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package responder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/cfn"
)

// Responder delivers provisioner results to CloudFormation's presigned response URL.
type Responder struct {
	client    *http.Client
	logStream string
}

// New creates a Responder. logStream is quoted in the reason of failures that carry no
// message of their own.
func New(client *http.Client, logStream string) *Responder {
	if client == nil {
		client = http.DefaultClient
	}
	return &Responder{client: client, logStream: logStream}
}

// Deliver PUTs the response envelope for result to request.ResponseURL. It makes a
// single attempt; the error is only for the caller to log.
func (r *Responder) Deliver(ctx context.Context, request *cfn.Request, result *cfn.Result) error {
	response := cfn.NewResponse(request, result, r.logStream)

	body, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	slog.Info("Responder: sending response",
		"status", response.Status,
		"reason", response.Reason,
		"physicalResourceId", response.PhysicalResourceId,
		"body", string(body))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, request.ResponseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build response request: %w", err)
	}
	// The presigned URL is signed for an empty content type; anything else is rejected.
	httpReq.Header["Content-Type"] = []string{""}
	httpReq.ContentLength = int64(len(body))

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	slog.Info("Responder: response delivered", "statusCode", resp.StatusCode, "statusMessage", resp.Status)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("response rejected with status %d", resp.StatusCode)
	}
	return nil
}
