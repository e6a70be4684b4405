// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package ghapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/go-github/v68/github"

	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/config"
	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/helper"
)

// Client sends requests to the GitHub REST API on behalf of a single token.
type Client struct {
	github     *github.Client
	httpClient *http.Client
	token      string
}

// Response is a buffered and decoded GitHub API response.
type Response struct {
	StatusCode int
	Body       map[string]any
}

// NewClient creates a client against cfg.APIURL. A nil httpClient uses http.DefaultClient.
func NewClient(cfg *config.Config, httpClient *http.Client, token string) (*Client, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	baseURL, err := url.Parse(cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub API URL %q: %w", cfg.APIURL, err)
	}

	gh := github.NewClient(httpClient)
	gh.BaseURL = baseURL
	gh.UserAgent = cfg.UserAgent

	return &Client{
		github:     gh,
		httpClient: httpClient,
		token:      token,
	}, nil
}

// Send issues method against path, relative to the API base URL, with body encoded as
// JSON when non-nil. Any status outside 2xx is returned as an *Error together with the
// decoded response. Transport failures are returned as plain errors with a nil response.
func (c *Client) Send(ctx context.Context, method, path string, body any) (*Response, error) {
	req, err := c.github.NewRequest(method, path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "token "+c.token)

	resp, err := c.httpClient.Do(req.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to execute %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response to %s %s: %w", method, path, err)
	}

	decoded, decodeErr := decode(data)
	if isSuccess(resp.StatusCode) {
		if decodeErr != nil {
			return nil, fmt.Errorf("failed to decode response to %s %s: %w", method, path, decodeErr)
		}
		return &Response{StatusCode: resp.StatusCode, Body: decoded}, nil
	}

	// Error bodies are not always JSON (proxies, outages); classify on the status alone then.
	if decoded == nil {
		decoded = map[string]any{}
	}
	return &Response{StatusCode: resp.StatusCode, Body: decoded}, classify(resp, data, decoded)
}

// String returns the body field key in its textual form, or "" when absent.
func (r *Response) String(key string) string {
	if r == nil {
		return ""
	}
	switch v := r.Body[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func isSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode <= 299
}

func decode(data []byte) (map[string]any, error) {
	body := map[string]any{}
	if len(bytes.TrimSpace(data)) == 0 {
		return body, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}

func classify(resp *http.Response, data []byte, body map[string]any) *Error {
	resp.Body = io.NopCloser(bytes.NewReader(data))
	cause := github.CheckResponse(resp)

	apiErr := &Error{StatusCode: resp.StatusCode, cause: cause}
	if message, details, ok := helper.HandleGitHubError(cause); ok {
		apiErr.Message = message
		apiErr.Errors = details
	}
	if apiErr.Message == "" {
		if message, ok := body["message"].(string); ok {
			apiErr.Message = message
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("unexpected response: %d", resp.StatusCode)
	}

	return apiErr
}
