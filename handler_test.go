// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

//go:build unit

package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	lambdacfn "github.com/aws/aws-lambda-go/cfn"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/cfn"
	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/responder"
)

type fakeGitHub struct {
	*httptest.Server
	mu    sync.Mutex
	calls []string
	body  map[string]any
}

func newFakeGitHub(t *testing.T, status int, body string) *fakeGitHub {
	t.Helper()
	fake := &fakeGitHub{}
	fake.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fake.mu.Lock()
		defer fake.mu.Unlock()
		fake.calls = append(fake.calls, r.Method+" "+r.URL.Path)
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			assert.NoError(t, json.Unmarshal(data, &fake.body))
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(fake.Close)
	return fake
}

type fakeCallback struct {
	*httptest.Server
	mu        sync.Mutex
	responses []cfn.Response
}

func newFakeCallback(t *testing.T) *fakeCallback {
	t.Helper()
	fake := &fakeCallback{}
	fake.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fake.mu.Lock()
		defer fake.mu.Unlock()
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, []string{""}, r.Header.Values("Content-Type"))

		var response cfn.Response
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&response))
		fake.responses = append(fake.responses, response)
	}))
	t.Cleanup(fake.Close)
	return fake
}

func newEvent(requestType cfn.RequestType, physicalResourceID, apiURL, responseURL string) *cfn.Request {
	return &cfn.Request{
		Event: lambdacfn.Event{
			RequestType:        requestType,
			ResponseURL:        responseURL,
			StackID:            "arn:aws:cloudformation:us-east-1:123456789012:stack/hooks/" + uuid.New().String(),
			RequestID:          uuid.New().String(),
			ResourceType:       "Custom::GitHubWebhook",
			LogicalResourceID:  "DeployHook",
			PhysicalResourceID: physicalResourceID,
		},
		ResourceProperties: json.RawMessage(`{
			"ApiUrl": "` + apiURL + `",
			"Repository": "org/repo",
			"ApiToken": "abcd",
			"Params": {"name": "web", "events": ["deployment"], "active": true, "config": {"url": "http://example.com/hook"}}
		}`),
	}
}

func TestHandle_CreateSuccess(t *testing.T) {
	github := newFakeGitHub(t, http.StatusOK, `{"id": 1}`)
	callback := newFakeCallback(t)
	handler := NewHandler(responder.New(callback.Client(), "stream"))

	event := newEvent(cfn.RequestTypeCreate, "", github.URL, callback.URL)
	require.NoError(t, handler.Handle(context.Background(), event))

	assert.Equal(t, []string{"POST /repos/org/repo/hooks"}, github.calls)
	require.Len(t, callback.responses, 1)
	response := callback.responses[0]
	assert.Equal(t, cfn.StatusSuccess, response.Status)
	assert.Equal(t, "1", response.PhysicalResourceId)
	assert.Equal(t, event.StackID, response.StackId)
	assert.Equal(t, event.RequestID, response.RequestId)
	assert.Equal(t, event.LogicalResourceID, response.LogicalResourceId)
	assert.Empty(t, response.Reason)
}

func TestHandle_CreateForbidden(t *testing.T) {
	github := newFakeGitHub(t, http.StatusForbidden, `{"id": 1}`)
	callback := newFakeCallback(t)
	handler := NewHandler(responder.New(callback.Client(), "stream"))

	require.NoError(t, handler.Handle(context.Background(), newEvent(cfn.RequestTypeCreate, "", github.URL, callback.URL)))

	require.Len(t, callback.responses, 1)
	response := callback.responses[0]
	assert.Equal(t, cfn.StatusFailed, response.Status)
	assert.Equal(t, "unexpected response: 403", response.Reason)
	assert.Equal(t, "1", response.PhysicalResourceId)
}

func TestHandle_Update(t *testing.T) {
	github := newFakeGitHub(t, http.StatusOK, `{"id": 1}`)
	callback := newFakeCallback(t)
	handler := NewHandler(responder.New(callback.Client(), "stream"))

	require.NoError(t, handler.Handle(context.Background(), newEvent(cfn.RequestTypeUpdate, "1", github.URL, callback.URL)))

	assert.Equal(t, []string{"PATCH /repos/org/repo/hooks/1"}, github.calls)
	assert.Equal(t, true, github.body["active"])
	require.Len(t, callback.responses, 1)
	assert.Equal(t, cfn.StatusSuccess, callback.responses[0].Status)
	assert.Equal(t, "1", callback.responses[0].PhysicalResourceId)
}

func TestHandle_DeleteNotFound(t *testing.T) {
	github := newFakeGitHub(t, http.StatusNotFound, `{"message": "Not Found"}`)
	callback := newFakeCallback(t)
	handler := NewHandler(responder.New(callback.Client(), "stream"))

	require.NoError(t, handler.Handle(context.Background(), newEvent(cfn.RequestTypeDelete, "1", github.URL, callback.URL)))

	assert.Equal(t, []string{"DELETE /repos/org/repo/hooks/1"}, github.calls)
	require.Len(t, callback.responses, 1)
	assert.Equal(t, cfn.StatusSuccess, callback.responses[0].Status)
	assert.Equal(t, "1", callback.responses[0].PhysicalResourceId)
}

func TestHandle_UnknownResourceType(t *testing.T) {
	github := newFakeGitHub(t, http.StatusOK, `{"id": 1}`)
	callback := newFakeCallback(t)
	handler := NewHandler(responder.New(callback.Client(), "stream"))

	event := newEvent(cfn.RequestTypeCreate, "", github.URL, callback.URL)
	event.ResourceType = "Custom::GitHub::Webhook"

	require.NoError(t, handler.Handle(context.Background(), event))

	assert.Empty(t, github.calls)
	assert.Empty(t, callback.responses)
}

func TestHandle_UnknownRequestTypePanics(t *testing.T) {
	github := newFakeGitHub(t, http.StatusOK, `{"id": 1}`)
	callback := newFakeCallback(t)
	handler := NewHandler(responder.New(callback.Client(), "stream"))

	event := newEvent(cfn.RequestType("Read"), "1", github.URL, callback.URL)

	assert.PanicsWithValue(t, "registry: no provisioner for Read Custom::GitHubWebhook", func() {
		_ = handler.Handle(context.Background(), event)
	})
	assert.Empty(t, github.calls)
	assert.Empty(t, callback.responses)
}

func TestHandle_DeliveryFailureStillCompletes(t *testing.T) {
	github := newFakeGitHub(t, http.StatusOK, `{"id": 1}`)
	callback := newFakeCallback(t)
	callbackURL := callback.URL
	client := callback.Client()
	callback.Close()
	handler := NewHandler(responder.New(client, "stream"))

	err := handler.Handle(context.Background(), newEvent(cfn.RequestTypeCreate, "", github.URL, callbackURL))

	assert.NoError(t, err)
	assert.Equal(t, []string{"POST /repos/org/repo/hooks"}, github.calls)
}
