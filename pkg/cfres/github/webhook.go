// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/cfn"
	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/cfres/prov"
	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/cfres/registry"
	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/config"
	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/ghapi"
	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/props"
)

// Webhook manages a webhook on a GitHub repository. The hook id is the physical resource id.
type Webhook struct {
	cfg        *config.Config
	httpClient *http.Client
	secrets    secretsClientInterface
}

type webhookProperties struct {
	Repository string         `json:"Repository"`
	ApiToken   string         `json:"ApiToken"`
	Params     map[string]any `json:"Params"`
}

var _ prov.Provisioner = &Webhook{}

func init() {
	registry.Register(registry.KindGitHubWebhook,
		[]cfn.RequestType{
			cfn.RequestTypeCreate,
			cfn.RequestTypeUpdate,
			cfn.RequestTypeDelete},
		func(cfg *config.Config) prov.Provisioner {
			return &Webhook{cfg: cfg}
		})
}

func hooksPath(repository string) string {
	return fmt.Sprintf("repos/%s/hooks", repository)
}

func hookPath(repository, id string) string {
	return fmt.Sprintf("repos/%s/hooks/%s", repository, url.PathEscape(id))
}

// placeholderID stands in for the hook id when a Create failed before GitHub assigned one.
// CloudFormation rejects responses without a physical resource id, and the rollback
// Delete against it resolves to a 404, which counts as success.
func placeholderID(request *cfn.Request) string {
	return "unknown-" + request.RequestID
}

func (w *Webhook) Create(ctx context.Context, request *cfn.Request) *cfn.Result {
	properties, client, err := w.prepare(ctx, request)
	if err != nil {
		slog.Error("GitHubWebhook: Create failed to prepare client", "error", err)
		return cfn.Failure(placeholderID(request), err)
	}

	return w.createWithClient(ctx, client, properties, request)
}

func (w *Webhook) createWithClient(ctx context.Context, client *ghapi.Client, properties *webhookProperties, request *cfn.Request) *cfn.Result {
	resp, err := client.Send(ctx, http.MethodPost, hooksPath(properties.Repository), NormalizeParams(properties.Params))

	id := resp.String("id")
	if id == "" {
		id = placeholderID(request)
	}

	if err != nil {
		slog.Error("GitHubWebhook: Create failed", "repository", properties.Repository, "error", err)
		// Any rejection with field-level errors surfaces the first one, not only "Validation Failed"
		if apiErr, ok := ghapi.AsError(err); ok {
			return cfn.Failure(id, errors.New(apiErr.Detail()))
		}
		return cfn.Failure(id, err)
	}

	if resp.String("id") == "" {
		slog.Error("GitHubWebhook: Create response carried no hook id", "repository", properties.Repository, "statusCode", resp.StatusCode)
		return cfn.Failure(id, fmt.Errorf("GitHub returned no hook id for %s", properties.Repository))
	}

	slog.Info("GitHubWebhook: created hook", "repository", properties.Repository, "id", id)
	return cfn.Success(id)
}

func (w *Webhook) Update(ctx context.Context, request *cfn.Request) *cfn.Result {
	id := request.PhysicalResourceID

	properties, client, err := w.prepare(ctx, request)
	if err != nil {
		slog.Error("GitHubWebhook: Update failed to prepare client", "error", err)
		return cfn.Failure(id, err)
	}

	return w.updateWithClient(ctx, client, properties, id)
}

func (w *Webhook) updateWithClient(ctx context.Context, client *ghapi.Client, properties *webhookProperties, id string) *cfn.Result {
	if _, err := client.Send(ctx, http.MethodPatch, hookPath(properties.Repository, id), NormalizeParams(properties.Params)); err != nil {
		slog.Error("GitHubWebhook: Update failed", "repository", properties.Repository, "id", id, "error", err)
		return cfn.Failure(id, err)
	}

	slog.Info("GitHubWebhook: updated hook", "repository", properties.Repository, "id", id)
	return cfn.Success(id)
}

func (w *Webhook) Delete(ctx context.Context, request *cfn.Request) *cfn.Result {
	id := request.PhysicalResourceID

	properties, client, err := w.prepare(ctx, request)
	if err != nil {
		slog.Error("GitHubWebhook: Delete failed to prepare client", "error", err)
		return cfn.Failure(id, err)
	}

	return w.deleteWithClient(ctx, client, properties, id)
}

func (w *Webhook) deleteWithClient(ctx context.Context, client *ghapi.Client, properties *webhookProperties, id string) *cfn.Result {
	resp, err := client.Send(ctx, http.MethodDelete, hookPath(properties.Repository, id), nil)

	// The hook is already gone, e.g. an earlier Delete went through but its response was lost
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		slog.Info("GitHubWebhook: hook already absent", "repository", properties.Repository, "id", id)
		return cfn.Success(id)
	}

	if err != nil {
		slog.Error("GitHubWebhook: Delete failed", "repository", properties.Repository, "id", id, "error", err)
		return cfn.Failure(id, err)
	}

	slog.Info("GitHubWebhook: deleted hook", "repository", properties.Repository, "id", id)
	return cfn.Success(id)
}

// prepare decodes the resource properties and builds a GitHub client for their token.
// Required properties are not checked here; GitHub rejects whatever is missing.
func (w *Webhook) prepare(ctx context.Context, request *cfn.Request) (*webhookProperties, *ghapi.Client, error) {
	properties := &webhookProperties{}
	if err := props.Decode(request.ResourceProperties, properties); err != nil {
		return nil, nil, fmt.Errorf("invalid resource properties: %w", err)
	}

	token, err := w.resolveToken(ctx, properties.ApiToken)
	if err != nil {
		return nil, nil, err
	}

	client, err := ghapi.NewClient(w.cfg, w.httpClient, token)
	if err != nil {
		return nil, nil, err
	}

	return properties, client, nil
}
