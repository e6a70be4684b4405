// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package main

import (
	"context"
	"log/slog"

	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/cfn"
	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/cfres"
	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/cfres/registry"
	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/config"
	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/responder"
)

// Handler answers CloudFormation custom resource requests for every registered resource kind.
type Handler struct {
	responder *responder.Responder
}

func NewHandler(responder *responder.Responder) *Handler {
	return &Handler{responder: responder}
}

// Handle runs one lifecycle request to completion. It always returns nil: failures are
// reported to CloudFormation through the response URL, and returning is what tells the
// Lambda runtime the invocation is done.
func (h *Handler) Handle(ctx context.Context, request *cfn.Request) error {
	slog.Info("Handler: request received", "request", request)

	kind := registry.KindOf(request.ResourceType)
	if kind == registry.KindUnknown {
		// Left unanswered; CloudFormation times the request out on its own.
		slog.Warn("Handler: no resource handler", "resourceType", request.ResourceType)
		return nil
	}

	result := h.dispatch(ctx, kind, request)

	if err := h.responder.Deliver(ctx, request, result); err != nil {
		slog.Error("Handler: failed to deliver response", "error", err, "requestId", request.RequestID, "logicalResourceId", request.LogicalResourceID)
	}
	return nil
}

func (h *Handler) dispatch(ctx context.Context, kind registry.Kind, request *cfn.Request) *cfn.Result {
	provisioner := cfres.GetProvisionerForOperation(kind, request.RequestType, config.FromProperties(request.ResourceProperties))

	// registry.Get panics on any verb without a provisioner, so only the three lifecycle verbs get here
	switch request.RequestType {
	case cfn.RequestTypeCreate:
		return provisioner.Create(ctx, request)
	case cfn.RequestTypeUpdate:
		return provisioner.Update(ctx, request)
	}
	return provisioner.Delete(ctx, request)
}
