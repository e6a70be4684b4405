// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package cfn

import (
	"encoding/json"
	"log/slog"

	lambdacfn "github.com/aws/aws-lambda-go/cfn"

	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/props"
)

// RequestType is the lifecycle verb CloudFormation asks a custom resource to perform.
type RequestType = lambdacfn.RequestType

const (
	RequestTypeCreate = lambdacfn.RequestCreate
	RequestTypeUpdate = lambdacfn.RequestUpdate
	RequestTypeDelete = lambdacfn.RequestDelete
)

// RequestTypes lists every verb a custom resource has to answer.
var RequestTypes = []RequestType{RequestTypeCreate, RequestTypeUpdate, RequestTypeDelete}

// Request is the custom resource event CloudFormation delivers to the Lambda function.
// PhysicalResourceID is empty on Create and set on Update and Delete.
//
// The properties shadow the event's maps and stay raw, so each provisioner decodes
// them into its own typed struct and the logs can mask them before decoding.
type Request struct {
	lambdacfn.Event

	ServiceToken          string          `json:"ServiceToken,omitempty"`
	ResourceProperties    json.RawMessage `json:"ResourceProperties,omitempty"`
	OldResourceProperties json.RawMessage `json:"OldResourceProperties,omitempty"`
}

// LogValue keeps credentials out of the logs. ResponseURL is a presigned URL and is
// omitted for the same reason.
func (r *Request) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("RequestType", string(r.RequestType)),
		slog.String("StackId", r.StackID),
		slog.String("RequestId", r.RequestID),
		slog.String("ResourceType", r.ResourceType),
		slog.String("LogicalResourceId", r.LogicalResourceID),
		slog.String("PhysicalResourceId", r.PhysicalResourceID),
		slog.String("ResourceProperties", string(props.Redact(r.ResourceProperties))),
	)
}
