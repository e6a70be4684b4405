// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package prov

import (
	"context"

	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/cfn"
)

// Provisioner manages one custom resource type through its CloudFormation lifecycle.
// Failures are reported in the returned result, never as a Go error.
type Provisioner interface {
	Create(context context.Context, request *cfn.Request) *cfn.Result
	Update(context context.Context, request *cfn.Request) *cfn.Result
	Delete(context context.Context, request *cfn.Request) *cfn.Result
}
