// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package cfres

import (
	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/cfn"
	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/cfres/prov"
	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/cfres/registry"
	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/config"

	_ "github.com/platform-engineering-labs/cfn-github-webhook/pkg/cfres/github"
)

func GetProvisionerForOperation(kind registry.Kind, requestType cfn.RequestType, cfg *config.Config) prov.Provisioner {
	return registry.Get(kind, requestType, cfg)
}
