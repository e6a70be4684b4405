// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package registry

import (
	"fmt"
	"log/slog"

	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/cfn"
	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/cfres/prov"
	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/config"
)

// Kind enumerates the custom resource types this function knows about.
type Kind int

const (
	KindUnknown Kind = iota
	KindGitHubWebhook
)

var kindNames = map[Kind]string{
	KindGitHubWebhook: "Custom::GitHubWebhook",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// KindOf maps a CloudFormation resource type onto a Kind. Anything not enumerated is KindUnknown.
func KindOf(resourceType string) Kind {
	for kind, name := range kindNames {
		if name == resourceType {
			return kind
		}
	}
	return KindUnknown
}

type Factory func(cfg *config.Config) prov.Provisioner

var registry = make(map[Kind]map[cfn.RequestType]Factory)

func Register(kind Kind, requestTypes []cfn.RequestType, f Factory) {
	if kind == KindUnknown {
		panic("registry: cannot register provisioner for unknown kind")
	}
	if _, exists := registry[kind]; !exists {
		registry[kind] = make(map[cfn.RequestType]Factory)
	}
	for _, requestType := range requestTypes {
		registry[kind][requestType] = f
	}
}

// Get returns the provisioner handling requestType for kind. A missing entry means the
// registry itself is malformed, so Get panics instead of answering the request.
func Get(kind Kind, requestType cfn.RequestType, cfg *config.Config) prov.Provisioner {
	if !HasProvisioner(kind, requestType) {
		slog.Error("Provisioner not found in registry", "kind", kind, "requestType", requestType, "registry_keys", getRegistryKeys())
		panic(fmt.Sprintf("registry: no provisioner for %s %s", requestType, kind))
	}

	return registry[kind][requestType](cfg)
}

func getRegistryKeys() []string {
	var keys []string
	for k := range registry {
		keys = append(keys, k.String())
	}
	return keys
}

func HasProvisioner(kind Kind, requestType cfn.RequestType) bool {
	_, exists := registry[kind][requestType]
	return exists
}
