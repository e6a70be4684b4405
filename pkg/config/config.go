// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package config

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
)

const (
	DefaultAPIURL    = "https://api.github.com/"
	DefaultUserAgent = "platform-engineering-labs/cfn-github-webhook"
)

type Config struct {
	// APIURL is the GitHub API base URL, always ending in a slash.
	APIURL    string `json:"ApiUrl"`
	UserAgent string `json:"-"`
	// Region is used for AWS calls made on behalf of the resource, e.g. Secrets Manager.
	Region string `json:"-"`
}

func (c *Config) ToAwsConfig(ctx context.Context) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error

	if c.Region != "" {
		opts = append(opts, awsconfig.WithRegion(c.Region))
	}

	return awsconfig.LoadDefaultConfig(ctx, opts...)
}

// WithRegion returns a copy of the config targeting region.
func (c *Config) WithRegion(region string) *Config {
	cfg := *c
	cfg.Region = region
	return &cfg
}

// FromProperties reads the adapter settings carried in the resource properties,
// filling in defaults for anything missing.
func FromProperties(properties json.RawMessage) *Config {
	config := &Config{}
	if properties != nil {
		_ = json.Unmarshal(properties, config)
	}

	if config.APIURL == "" {
		config.APIURL = DefaultAPIURL
	}
	if !strings.HasSuffix(config.APIURL, "/") {
		config.APIURL += "/"
	}
	config.UserAgent = DefaultUserAgent

	return config
}
