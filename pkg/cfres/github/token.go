// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package github

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/arn"
	"github.com/platform-engineering-labs/cfn-github-webhook/pkg/helper"
)

type secretsClientInterface interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// resolveToken returns the GitHub token to use. An ApiToken holding a Secrets Manager
// secret ARN is looked up in the secret's region; anything else is the token itself.
func (w *Webhook) resolveToken(ctx context.Context, apiToken string) (string, error) {
	secretARN, ok := arn.SecretsManager(apiToken)
	if !ok {
		return apiToken, nil
	}

	client := w.secrets
	if client == nil {
		awsCfg, err := w.cfg.WithRegion(secretARN.Region).ToAwsConfig(ctx)
		if err != nil {
			slog.Error("GitHubWebhook: Failed to create AWS config", "error", err)
			return "", fmt.Errorf("unable to load AWS config: %w", err)
		}
		client = secretsmanager.NewFromConfig(awsCfg)
	}

	slog.Debug("GitHubWebhook: resolving ApiToken from Secrets Manager", "secret", arn.IdFrom(secretARN))
	return resolveTokenWithClient(ctx, client, apiToken)
}

// resolveTokenWithClient allows for DI of the Secrets Manager client for testing
func resolveTokenWithClient(ctx context.Context, client secretsClientInterface, secretID string) (string, error) {
	secret, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		if code, message, ok := helper.HandleAWSError(err); ok {
			return "", fmt.Errorf("unable to resolve ApiToken from Secrets Manager: %s: %s", code, message)
		}
		return "", fmt.Errorf("unable to resolve ApiToken from Secrets Manager: %w", err)
	}

	token := strings.TrimSpace(aws.ToString(secret.SecretString))
	if token == "" {
		return "", fmt.Errorf("secret %s has no SecretString", secretID)
	}
	return token, nil
}
