// Package secrets provides the token sources the bridge can authenticate
// with: AWS Secrets Manager for deployed environments and a static source
// for inline-configured tokens.
package secrets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// ManagerSource retrieves the repository token from AWS Secrets Manager.
type ManagerSource struct {
	client   *secretsmanager.Client
	secretID string
}

// NewManagerSource creates a token source reading the given secret ID.
func NewManagerSource(ctx context.Context, region, secretID string) (*ManagerSource, error) {
	if secretID == "" {
		return nil, errors.New("secret ID is empty")
	}

	cfgOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		cfgOpts = append(cfgOpts, awsconfig.WithRegion(region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, cfgOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return &ManagerSource{
		client:   secretsmanager.NewFromConfig(awsCfg),
		secretID: secretID,
	}, nil
}

// Token fetches the secret value. Retrieval failure is fatal for the
// invocation and is never retried here.
func (s *ManagerSource) Token(ctx context.Context) (string, error) {
	output, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(s.secretID),
	})
	if err != nil {
		return "", fmt.Errorf("failed to retrieve secret %q: %w", s.secretID, err)
	}
	if output.SecretString == nil || *output.SecretString == "" {
		return "", fmt.Errorf("secret %q has no string value", s.secretID)
	}

	return strings.TrimSpace(*output.SecretString), nil
}

// StaticSource returns a token configured inline.
type StaticSource struct {
	token string
}

// NewStaticSource wraps an already resolved token.
func NewStaticSource(token string) *StaticSource {
	return &StaticSource{token: token}
}

func (s *StaticSource) Token(_ context.Context) (string, error) {
	if s.token == "" {
		return "", errors.New("no token configured")
	}
	return s.token, nil
}
