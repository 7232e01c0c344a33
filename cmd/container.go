package cmd

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"go.uber.org/dig"

	"github.com/rios0rios0/bucketbridge/application"
	"github.com/rios0rios0/bucketbridge/config"
	"github.com/rios0rios0/bucketbridge/domain"
	"github.com/rios0rios0/bucketbridge/infrastructure/gitlab"
	s3infra "github.com/rios0rios0/bucketbridge/infrastructure/s3"
	"github.com/rios0rios0/bucketbridge/infrastructure/secrets"
)

// buildService wires configuration, token source, repository client and
// object fetcher into a ready-to-use SyncService.
func buildService(ctx context.Context) (*application.SyncService, error) {
	container := dig.New()

	constructors := []interface{}{
		loadConfig,
		func(cfg *config.Config) (domain.TokenSource, error) {
			return buildTokenSource(ctx, cfg)
		},
		func(cfg *config.Config, tokens domain.TokenSource) (domain.FileRepository, error) {
			token, err := tokens.Token(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve gitlab token: %w", err)
			}
			return gitlab.New(cfg.GitLab.BaseURL, cfg.GitLab.ProjectID, cfg.GitLab.Branch, token)
		},
		func(cfg *config.Config) (domain.ObjectFetcher, error) {
			return s3infra.New(ctx, s3infra.Config{
				Region:         cfg.S3.Region,
				Endpoint:       cfg.S3.Endpoint,
				AccessKey:      cfg.S3.AccessKey,
				SecretKey:      cfg.S3.SecretKey,
				ForcePathStyle: cfg.S3.ForcePathStyle,
				MaxObjectBytes: cfg.S3.MaxObjectBytes,
			})
		},
		application.NewSyncService,
	}

	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return nil, fmt.Errorf("failed to register constructor: %w", err)
		}
	}

	var service *application.SyncService
	if err := container.Invoke(func(s *application.SyncService) {
		service = s
	}); err != nil {
		return nil, fmt.Errorf("failed to build service: %w", err)
	}

	return service, nil
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.FindConfigFile()
		if err != nil {
			return nil, fmt.Errorf(
				"no config file found: %w\nSpecify one with --config or create bucketbridge.yaml",
				err,
			)
		}
	}

	logger.Infof("Using config file: %s", path)
	return config.Load(path)
}

func buildTokenSource(ctx context.Context, cfg *config.Config) (domain.TokenSource, error) {
	if cfg.GitLab.TokenSecretID != "" {
		return secrets.NewManagerSource(ctx, cfg.S3.Region, cfg.GitLab.TokenSecretID)
	}
	return secrets.NewStaticSource(cfg.GitLab.Token), nil
}
