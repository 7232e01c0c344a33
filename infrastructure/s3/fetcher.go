package s3

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/rios0rios0/bucketbridge/domain"
)

const defaultMaxObjectBytes = 1 << 30

// Config holds the S3 connection settings. Endpoint and credentials are
// optional; when unset the default AWS resolution chain applies.
type Config struct {
	Region         string
	Endpoint       string
	AccessKey      string
	SecretKey      string
	ForcePathStyle bool
	MaxObjectBytes int64
}

// Fetcher implements domain.ObjectFetcher on the AWS S3 API.
type Fetcher struct {
	client   *awss3.Client
	maxBytes int64
}

// New creates an S3 object fetcher from the given configuration.
func New(ctx context.Context, cfg Config) (*Fetcher, error) {
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	cfgOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKey != "" || cfg.SecretKey != "" {
		cfgOpts = append(cfgOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, cfgOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	endpoint := strings.TrimSpace(cfg.Endpoint)
	client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			// Custom endpoints (MinIO, localstack) require path-style addressing.
			o.UsePathStyle = true
		} else {
			o.UsePathStyle = cfg.ForcePathStyle
		}
	})

	maxBytes := cfg.MaxObjectBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxObjectBytes
	}

	return &Fetcher{client: client, maxBytes: maxBytes}, nil
}

// FetchContent downloads the full object body from the bucket.
func (f *Fetcher) FetchContent(ctx context.Context, bucket, key string) ([]byte, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, fmt.Errorf("%w: bucket is empty", domain.ErrInvalidParameters)
	}
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("%w: object key is empty", domain.ErrInvalidParameters)
	}

	output, err := f.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch s3://%s/%s: %w", bucket, key, err)
	}
	defer output.Body.Close()

	if output.ContentLength != nil && *output.ContentLength > f.maxBytes {
		return nil, fmt.Errorf("object s3://%s/%s exceeds size limit of %d bytes", bucket, key, f.maxBytes)
	}

	data, err := io.ReadAll(io.LimitReader(output.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read s3://%s/%s: %w", bucket, key, err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("object s3://%s/%s exceeds size limit of %d bytes", bucket, key, f.maxBytes)
	}

	return data, nil
}
