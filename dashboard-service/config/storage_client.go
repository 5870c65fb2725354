package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewReportBucketClient builds an S3 client for the report mirror. Static
// keys are used when configured, otherwise the default AWS chain applies.
func NewReportBucketClient(ctx context.Context, cfg *Config) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.ReportBucketRegion),
	}
	if cfg.ReportBucketAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.ReportBucketAccessKey, cfg.ReportBucketSecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.ReportBucketEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.ReportBucketEndpoint)
			o.UsePathStyle = true
		}
	}), nil
}
