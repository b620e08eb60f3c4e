// Package storage reads objects from an S3 bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"diet-diary/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type (
	AwsS3 interface {
		// GetObject returns the object body. A missing key yields an error
		// wrapping fs.ErrNotExist.
		GetObject(ctx context.Context, key string) (io.ReadCloser, error)
		Bucket() string
	}

	// ObjectAPI is the part of the S3 client used here.
	ObjectAPI interface {
		GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	}

	awsS3 struct {
		client ObjectAPI
		bucket string
	}
)

// NewAwsS3 builds a client from the AWS_* configuration keys. Static
// credentials are used when both keys are set, otherwise the default AWS
// credential chain applies.
func NewAwsS3(ctx context.Context, bucket string) (AwsS3, error) {
	if bucket == "" {
		bucket = utils.GetConfig("AWS_S3_BUCKET")
	}
	if bucket == "" {
		return nil, errors.New("storage bucket is required")
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(utils.GetConfigOrDefault("AWS_S3_REGION", "us-east-1")),
	}
	accessKey, secretKey := utils.GetConfig("AWS_ACCESS_KEY"), utils.GetConfig("AWS_SECRET_KEY")
	if accessKey != "" && secretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}
	return NewAwsS3WithClient(s3.NewFromConfig(cfg), bucket), nil
}

func NewAwsS3WithClient(client ObjectAPI, bucket string) AwsS3 {
	return &awsS3{client: client, bucket: bucket}
}

func (s *awsS3) Bucket() string {
	return s.bucket
}

func (s *awsS3) GetObject(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, fmt.Errorf("s3://%s/%s: %w", s.bucket, key, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("get s3://%s/%s: %w", s.bucket, key, err)
	}
	return out.Body, nil
}
