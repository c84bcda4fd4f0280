package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appconfig "simplehire-backend/config"
)

// Client wraps an S3-compatible object store used for candidate documents
// (resumes, ID scans, visa scans, selfies).
type Client struct {
	s3     *s3.Client
	bucket string
	// public base URL for stored objects, e.g. https://bucket.s3.region.amazonaws.com
	baseURL string
}

// NewClient builds a storage client from app config. A custom endpoint
// switches the client to path-style addressing for non-AWS providers.
func NewClient(ctx context.Context, cfg *appconfig.Config) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var s3Client *s3.Client
	var baseURL string

	if cfg.S3Endpoint != "" {
		// S3-compatible provider (Wasabi, MinIO) requires path-style addressing
		s3Client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String("https://" + cfg.S3Endpoint)
			o.UsePathStyle = true
		})
		baseURL = fmt.Sprintf("https://%s/%s", cfg.S3Endpoint, cfg.S3Bucket)
	} else {
		s3Client = s3.NewFromConfig(awsCfg)
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &Client{
		s3:      s3Client,
		bucket:  cfg.S3Bucket,
		baseURL: baseURL,
	}, nil
}

// Upload stores an object and returns its public URL.
// Key layout: <folder>/<userID>/<filename>.
func (c *Client) Upload(ctx context.Context, key string, contentType string, body []byte) (string, error) {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return c.baseURL + "/" + key, nil
}

// Delete removes an object; missing keys are not an error.
func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// HealthCheck verifies bucket access by listing a single object.
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_, err := c.s3.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(c.bucket),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return fmt.Errorf("failed to access bucket %s: %w", c.bucket, err)
	}
	return nil
}
