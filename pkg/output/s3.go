package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// UploadTimeout bounds a single object upload
const UploadTimeout = 10 * time.Second

// S3Config holds the connection settings for an S3 compatible store
type S3Config struct {
	AccessKey  string
	SecretKey  string
	Endpoint   string
	Region     string
	Bucket     string
	ACL        string // Optional canned ACL, e.g. "public-read"
	DisableSSL bool
}

// S3ConfigFromEnv reads S3_ACCESS_KEY, S3_SECRET_KEY, S3_ENDPOINT, S3_REGION,
// S3_BUCKET and S3_ACL from the environment.
func S3ConfigFromEnv() S3Config {
	return S3Config{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    getEnv("S3_REGION", "us-east-1"),
		Bucket:    os.Getenv("S3_BUCKET"),
		ACL:       os.Getenv("S3_ACL"),
	}
}

// Enabled reports whether uploads are configured
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Uploader publishes rendered images to a bucket
type Uploader struct {
	config S3Config
	client *s3.S3
}

// NewUploader creates an S3 session from config
func NewUploader(config S3Config) (*Uploader, error) {
	if !config.Enabled() {
		return nil, errors.New("s3 bucket not configured")
	}

	awsConfig := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(config.AccessKey, config.SecretKey, ""),
		Region:           aws.String(config.Region),
		S3ForcePathStyle: aws.Bool(true),
		DisableSSL:       aws.Bool(config.DisableSSL),
	}
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("creating s3 session: %w", err)
	}

	return &Uploader{config: config, client: s3.New(sess)}, nil
}

// UploadPNG encodes img and stores it under key
func (u *Uploader) UploadPNG(ctx context.Context, key string, img image.Image) error {
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}
	return u.Upload(ctx, key, data, "image/png")
}

// Upload stores data under key with the given content type
func (u *Uploader) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	input := &s3.PutObjectInput{
		Bucket:        aws.String(u.config.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	}
	if u.config.ACL != "" {
		input.ACL = aws.String(u.config.ACL)
	}

	if _, err := u.client.PutObjectWithContext(ctx, input); err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}
