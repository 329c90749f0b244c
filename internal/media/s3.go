package media

import (
	"bytes"
	"context"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage keeps uploads under the "uploads/" key prefix of one bucket.
// Refs stay in the same "/uploads/<name>" shape as the local backend so
// rows never encode which driver wrote them.
type S3Storage struct {
	client *s3.Client
	bucket string
}

type S3Config struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	// Endpoint overrides the AWS endpoint for S3-compatible stores.
	Endpoint string
}

func NewS3Storage(cfg S3Config) *S3Storage {
	opts := s3.Options{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	return &S3Storage{
		client: s3.New(opts),
		bucket: cfg.Bucket,
	}
}

func (s *S3Storage) key(ref string) string {
	return "uploads/" + path.Base(strings.TrimPrefix(ref, refPrefix))
}

func (s *S3Storage) Save(ctx context.Context, name string, src io.Reader) (string, error) {
	body, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}

	ref := refPrefix + path.Base(name)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(ref)),
		Body:   bytes.NewReader(body),
	})
	if err != nil {
		return "", err
	}

	return ref, nil
}

func (s *S3Storage) Exists(ctx context.Context, ref string) bool {
	if ref == "" {
		return false
	}
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(ref)),
	})
	return err == nil
}

// Delete removes the object; S3 treats deleting a missing key as success,
// which matches the Storage contract.
func (s *S3Storage) Delete(ctx context.Context, ref string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(ref)),
	})
	return err
}
