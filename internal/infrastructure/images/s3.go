package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/prasanth-t0205/techblog/internal/application/ports"
)

type S3Config struct {
	Endpoint  string // non-empty for minio-compatible stores
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

// S3Storage implements ports.ImageStorage over an S3-compatible
// bucket. Clients send images as base64 data URLs; the decoded bytes
// are stored under a dated random key and served by URL.
type S3Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey, cfg.SecretKey, "",
		)))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	baseURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	if cfg.Endpoint != "" {
		baseURL = fmt.Sprintf("%s/%s", strings.TrimSuffix(cfg.Endpoint, "/"), cfg.Bucket)
	}
	return &S3Storage{client: client, bucket: cfg.Bucket, baseURL: baseURL}, nil
}

func (s *S3Storage) Upload(ctx context.Context, data string) (string, error) {
	// Already a URL (unchanged image on edit): nothing to store.
	if !strings.HasPrefix(data, "data:") {
		return data, nil
	}
	contentType, payload, err := decodeDataURL(data)
	if err != nil {
		return "", err
	}
	key := storageKey(contentType)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return s.baseURL + "/" + key, nil
}

func (s *S3Storage) Delete(ctx context.Context, url string) error {
	key := strings.TrimPrefix(url, s.baseURL+"/")
	if key == url || key == "" {
		// Not one of ours; deletion is best-effort.
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

func decodeDataURL(data string) (contentType string, payload []byte, err error) {
	rest := strings.TrimPrefix(data, "data:")
	idx := strings.Index(rest, ";base64,")
	if idx < 0 {
		return "", nil, fmt.Errorf("image payload is not a base64 data URL")
	}
	contentType = rest[:idx]
	payload, err = base64.StdEncoding.DecodeString(rest[idx+len(";base64,"):])
	if err != nil {
		return "", nil, fmt.Errorf("decode image payload: %w", err)
	}
	return contentType, payload, nil
}

func storageKey(contentType string) string {
	ext := ""
	if i := strings.LastIndex(contentType, "/"); i >= 0 && i < len(contentType)-1 {
		ext = "." + contentType[i+1:]
	}
	d := time.Now()
	return fmt.Sprintf("images/%d/%02d/%02d/%s%s", d.Year(), d.Month(), d.Day(), uuid.New(), ext)
}

var _ ports.ImageStorage = (*S3Storage)(nil)
