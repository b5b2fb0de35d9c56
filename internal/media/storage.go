package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	appconfig "github.com/yurymalaver/salon-crm/internal/config"
)

// Storage guarda un objeto y devuelve su URL pública.
type Storage interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

// ------------------------------
// S3
// ------------------------------

type S3Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3Storage(cfg *appconfig.Config) *S3Storage {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	})

	baseURL := cfg.MediaBaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &S3Storage{
		client:  client,
		bucket:  cfg.S3Bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *S3Storage) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return s.baseURL + "/" + key, nil
}

var _ Storage = (*S3Storage)(nil)

// ------------------------------
// Uploader
// ------------------------------

// Uploader publica imágenes de promoción: normaliza a WebP y las sube
// al bucket bajo promotions/.
type Uploader struct {
	storage Storage
}

func NewUploader(storage Storage) *Uploader {
	return &Uploader{storage: storage}
}

func (u *Uploader) UploadPromotionImage(ctx context.Context, payloadB64 string) (string, error) {
	raw, err := DecodeBase64Image(payloadB64)
	if err != nil {
		return "", err
	}

	normalized, err := NormalizePromotionImage(raw)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("promotions/%s.webp", uuid.NewString())
	return u.storage.Put(ctx, key, normalized, "image/webp")
}
