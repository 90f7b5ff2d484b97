package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"

	"github.com/vodex-console/config"
)

// UploadService stores entity attachments (company logos, client avatars,
// project images) in an S3-compatible bucket. When no MINIO_ENDPOINT is
// configured the service is disabled and attachments are skipped, which keeps
// the console runnable as a local demo.
type UploadService struct {
	client *minio.Client
	bucket string
	useSSL bool
}

// NewUploadService wires a MinIO client from the environment.
func NewUploadService() *UploadService {
	endpoint := config.GetEnv("MINIO_ENDPOINT", "")
	if endpoint == "" {
		log.Println("⚠️ No MINIO_ENDPOINT set, file uploads are disabled")
		return &UploadService{}
	}

	useSSL := config.GetEnvBool("MINIO_USE_SSL", false)
	client, err := minio.New(endpoint, &minio.Options{
		Creds: credentials.NewStaticV4(
			config.GetEnv("MINIO_ACCESS_KEY", ""),
			config.GetEnv("MINIO_SECRET_KEY", ""),
			"",
		),
		Secure: useSSL,
	})
	if err != nil {
		log.Printf("⚠️ Failed to initialize MinIO client, uploads disabled: %v", err)
		return &UploadService{}
	}

	return &UploadService{
		client: client,
		bucket: config.GetEnv("MINIO_BUCKET", "vodex-uploads"),
		useSSL: useSSL,
	}
}

// Enabled reports whether uploads are configured.
func (s *UploadService) Enabled() bool {
	return s.client != nil
}

// EnsureBucket creates the upload bucket if it does not exist yet.
func (s *UploadService) EnsureBucket(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return errors.Wrap(err, "check bucket")
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return errors.Wrap(err, "create bucket")
	}
	log.Printf("✅ Created upload bucket %s", s.bucket)
	return nil
}

// Store uploads one attachment under prefix and returns its public URL.
// Returns an empty URL when uploads are disabled.
func (s *UploadService) Store(ctx context.Context, prefix string, file *multipart.FileHeader) (string, error) {
	if !s.Enabled() {
		log.Printf("⚠️ Skipping upload of %s: uploads are disabled", file.Filename)
		return "", nil
	}

	src, err := file.Open()
	if err != nil {
		return "", errors.Wrap(err, "open upload")
	}
	defer src.Close()

	key := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), filepath.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, src, file.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "store upload")
	}

	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.client.EndpointURL().Host, s.bucket, key), nil
}
