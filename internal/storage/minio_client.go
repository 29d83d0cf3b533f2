package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"portfolio/internal/config"
)

// Storage accepts image files and hands back a public URL.
type Storage interface {
	UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (objectName string, url string, err error)
	DeleteImage(ctx context.Context, objectName string) error
	ObjectNameFromURL(url string) (string, bool)
}

type MinIOClient struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinIOClient(ctx context.Context, cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return &MinIOClient{
		client:    client,
		bucket:    cfg.MinIO.BucketName,
		publicURL: strings.TrimSuffix(cfg.MinIO.PublicURL, "/"),
	}, nil
}

func (m *MinIOClient) UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, string, error) {
	objectName := ObjectName(fileName, time.Now())

	contentType := mime.TypeByExtension(filepath.Ext(objectName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := m.client.PutObject(ctx, m.bucket, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"uploaded-at":       time.Now().Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("upload to minio: %w", err)
	}

	return objectName, PublicURL(m.publicURL, m.bucket, objectName), nil
}

func (m *MinIOClient) DeleteImage(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("delete from minio: %w", err)
	}
	return nil
}

// ObjectNameFromURL reports the object key of a URL produced by UploadImage.
func (m *MinIOClient) ObjectNameFromURL(url string) (string, bool) {
	prefix := m.publicURL + "/" + m.bucket + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}

// ObjectName lays uploads out as posts/<year>/<month>/<uuid><ext>.
func ObjectName(fileName string, now time.Time) string {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = ".jpg"
	}

	return fmt.Sprintf("posts/%d/%02d/%s%s",
		now.Year(),
		now.Month(),
		uuid.New().String(),
		fileExt)
}

func PublicURL(base, bucket, objectName string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(base, "/"), bucket, objectName)
}
