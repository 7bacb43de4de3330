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
	"github.com/rs/zerolog/log"

	"gearshift/internal/config"
)

// ImageStorage stores ride hero images. UploadImage returns the object name and its public URL.
type ImageStorage interface {
	UploadImage(ctx context.Context, owner, fileName string, file io.Reader, size int64) (string, string, error)
	DeleteImage(ctx context.Context, objectName string) error
}

type MinIOClient struct {
	client     *minio.Client
	bucketName string
	publicBase string
}

func NewMinIOClient(ctx context.Context, cfg config.MinIO) (*MinIOClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.BucketName, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.BucketName, err)
		}
		log.Info().Str("bucket", cfg.BucketName).Msg("created image bucket")
	}

	return &MinIOClient{
		client:     client,
		bucketName: cfg.BucketName,
		publicBase: PublicBaseURL(cfg),
	}, nil
}

// PublicBaseURL is the URL prefix objects are served from.
func PublicBaseURL(cfg config.MinIO) string {
	endpoint := strings.TrimSpace(cfg.PublicEndpoint)
	if endpoint == "" {
		endpoint = cfg.Endpoint
	}
	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		scheme := "http://"
		if cfg.UseSSL {
			scheme = "https://"
		}
		endpoint = scheme + endpoint
	}
	return endpoint + "/" + cfg.BucketName
}

// ObjectName places uploads under rides/<owner slug>/<year>/<month>/.
func ObjectName(ownerSlug, fileName string, now time.Time, id string) string {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = ".jpg"
	}
	if ownerSlug == "" {
		ownerSlug = "anonymous"
	}
	return fmt.Sprintf("rides/%s/%d/%02d/%s%s", ownerSlug, now.Year(), now.Month(), id, fileExt)
}

func (m *MinIOClient) UploadImage(ctx context.Context, owner, fileName string, file io.Reader, size int64) (string, string, error) {
	now := time.Now()
	objectName := ObjectName(owner, fileName, now, uuid.New().String())

	contentType := mime.TypeByExtension(filepath.Ext(objectName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := m.client.PutObject(ctx, m.bucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"owner":             owner,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("upload to minio: %w", err)
	}

	return objectName, m.publicBase + "/" + objectName, nil
}

func (m *MinIOClient) DeleteImage(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.bucketName, objectName, minio.RemoveObjectOptions{
		GovernanceBypass: true,
	})
	if err != nil {
		return fmt.Errorf("remove from minio: %w", err)
	}
	return nil
}
