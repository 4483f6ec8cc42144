package provider

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage upload file lên MinIO (hoặc S3 tương thích) và trả về presigned URL.
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage tạo mới storage, đảm bảo bucket tồn tại
func NewMinioStorage(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", bucket, err)
		}
	}

	return &MinioStorage{client: client, bucket: bucket}, nil
}

// UploadToStorage upload dữ liệu và trả về presigned URL có hạn 7 ngày
func (s *MinioStorage) UploadToStorage(ctx context.Context, req UploadRequest) (*Result, error) {
	if req.ObjectName == "" {
		return nil, fmt.Errorf("object name is required")
	}

	_, err := s.client.PutObject(ctx, s.bucket, req.ObjectName,
		bytes.NewReader(req.Data), int64(len(req.Data)),
		minio.PutObjectOptions{ContentType: req.ContentType})
	if err != nil {
		return nil, fmt.Errorf("put object %q: %w", req.ObjectName, err)
	}

	presigned, err := s.client.PresignedGetObject(ctx, s.bucket, req.ObjectName, 7*24*time.Hour, nil)
	if err != nil {
		return nil, fmt.Errorf("presign object %q: %w", req.ObjectName, err)
	}

	return &Result{
		URL:            presigned.String(),
		MimeType:       req.ContentType,
		ActualProvider: ProviderMinio,
	}, nil
}
