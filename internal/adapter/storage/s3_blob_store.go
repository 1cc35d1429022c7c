package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"instalaciones_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultBucketName = "instalaciones-artifacts"

// S3BlobStore keeps attachment and resolution-document bytes in a single S3
// bucket. Writes go through the upload manager so large attachments are
// split into multipart uploads. All failures are wrapped with ErrStorage.

type S3BlobStore struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
}

var _ interfaces.IBlobStore = (*S3BlobStore)(nil)

func NewS3BlobStore(client *s3.Client) *S3BlobStore {
	bucket := os.Getenv("ARTIFACTS_BUCKET")
	if bucket == "" {
		bucket = defaultBucketName
	}
	return &S3BlobStore{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   bucket,
	}
}

func (s *S3BlobStore) Write(ctx context.Context, path string, data []byte, contentType string) error {
	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	if _, err := s.uploader.Upload(ctx, in); err != nil {
		return fmt.Errorf("%w: writing %s: %v", interfaces.ErrStorage, path, err)
	}
	return nil
}

func (s *S3BlobStore) Read(ctx context.Context, path string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", interfaces.ErrStorage, path, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", interfaces.ErrStorage, path, err)
	}
	return data, nil
}
