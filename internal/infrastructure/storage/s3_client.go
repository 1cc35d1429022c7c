package storage

import (
	"context"
	"log"
	"os"

	"instalaciones_xpto/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ConnectS3 creates an S3 client using environment variables.
//
// Supported env vars (local-friendly):
//   - S3_ENDPOINT (optional; e.g. http://minio:9000, enables path-style)
//   - plus the shared AWS vars read by LoadAWSConfigFromEnv.
func ConnectS3() *s3.Client {
	cfg, err := database.LoadAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to load aws config: %v", err)
	}
	endpoint := os.Getenv("S3_ENDPOINT")
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}
