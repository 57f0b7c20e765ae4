package storage

import (
	"fmt"
	"os"

	"engetrack/internal/usecase/interfaces"
)

// NewFromEnv picks the blob storage driver from STORAGE_DRIVER (s3 or local,
// default local).
func NewFromEnv() (interfaces.IBlobStorage, error) {
	switch os.Getenv("STORAGE_DRIVER") {
	case "s3":
		return NewS3Storage(S3Config{
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			Region:          os.Getenv("AWS_REGION"),
			Bucket:          os.Getenv("ANEXOS_BUCKET"),
		})
	case "local", "":
		return NewLocalStorage(os.Getenv("UPLOADS_PATH"))
	default:
		return nil, fmt.Errorf("unknown storage driver %q", os.Getenv("STORAGE_DRIVER"))
	}
}
