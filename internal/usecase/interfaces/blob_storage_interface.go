package interfaces

import (
	"context"
	"io"
)

// IBlobStorage abstracts the attachment blob store (e.g. S3).
//
// Upload returns the storage path and the public URL persisted on the
// service's anexos list.
type IBlobStorage interface {
	Upload(ctx context.Context, file io.Reader, path string) (storagePath string, publicURL string, err error)
}
