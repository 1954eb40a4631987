package storage

import (
	"context"
	"errors"
	"time"
)

// DefaultPresignedURLExpiry bounds how long a presigned photo URL stays
// usable.
const DefaultPresignedURLExpiry = 10 * time.Minute

var (
	ErrInvalidContentType = errors.New("progress photos must have an image content type")
)

// PhotoStorage defines the object-storage operations for progress photos.
// Only the dev server talks to it directly; the device side uploads via the
// presigned URLs it hands out.
type PhotoStorage interface {
	// GeneratePresignedUploadURL creates a temporary URL allowing a PUT of
	// the photo bytes straight to the storage provider.
	GeneratePresignedUploadURL(ctx context.Context, objectKey, contentType string, expires time.Duration) (string, error)

	// GeneratePresignedDownloadURL creates a temporary URL allowing a GET
	// of a stored photo.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes a stored photo.
	DeleteObject(ctx context.Context, objectKey string) error
}
