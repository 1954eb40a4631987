package domain

import (
	"time"
)

// ProgressPhoto is the metadata record for a photo the user uploaded to
// object storage via a presigned URL.
type ProgressPhoto struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	S3ObjectKey string    `json:"s3ObjectKey"`
	FileName    string    `json:"fileName,omitempty"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size,omitempty"`
	TakenOn     string    `json:"takenOn,omitempty"` // "2006-01-02"
	UploadedAt  time.Time `json:"uploadedAt"`
}
