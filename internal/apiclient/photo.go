package apiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/domain"
)

// PhotoAPI handles progress-photo uploads. The backend hands out a
// presigned PUT URL; the device uploads the bytes straight to object
// storage and then confirms the metadata.
type PhotoAPI struct {
	client *Client
	// uploader carries no auth header; presigned URLs are self-contained.
	uploader *http.Client
}

func NewPhotoAPI(client *Client) *PhotoAPI {
	return &PhotoAPI{
		client:   client,
		uploader: &http.Client{Timeout: client.http.Timeout},
	}
}

// UploadSlot is the presigned destination for a single photo.
type UploadSlot struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

type uploadSlotRequest struct {
	ContentType string `json:"contentType"`
	TakenOn     string `json:"takenOn,omitempty"`
}

// RequestUploadSlot asks the backend for a presigned PUT URL.
func (a *PhotoAPI) RequestUploadSlot(ctx context.Context, contentType, takenOn string) (*UploadSlot, error) {
	var slot UploadSlot
	req := uploadSlotRequest{ContentType: contentType, TakenOn: takenOn}
	if err := a.client.do(ctx, http.MethodPost, "/progress/photos/upload-url", req, &slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

// Upload PUTs the photo bytes to the presigned URL.
func (a *PhotoAPI) Upload(ctx context.Context, slot *UploadSlot, contentType string, body io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, slot.UploadURL, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	resp, err := a.uploader.Do(req)
	if err != nil {
		return fmt.Errorf("photo upload: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("photo upload rejected: status %d", resp.StatusCode)
	}
	return nil
}

type confirmPhotoRequest struct {
	ObjectKey   string `json:"objectKey"`
	FileName    string `json:"fileName,omitempty"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size,omitempty"`
	TakenOn     string `json:"takenOn,omitempty"`
}

// Confirm records the photo metadata after a successful upload.
func (a *PhotoAPI) Confirm(ctx context.Context, slot *UploadSlot, fileName, contentType string, size int64, takenOn string) (*domain.ProgressPhoto, error) {
	var photo domain.ProgressPhoto
	req := confirmPhotoRequest{ObjectKey: slot.ObjectKey, FileName: fileName, ContentType: contentType, Size: size, TakenOn: takenOn}
	if err := a.client.do(ctx, http.MethodPost, "/progress/photos", req, &photo); err != nil {
		return nil, err
	}
	return &photo, nil
}
