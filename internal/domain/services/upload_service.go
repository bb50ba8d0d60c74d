package services

import (
	"context"
	"fmt"
	"path"

	"github.com/google/uuid"

	"pms-app-service/internal/infrastructure/upstream"
)

// Attachment is one binary file submitted with a form
type Attachment struct {
	FileName    string
	ContentType string
	Data        []byte
}

// InterfaceUploadService defines the presigned upload interface
type InterfaceUploadService interface {
	UploadAll(ctx context.Context, attachments []Attachment) ([]string, error)
}

// UploadService uploads form attachments through presigned URLs. Uploads
// run before any entity mutation so a failed upload aborts the whole
// submit without partial side effects.
type UploadService struct {
	Upstream *upstream.Client
}

// NewUploadService creates a new upload service
func NewUploadService(client *upstream.Client) InterfaceUploadService {
	return &UploadService{Upstream: client}
}

// UploadAll presigns and uploads each attachment in order, returning the
// public URLs. The object key is randomized to avoid collisions; the
// original extension is kept. The first failure aborts with an error
// naming the attachment.
func (s *UploadService) UploadAll(ctx context.Context, attachments []Attachment) ([]string, error) {
	if len(attachments) == 0 {
		return nil, nil
	}

	urls := make([]string, 0, len(attachments))
	for _, attachment := range attachments {
		objectName := uuid.NewString() + path.Ext(attachment.FileName)

		presigned, err := s.Upstream.PresignUpload(ctx, objectName, attachment.ContentType)
		if err != nil {
			return nil, fmt.Errorf("presign failed for %q: %w", attachment.FileName, err)
		}
		if err := s.Upstream.PutObject(ctx, presigned.PresignedURL, attachment.ContentType, attachment.Data); err != nil {
			return nil, fmt.Errorf("upload failed for %q: %w", attachment.FileName, err)
		}
		urls = append(urls, presigned.PublicURL)
	}
	return urls, nil
}
