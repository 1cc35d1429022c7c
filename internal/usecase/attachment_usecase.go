package usecase

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"instalaciones_xpto/internal/domain/entities"
	"instalaciones_xpto/internal/usecase/interfaces"
)

var ErrInvalidAttachmentInput = errors.New("invalid attachment input")

// IAttachmentUseCase stores evidence files against an application.

type IAttachmentUseCase interface {
	Upload(ctx context.Context, applicationID, kind, fileName, mimeType string, data []byte, uploaderID string) (entities.AttachmentFile, error)
	ListByApplication(ctx context.Context, applicationID string) ([]entities.AttachmentFile, error)
}

type AttachmentUseCase struct {
	apps        interfaces.IApplicationRepository
	attachments interfaces.IAttachmentRepository
	blob        interfaces.IBlobStore
	clock       Clock
	ids         IDGenerator
}

var _ IAttachmentUseCase = (*AttachmentUseCase)(nil)

func NewAttachmentUseCase(apps interfaces.IApplicationRepository, attachments interfaces.IAttachmentRepository, blob interfaces.IBlobStore) *AttachmentUseCase {
	return &AttachmentUseCase{
		apps:        apps,
		attachments: attachments,
		blob:        blob,
		clock:       RealClock{},
		ids:         UUIDGenerator{},
	}
}

// Upload writes the bytes to blob storage and then inserts the metadata row.
// The two steps are not atomic; a crash in between leaves an orphaned blob
// that is cleaned up outside this core. Any kind string is accepted -- the
// completeness checker is the only consumer that cares about kind membership.
func (u *AttachmentUseCase) Upload(ctx context.Context, applicationID, kind, fileName, mimeType string, data []byte, uploaderID string) (entities.AttachmentFile, error) {
	applicationID = strings.TrimSpace(applicationID)
	kind = strings.TrimSpace(kind)
	fileName = strings.TrimSpace(fileName)
	uploaderID = strings.TrimSpace(uploaderID)
	if applicationID == "" {
		return entities.AttachmentFile{}, ErrInvalidApplicationID
	}
	if kind == "" || fileName == "" || uploaderID == "" || len(data) == 0 {
		return entities.AttachmentFile{}, ErrInvalidAttachmentInput
	}

	app, err := u.apps.GetByID(ctx, applicationID)
	if err != nil {
		return entities.AttachmentFile{}, err
	}
	if app.ID == "" {
		return entities.AttachmentFile{}, ErrApplicationNotFound
	}

	id := u.ids.New()
	storagePath := path.Join("attachments", applicationID, fmt.Sprintf("%s-%s", id, fileName))
	if err := u.blob.Write(ctx, storagePath, data, mimeType); err != nil {
		return entities.AttachmentFile{}, err
	}

	att := entities.AttachmentFile{
		ID:            id,
		ApplicationID: applicationID,
		Kind:          kind,
		FileName:      fileName,
		MimeType:      mimeType,
		SizeBytes:     int64(len(data)),
		StoragePath:   storagePath,
		UploadedBy:    uploaderID,
		CreatedAt:     u.clock.Now().UTC(),
	}
	return u.attachments.Insert(ctx, att)
}

func (u *AttachmentUseCase) ListByApplication(ctx context.Context, applicationID string) ([]entities.AttachmentFile, error) {
	applicationID = strings.TrimSpace(applicationID)
	if applicationID == "" {
		return nil, ErrInvalidApplicationID
	}
	return u.attachments.ListByApplication(ctx, applicationID)
}
