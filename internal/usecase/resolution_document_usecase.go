package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"

	"instalaciones_xpto/internal/domain/entities"
	"instalaciones_xpto/internal/usecase/interfaces"
)

var (
	ErrDocumentNotFound = errors.New("resolution document not found")
	ErrVersionConflict  = errors.New("document version allocation retries exhausted")
)

// maxVersionRetries bounds how often a raced version allocation is retried
// before surfacing a conflict.
const maxVersionRetries = 2

// IResolutionDocumentUseCase produces and serves the versioned PDF snapshots
// of approve/reject decisions.

type IResolutionDocumentUseCase interface {
	interfaces.IResolutionDocumentGenerator
	ListByApplication(ctx context.Context, applicationID string) ([]entities.ResolutionDocument, error)
	Download(ctx context.Context, applicationID string, version int) (entities.ResolutionDocument, []byte, error)
}

type ResolutionDocumentUseCase struct {
	docs        interfaces.IResolutionDocumentRepository
	attachments interfaces.IAttachmentRepository
	blob        interfaces.IBlobStore
	renderer    interfaces.IResolutionRenderer
	clock       Clock
	ids         IDGenerator
}

var _ IResolutionDocumentUseCase = (*ResolutionDocumentUseCase)(nil)

func NewResolutionDocumentUseCase(
	docs interfaces.IResolutionDocumentRepository,
	attachments interfaces.IAttachmentRepository,
	blob interfaces.IBlobStore,
	renderer interfaces.IResolutionRenderer,
) *ResolutionDocumentUseCase {
	return &ResolutionDocumentUseCase{
		docs:        docs,
		attachments: attachments,
		blob:        blob,
		renderer:    renderer,
		clock:       RealClock{},
		ids:         UUIDGenerator{},
	}
}

// GenerateForDecision allocates the next version for the application, renders
// the decision snapshot and persists it. Version allocation is optimistic:
// max+1 is computed, the insert is protected by a uniqueness condition on
// (application_id, version), and a raced allocation is retried from scratch
// up to maxVersionRetries times.
func (u *ResolutionDocumentUseCase) GenerateForDecision(ctx context.Context, app entities.Application, actorID, note string) (entities.ResolutionDocument, error) {
	files, err := u.attachments.ListByApplication(ctx, app.ID)
	if err != nil {
		return entities.ResolutionDocument{}, err
	}
	renderAtts := u.loadRenderAttachments(ctx, files)

	for attempt := 0; attempt <= maxVersionRetries; attempt++ {
		maxVersion, err := u.docs.MaxVersion(ctx, app.ID)
		if err != nil {
			return entities.ResolutionDocument{}, err
		}
		version := maxVersion + 1
		generatedAt := u.clock.Now().UTC()

		pdf, err := u.renderer.Render(ctx, interfaces.ResolutionRenderData{
			Application: app,
			Decision:    app.Status,
			Note:        note,
			Version:     version,
			GeneratedAt: generatedAt,
			Attachments: renderAtts,
		})
		if err != nil {
			return entities.ResolutionDocument{}, err
		}

		fileName := fmt.Sprintf("resolution-%s-v%d.pdf", app.ID, version)
		storagePath := path.Join("resolutions", app.ID, fileName)
		if err := u.blob.Write(ctx, storagePath, pdf, "application/pdf"); err != nil {
			return entities.ResolutionDocument{}, err
		}

		doc := entities.ResolutionDocument{
			ID:            u.ids.New(),
			ApplicationID: app.ID,
			Version:       version,
			FileName:      fileName,
			StoragePath:   storagePath,
			GeneratedBy:   actorID,
			CreatedAt:     generatedAt,
		}
		created, err := u.docs.Insert(ctx, doc)
		if err != nil {
			return entities.ResolutionDocument{}, err
		}
		if created.ID != "" {
			log.Printf("[resolution] document generated application=%s version=%d", app.ID, version)
			return created, nil
		}
		// A concurrent decision took this version. The orphaned blob for the
		// losing attempt is cleaned up outside this core.
		log.Printf("[resolution] version %d already taken for application %s, retrying", version, app.ID)
	}
	return entities.ResolutionDocument{}, ErrVersionConflict
}

func (u *ResolutionDocumentUseCase) ListByApplication(ctx context.Context, applicationID string) ([]entities.ResolutionDocument, error) {
	applicationID = strings.TrimSpace(applicationID)
	if applicationID == "" {
		return nil, ErrInvalidApplicationID
	}
	return u.docs.ListByApplication(ctx, applicationID)
}

func (u *ResolutionDocumentUseCase) Download(ctx context.Context, applicationID string, version int) (entities.ResolutionDocument, []byte, error) {
	applicationID = strings.TrimSpace(applicationID)
	if applicationID == "" || version < 1 {
		return entities.ResolutionDocument{}, nil, ErrDocumentNotFound
	}
	doc, err := u.docs.GetByVersion(ctx, applicationID, version)
	if err != nil {
		return entities.ResolutionDocument{}, nil, err
	}
	if doc.ID == "" {
		return entities.ResolutionDocument{}, nil, ErrDocumentNotFound
	}
	data, err := u.blob.Read(ctx, doc.StoragePath)
	if err != nil {
		return entities.ResolutionDocument{}, nil, err
	}
	return doc, data, nil
}

// loadRenderAttachments preloads bytes for image attachments. A failed read
// leaves Data nil so the renderer omits that image instead of failing the
// whole document.
func (u *ResolutionDocumentUseCase) loadRenderAttachments(ctx context.Context, files []entities.AttachmentFile) []interfaces.RenderAttachment {
	out := make([]interfaces.RenderAttachment, 0, len(files))
	for _, f := range files {
		ra := interfaces.RenderAttachment{Kind: f.Kind, FileName: f.FileName}
		if IsImageFileName(f.FileName) {
			data, err := u.blob.Read(ctx, f.StoragePath)
			if err != nil {
				log.Printf("[resolution] skipping unreadable image %s: %v", f.StoragePath, err)
			} else {
				ra.Data = data
			}
		}
		out = append(out, ra)
	}
	return out
}

// IsImageFileName classifies attachments for the gallery by file extension.
func IsImageFileName(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif":
		return true
	}
	return false
}
