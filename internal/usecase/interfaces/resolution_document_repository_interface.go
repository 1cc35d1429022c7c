package interfaces

import (
	"context"
	"instalaciones_xpto/internal/domain/entities"
)

// IResolutionDocumentRepository abstracts DynamoDB persistence for
// ResolutionDocument.
//
// Insert is protected by a uniqueness condition on (application_id, version)
// and returns the zero value when a concurrent decision raced ahead on the
// same version, so callers can re-allocate and retry.

type IResolutionDocumentRepository interface {
	Insert(ctx context.Context, d entities.ResolutionDocument) (entities.ResolutionDocument, error)

	// MaxVersion returns the highest allocated version for the application,
	// or 0 when no document exists yet.
	MaxVersion(ctx context.Context, applicationID string) (int, error)

	GetByVersion(ctx context.Context, applicationID string, version int) (entities.ResolutionDocument, error)
	ListByApplication(ctx context.Context, applicationID string) ([]entities.ResolutionDocument, error)
}
