package interfaces

import (
	"context"
	"instalaciones_xpto/internal/domain/entities"
)

// IAttachmentRepository abstracts DynamoDB persistence for AttachmentFile.

type IAttachmentRepository interface {
	Insert(ctx context.Context, a entities.AttachmentFile) (entities.AttachmentFile, error)
	ListByApplication(ctx context.Context, applicationID string) ([]entities.AttachmentFile, error)

	// DistinctKinds returns the set of kinds currently attached to the
	// application, deduplicated, in no particular order.
	DistinctKinds(ctx context.Context, applicationID string) ([]string, error)
}
