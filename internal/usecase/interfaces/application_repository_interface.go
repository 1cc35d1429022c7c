package interfaces

import (
	"context"
	"instalaciones_xpto/internal/domain/entities"
)

// ApplicationPage is one page of a filtered application listing. NextCursor
// is opaque; empty means the listing is exhausted.
type ApplicationPage struct {
	Items      []entities.Application
	NextCursor string
}

// IApplicationRepository abstracts DynamoDB persistence for Application.
//
// Insert and Transition pair the application write with its history row in a
// single transaction: either both apply or neither does. Reads follow the
// zero-value-means-absent convention used across the repositories.

type IApplicationRepository interface {
	// Insert persists a new application together with its creation history
	// entry, atomically.
	Insert(ctx context.Context, app entities.Application, entry entities.HistoryEntry) (entities.Application, error)

	GetByID(ctx context.Context, id string) (entities.Application, error)

	// Update overwrites mutable fields without touching history. Returns the
	// zero value when the application does not exist.
	Update(ctx context.Context, app entities.Application) (entities.Application, error)

	// Transition overwrites the application and appends the paired history
	// entry in one transaction. Returns the zero value when the application
	// does not exist.
	Transition(ctx context.Context, app entities.Application, entry entities.HistoryEntry) (entities.Application, error)

	ListByTechnician(ctx context.Context, technicianID, cursor string, limit int32) (ApplicationPage, error)
	ListByStatus(ctx context.Context, status entities.ApplicationStatus, cursor string, limit int32) (ApplicationPage, error)
}
