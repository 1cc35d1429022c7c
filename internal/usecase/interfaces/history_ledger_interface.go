package interfaces

import (
	"context"
	"instalaciones_xpto/internal/domain/entities"
)

// IHistoryLedger is the append-only transition log per application.
//
// There is deliberately no update or delete operation. Lifecycle transitions
// append through the application repository's transactional writes; Append
// exists for collaborators that record entries outside a transition.

type IHistoryLedger interface {
	Append(ctx context.Context, entry entities.HistoryEntry) (entities.HistoryEntry, error)
	ListFor(ctx context.Context, applicationID string) ([]entities.HistoryEntry, error)
}
