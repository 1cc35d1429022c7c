package entities

import "time"

// HistoryEntry is one row of the append-only transition ledger.
//
// Storage model (DynamoDB):
//   - PK: application_id
//   - SK: sort_key (created_at#id, insertion ordered)
//
// FromStatus is nil only for the creation entry. Rows are never updated or
// deleted; this is the sole audit trail for status changes. In-place field
// edits do not produce an entry.

type HistoryEntry struct {
	ID            string             `json:"id"`
	ApplicationID string             `json:"application_id"`
	FromStatus    *ApplicationStatus `json:"from_status,omitempty"`
	ToStatus      ApplicationStatus  `json:"to_status"`
	ActorID       string             `json:"actor_id"`
	Comment       string             `json:"comment,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}
