package entities

import "time"

// ResolutionDocument is the versioned PDF snapshot produced for every
// approval or rejection decision.
//
// Storage model (DynamoDB):
//   - PK: application_id
//   - SK: version (number)
//
// Versions start at 1 and are strictly increasing per application. A
// conditional put on the key pair guarantees no two documents ever share a
// version. Documents are never deleted.

type ResolutionDocument struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	Version       int       `json:"version"`
	FileName      string    `json:"file_name"`
	StoragePath   string    `json:"storage_path"`
	GeneratedBy   string    `json:"generated_by"`
	CreatedAt     time.Time `json:"created_at"`
}
