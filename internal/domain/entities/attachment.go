package entities

import "time"

// AttachmentFile is evidence uploaded against an application.
//
// Storage model (DynamoDB):
//   - PK: application_id
//   - SK: id
//
// Kind is a free string tag. Membership in the requirement catalog is not
// enforced at write time; only the completeness checker cares which kinds
// are present when a decision is made.

type AttachmentFile struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	Kind          string    `json:"kind"`
	FileName      string    `json:"file_name"`
	MimeType      string    `json:"mime_type"`
	SizeBytes     int64     `json:"size_bytes"`
	StoragePath   string    `json:"storage_path"`
	UploadedBy    string    `json:"uploaded_by"`
	CreatedAt     time.Time `json:"created_at"`
}
