package response

import (
	"time"

	"instalaciones_xpto/internal/domain/entities"
	"instalaciones_xpto/internal/usecase/interfaces"
)

type ApplicationResponse struct {
	ID                string     `json:"id"`
	ApplicantName     string     `json:"applicant_name"`
	ApplicantDocument string     `json:"applicant_document"`
	ContactPhone      string     `json:"contact_phone,omitempty"`
	Address           string     `json:"address,omitempty"`
	LocalityCode      string     `json:"locality_code,omitempty"`
	Stratum           int        `json:"stratum,omitempty"`
	Status            string     `json:"status"`
	TechnicianID      string     `json:"technician_id"`
	SupervisorID      string     `json:"supervisor_id,omitempty"`
	SubmittedAt       *time.Time `json:"submitted_at,omitempty"`
	ReviewedAt        *time.Time `json:"reviewed_at,omitempty"`
	ApprovedAt        *time.Time `json:"approved_at,omitempty"`
	RejectionReason   string     `json:"rejection_reason,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func FromApplication(a entities.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:                a.ID,
		ApplicantName:     a.ApplicantName,
		ApplicantDocument: a.ApplicantDocument,
		ContactPhone:      a.ContactPhone,
		Address:           a.Address,
		LocalityCode:      a.LocalityCode,
		Stratum:           a.Stratum,
		Status:            string(a.Status),
		TechnicianID:      a.TechnicianID,
		SupervisorID:      a.SupervisorID,
		SubmittedAt:       a.SubmittedAt,
		ReviewedAt:        a.ReviewedAt,
		ApprovedAt:        a.ApprovedAt,
		RejectionReason:   a.RejectionReason,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

type ApplicationPageResponse struct {
	Items      []ApplicationResponse `json:"items"`
	NextCursor string                `json:"next_cursor,omitempty"`
}

func FromApplicationPage(p interfaces.ApplicationPage) ApplicationPageResponse {
	items := make([]ApplicationResponse, 0, len(p.Items))
	for _, a := range p.Items {
		items = append(items, FromApplication(a))
	}
	return ApplicationPageResponse{Items: items, NextCursor: p.NextCursor}
}

type HistoryEntryResponse struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	FromStatus    *string   `json:"from_status"`
	ToStatus      string    `json:"to_status"`
	ActorID       string    `json:"actor_id"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromHistoryEntry(e entities.HistoryEntry) HistoryEntryResponse {
	var from *string
	if e.FromStatus != nil {
		s := string(*e.FromStatus)
		from = &s
	}
	return HistoryEntryResponse{
		ID:            e.ID,
		ApplicationID: e.ApplicationID,
		FromStatus:    from,
		ToStatus:      string(e.ToStatus),
		ActorID:       e.ActorID,
		Comment:       e.Comment,
		CreatedAt:     e.CreatedAt,
	}
}

func FromHistoryEntries(entries []entities.HistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromHistoryEntry(e))
	}
	return out
}

type AttachmentResponse struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	Kind          string    `json:"kind"`
	FileName      string    `json:"file_name"`
	MimeType      string    `json:"mime_type"`
	SizeBytes     int64     `json:"size_bytes"`
	UploadedBy    string    `json:"uploaded_by"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromAttachment(a entities.AttachmentFile) AttachmentResponse {
	return AttachmentResponse{
		ID:            a.ID,
		ApplicationID: a.ApplicationID,
		Kind:          a.Kind,
		FileName:      a.FileName,
		MimeType:      a.MimeType,
		SizeBytes:     a.SizeBytes,
		UploadedBy:    a.UploadedBy,
		CreatedAt:     a.CreatedAt,
	}
}

func FromAttachments(atts []entities.AttachmentFile) []AttachmentResponse {
	out := make([]AttachmentResponse, 0, len(atts))
	for _, a := range atts {
		out = append(out, FromAttachment(a))
	}
	return out
}

type ResolutionDocumentResponse struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	Version       int       `json:"version"`
	FileName      string    `json:"file_name"`
	GeneratedBy   string    `json:"generated_by"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromResolutionDocument(d entities.ResolutionDocument) ResolutionDocumentResponse {
	return ResolutionDocumentResponse{
		ID:            d.ID,
		ApplicationID: d.ApplicationID,
		Version:       d.Version,
		FileName:      d.FileName,
		GeneratedBy:   d.GeneratedBy,
		CreatedAt:     d.CreatedAt,
	}
}

func FromResolutionDocuments(docs []entities.ResolutionDocument) []ResolutionDocumentResponse {
	out := make([]ResolutionDocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, FromResolutionDocument(d))
	}
	return out
}

type RequirementCatalogEntryResponse struct {
	Kind        string `json:"kind"`
	IsRequired  bool   `json:"is_required"`
	Description string `json:"description,omitempty"`
}

func FromCatalogEntries(entries []entities.RequirementCatalogEntry) []RequirementCatalogEntryResponse {
	out := make([]RequirementCatalogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, RequirementCatalogEntryResponse{Kind: e.Kind, IsRequired: e.IsRequired, Description: e.Description})
	}
	return out
}
