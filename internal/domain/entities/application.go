package entities

import "time"

// ApplicationStatus represents the review lifecycle of an installation request.
//
// Allowed transitions:
//   - DRAFT     -> SUBMITTED
//   - SUBMITTED -> APPROVED | REJECTED
//   - REJECTED  -> SUBMITTED (resubmission after edit)
//
// APPROVED is terminal for edits.

type ApplicationStatus string

const (
	StatusDraft     ApplicationStatus = "DRAFT"
	StatusSubmitted ApplicationStatus = "SUBMITTED"
	StatusApproved  ApplicationStatus = "APPROVED"
	StatusRejected  ApplicationStatus = "REJECTED"
)

// Editable reports whether the owning technician may still change the
// application (field edits and submission are only allowed here).
func (s ApplicationStatus) Editable() bool {
	return s == StatusDraft || s == StatusRejected
}

// RoleCode identifies a role in the external role directory.
type RoleCode string

const (
	RoleTecnico    RoleCode = "TECNICO"
	RoleSupervisor RoleCode = "SUPERVISOR"
)

// Application is an installation-service request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (technician_id-index): technician_id
//   - GSI2 (status-index): status
//
// TechnicianID never changes after creation. SupervisorID is set at
// submission and overwritten with the acting supervisor on every decision.

type Application struct {
	ID                string            `json:"id"`
	ApplicantName     string            `json:"applicant_name"`
	ApplicantDocument string            `json:"applicant_document"`
	ContactPhone      string            `json:"contact_phone"`
	Address           string            `json:"address"`
	LocalityCode      string            `json:"locality_code"`
	Stratum           int               `json:"stratum"`
	Status            ApplicationStatus `json:"status"`
	TechnicianID      string            `json:"technician_id"`
	SupervisorID      string            `json:"supervisor_id,omitempty"`
	SubmittedAt       *time.Time        `json:"submitted_at,omitempty"`
	ReviewedAt        *time.Time        `json:"reviewed_at,omitempty"`
	ApprovedAt        *time.Time        `json:"approved_at,omitempty"`
	RejectionReason   string            `json:"rejection_reason,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}
