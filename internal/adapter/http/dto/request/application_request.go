package request

import (
	"strings"

	"instalaciones_xpto/internal/usecase"
)

// CreateApplicationRequest is the payload for opening a new draft.
type CreateApplicationRequest struct {
	ApplicantName     string `json:"applicant_name" binding:"required"`
	ApplicantDocument string `json:"applicant_document" binding:"required"`
	ContactPhone      string `json:"contact_phone"`
	Address           string `json:"address"`
	LocalityCode      string `json:"locality_code"`
	Stratum           int    `json:"stratum"`
}

func (r CreateApplicationRequest) ToInput() usecase.CreateApplicationInput {
	return usecase.CreateApplicationInput{
		ApplicantName:     strings.TrimSpace(r.ApplicantName),
		ApplicantDocument: strings.TrimSpace(r.ApplicantDocument),
		ContactPhone:      strings.TrimSpace(r.ContactPhone),
		Address:           strings.TrimSpace(r.Address),
		LocalityCode:      strings.TrimSpace(r.LocalityCode),
		Stratum:           r.Stratum,
	}
}

// UpdateApplicationRequest patches applicant fields on a draft or rejected
// application. Absent fields are left untouched.
type UpdateApplicationRequest struct {
	ApplicantName     *string `json:"applicant_name"`
	ApplicantDocument *string `json:"applicant_document"`
	ContactPhone      *string `json:"contact_phone"`
	Address           *string `json:"address"`
	LocalityCode      *string `json:"locality_code"`
	Stratum           *int    `json:"stratum"`
}

func (r UpdateApplicationRequest) ToPatch() usecase.ApplicationPatch {
	return usecase.ApplicationPatch{
		ApplicantName:     r.ApplicantName,
		ApplicantDocument: r.ApplicantDocument,
		ContactPhone:      r.ContactPhone,
		Address:           r.Address,
		LocalityCode:      r.LocalityCode,
		Stratum:           r.Stratum,
	}
}

// Empty reports whether the patch carries no fields at all.
func (r UpdateApplicationRequest) Empty() bool {
	return r.ApplicantName == nil && r.ApplicantDocument == nil && r.ContactPhone == nil &&
		r.Address == nil && r.LocalityCode == nil && r.Stratum == nil
}

// ApproveApplicationRequest carries the optional supervisor comment.
type ApproveApplicationRequest struct {
	Comment string `json:"comment"`
}

func (r ApproveApplicationRequest) ResolveComment() string {
	return strings.TrimSpace(r.Comment)
}

// RejectApplicationRequest carries the mandatory rejection reason.
type RejectApplicationRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (r RejectApplicationRequest) ResolveReason() string {
	return strings.TrimSpace(r.Reason)
}
