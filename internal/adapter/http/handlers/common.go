package handlers

import (
	"errors"
	"net/http"
	"strings"

	"instalaciones_xpto/internal/usecase"
	"instalaciones_xpto/internal/usecase/interfaces"
	"instalaciones_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// actorHeader carries the already-resolved acting user id. Token
// verification happens upstream of this service.
const actorHeader = "X-User-ID"

var errMissingActor = pkg.NewDomainErrorSimple("MISSING_ACTOR", "X-User-ID header is required", http.StatusUnauthorized)

func actorID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(actorHeader))
}

// mapWorkflowError translates usecase errors into the API error contract.
func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidApplicationID),
		errors.Is(err, usecase.ErrInvalidActorID),
		errors.Is(err, usecase.ErrInvalidApplicantData),
		errors.Is(err, usecase.ErrInvalidAttachmentInput),
		errors.Is(err, usecase.ErrEmptyRejectionReason):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrPermissionDenied):
		return pkg.NewDomainErrorSimple("PERMISSION_DENIED", "Actor lacks the required role or ownership", http.StatusForbidden)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return pkg.NewDomainErrorSimple("APPLICATION_NOT_FOUND", "Application not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Resolution document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidState):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "Operation not allowed in the current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrMissingAttachments):
		return pkg.NewDomainError("MISSING_ATTACHMENTS", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNoSupervisorsAvailable):
		return pkg.NewDomainErrorSimple("NO_SUPERVISORS_AVAILABLE", "No supervisors available for assignment", http.StatusConflict)
	case errors.Is(err, usecase.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("VERSION_CONFLICT", "Document version allocation conflicted, retry later", http.StatusConflict)
	case errors.Is(err, interfaces.ErrStorage):
		return pkg.NewDomainError("STORAGE_ERROR", "Artifact storage is unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
