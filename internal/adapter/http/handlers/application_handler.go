package handlers

import (
	"net/http"
	"strconv"

	request "instalaciones_xpto/internal/adapter/http/dto/request"
	response "instalaciones_xpto/internal/adapter/http/dto/response"
	"instalaciones_xpto/internal/domain/entities"
	"instalaciones_xpto/internal/usecase"
	"instalaciones_xpto/internal/usecase/interfaces"
	"instalaciones_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidApplicationPayload = pkg.NewDomainErrorSimple("INVALID_APPLICATION_INPUT", "Invalid application payload", http.StatusBadRequest)

// ApplicationHandler handles HTTP requests for the application lifecycle.
type ApplicationHandler struct {
	usecase usecase.IApplicationLifecycle
}

func NewApplicationHandler(uc usecase.IApplicationLifecycle) *ApplicationHandler {
	return &ApplicationHandler{usecase: uc}
}

// CreateApplication opens a new draft owned by the acting technician.
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	actor := actorID(c)
	if actor == "" {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}
	var payload request.CreateApplicationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidApplicationPayload.HTTPStatus, errInvalidApplicationPayload.ToHTTPError())
		return
	}

	app, err := h.usecase.Create(c.Request.Context(), payload.ToInput(), actor)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromApplication(app))
}

// UpdateApplication patches applicant fields while the application is still
// editable (DRAFT or REJECTED).
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	actor := actorID(c)
	if actor == "" {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}
	var payload request.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Empty() {
		c.JSON(errInvalidApplicationPayload.HTTPStatus, errInvalidApplicationPayload.ToHTTPError())
		return
	}

	app, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch(), actor)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(app))
}

// SubmitApplication hands the application to review and assigns a supervisor.
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	actor := actorID(c)
	if actor == "" {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}
	app, err := h.usecase.Submit(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(app))
}

// ApproveApplication records an approval decision and triggers resolution
// document generation.
func (h *ApplicationHandler) ApproveApplication(c *gin.Context) {
	actor := actorID(c)
	if actor == "" {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}
	var payload request.ApproveApplicationRequest
	if err := c.ShouldBindJSON(&payload); err != nil && c.Request.ContentLength > 0 {
		c.JSON(errInvalidApplicationPayload.HTTPStatus, errInvalidApplicationPayload.ToHTTPError())
		return
	}

	app, err := h.usecase.Approve(c.Request.Context(), c.Param("id"), actor, payload.ResolveComment())
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(app))
}

// RejectApplication records a rejection decision with its reason and triggers
// resolution document generation.
func (h *ApplicationHandler) RejectApplication(c *gin.Context) {
	actor := actorID(c)
	if actor == "" {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}
	var payload request.RejectApplicationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidApplicationPayload.HTTPStatus, errInvalidApplicationPayload.ToHTTPError())
		return
	}

	app, err := h.usecase.Reject(c.Request.Context(), c.Param("id"), actor, payload.ResolveReason())
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(app))
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	app, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(app))
}

// ListApplications serves paginated listings filtered by technician_id or
// status (exactly one filter is required).
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	technicianID := c.Query("technician_id")
	status := c.Query("status")
	cursor := c.Query("cursor")
	limit64, _ := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 32)
	limit := int32(limit64)

	var page interfaces.ApplicationPage
	var err error
	switch {
	case technicianID != "":
		page, err = h.usecase.ListByTechnician(c.Request.Context(), technicianID, cursor, limit)
	case status != "":
		page, err = h.usecase.ListByStatus(c.Request.Context(), entities.ApplicationStatus(status), cursor, limit)
	default:
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "technician_id or status filter is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromApplicationPage(page))
}

// GetApplicationHistory serves the append-only transition ledger.
func (h *ApplicationHandler) GetApplicationHistory(c *gin.Context) {
	entries, err := h.usecase.HistoryFor(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHistoryEntries(entries))
}
