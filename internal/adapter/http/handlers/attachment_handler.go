package handlers

import (
	"io"
	"net/http"
	"strings"

	response "instalaciones_xpto/internal/adapter/http/dto/response"
	"instalaciones_xpto/internal/usecase"
	"instalaciones_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// maxAttachmentSize caps uploads at 10 MiB per file.
const maxAttachmentSize = 10 << 20

var errInvalidAttachmentPayload = pkg.NewDomainErrorSimple("INVALID_ATTACHMENT_INPUT", "A kind field and a file part are required", http.StatusBadRequest)

// AttachmentHandler handles evidence file uploads and listings.
type AttachmentHandler struct {
	usecase usecase.IAttachmentUseCase
}

func NewAttachmentHandler(uc usecase.IAttachmentUseCase) *AttachmentHandler {
	return &AttachmentHandler{usecase: uc}
}

// UploadAttachment stores a multipart evidence file under the application.
func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	actor := actorID(c)
	if actor == "" {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	kind := strings.TrimSpace(c.PostForm("kind"))
	fileHeader, err := c.FormFile("file")
	if err != nil || kind == "" {
		c.JSON(errInvalidAttachmentPayload.HTTPStatus, errInvalidAttachmentPayload.ToHTTPError())
		return
	}
	if fileHeader.Size > maxAttachmentSize {
		appErr := pkg.NewDomainErrorSimple("ATTACHMENT_TOO_LARGE", "Attachment exceeds the 10 MiB limit", http.StatusRequestEntityTooLarge)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(errInvalidAttachmentPayload.HTTPStatus, errInvalidAttachmentPayload.ToHTTPError())
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	att, err := h.usecase.Upload(c.Request.Context(), c.Param("id"), kind, fileHeader.Filename, mimeType, data, actor)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromAttachment(att))
}

// ListAttachments serves every evidence file uploaded for the application.
func (h *AttachmentHandler) ListAttachments(c *gin.Context) {
	atts, err := h.usecase.ListByApplication(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAttachments(atts))
}
