package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	response "instalaciones_xpto/internal/adapter/http/dto/response"
	"instalaciones_xpto/internal/usecase"
	"instalaciones_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// DocumentHandler serves generated resolution documents.
type DocumentHandler struct {
	usecase usecase.IResolutionDocumentUseCase
}

func NewDocumentHandler(uc usecase.IResolutionDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// ListDocuments serves document metadata for every generated version,
// oldest first.
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	docs, err := h.usecase.ListByApplication(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromResolutionDocuments(docs))
}

// DownloadDocument streams the PDF bytes of one document version.
func (h *DocumentHandler) DownloadDocument(c *gin.Context) {
	version, err := strconv.Atoi(c.Param("version"))
	if err != nil || version < 1 {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Version must be a positive integer", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	doc, data, err := h.usecase.Download(c.Request.Context(), c.Param("id"), version)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	c.Data(http.StatusOK, "application/pdf", data)
}
