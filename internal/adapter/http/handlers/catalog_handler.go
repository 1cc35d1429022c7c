package handlers

import (
	"net/http"

	response "instalaciones_xpto/internal/adapter/http/dto/response"
	"instalaciones_xpto/internal/usecase/interfaces"
	"instalaciones_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the attachment requirement catalog.
type CatalogHandler struct {
	catalog interfaces.IRequirementCatalog
}

func NewCatalogHandler(catalog interfaces.IRequirementCatalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListRequirements serves the catalog of attachment kinds an application
// needs before approval.
func (h *CatalogHandler) ListRequirements(c *gin.Context) {
	entries, err := h.catalog.List(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogEntries(entries))
}
