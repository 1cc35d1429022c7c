package routes

import (
	"instalaciones_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathApplications = "/applications"
	PathRequirements = "/requirements"
)

func addApplicationRoutes(
	rg *gin.RouterGroup,
	applicationHandler *handlers.ApplicationHandler,
	attachmentHandler *handlers.AttachmentHandler,
	documentHandler *handlers.DocumentHandler,
	catalogHandler *handlers.CatalogHandler,
) {
	applications := rg.Group(PathApplications)
	{
		applications.POST("", applicationHandler.CreateApplication)
		applications.GET("", applicationHandler.ListApplications)
		applications.GET("/:id", applicationHandler.GetApplication)
		applications.PATCH("/:id", applicationHandler.UpdateApplication)
		applications.POST("/:id/submit", applicationHandler.SubmitApplication)
		applications.POST("/:id/approve", applicationHandler.ApproveApplication)
		applications.POST("/:id/reject", applicationHandler.RejectApplication)
		applications.GET("/:id/history", applicationHandler.GetApplicationHistory)

		applications.POST("/:id/attachments", attachmentHandler.UploadAttachment)
		applications.GET("/:id/attachments", attachmentHandler.ListAttachments)

		applications.GET("/:id/documents", documentHandler.ListDocuments)
		applications.GET("/:id/documents/:version", documentHandler.DownloadDocument)
	}

	rg.GET(PathRequirements, catalogHandler.ListRequirements)
}
