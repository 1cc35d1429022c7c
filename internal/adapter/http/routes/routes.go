package routes

import (
	"log"
	_ "instalaciones_xpto/docs" // This will be auto-generated
	"instalaciones_xpto/internal/adapter/accesscontrol"
	"instalaciones_xpto/internal/adapter/catalog"
	"instalaciones_xpto/internal/adapter/http/handlers"
	"instalaciones_xpto/internal/adapter/render"
	repository2 "instalaciones_xpto/internal/adapter/persistence/repository"
	blobstore "instalaciones_xpto/internal/adapter/storage"
	"instalaciones_xpto/internal/infrastructure/database"
	"instalaciones_xpto/internal/infrastructure/storage"
	"instalaciones_xpto/internal/usecase"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	s3Client := storage.ConnectS3()

	applicationRepo := repository2.NewApplicationDynamoRepository(ddb)
	historyRepo := repository2.NewHistoryDynamoRepository(ddb)
	attachmentRepo := repository2.NewAttachmentDynamoRepository(ddb)
	documentRepo := repository2.NewResolutionDocumentDynamoRepository(ddb)
	roleRepo := repository2.NewRoleDynamoRepository(ddb)

	blob := blobstore.NewS3BlobStore(s3Client)
	access := accesscontrol.NewFromEnv(roleRepo)
	requirementCatalog := catalog.NewStaticCatalogFromEnv()

	checker := usecase.NewCompletenessChecker(requirementCatalog, attachmentRepo)
	assigner := usecase.NewSupervisorAssigner(access)
	renderer := render.NewResolutionPDFRenderer()

	documentUseCase := usecase.NewResolutionDocumentUseCase(documentRepo, attachmentRepo, blob, renderer)
	lifecycleUseCase := usecase.NewApplicationLifecycleUseCase(applicationRepo, historyRepo, access, assigner, checker, documentUseCase)
	attachmentUseCase := usecase.NewAttachmentUseCase(applicationRepo, attachmentRepo, blob)

	applicationHandler := handlers.NewApplicationHandler(lifecycleUseCase)
	attachmentHandler := handlers.NewAttachmentHandler(attachmentUseCase)
	documentHandler := handlers.NewDocumentHandler(documentUseCase)
	catalogHandler := handlers.NewCatalogHandler(requirementCatalog)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addApplicationRoutes(v1, applicationHandler, attachmentHandler, documentHandler, catalogHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
