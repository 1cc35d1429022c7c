package main

import (
	_ "instalaciones_xpto/docs"
	"instalaciones_xpto/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Installation Service API
// @version         1.0
// @description     Installation application review workflow (lifecycle, attachments, resolution documents) backed by DynamoDB and S3.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey ActorID
// @in header
// @name X-User-ID
// @description Identifier of the acting user, resolved by the gateway.

func main() {
	routes.Run()
}
