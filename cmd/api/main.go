package main

import (
	_ "seguros_xpto/docs"
	"seguros_xpto/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Seguros XPTO Lifecycle API
// @version         1.0
// @description     Quote-to-policy lifecycle service (simulations, policies and their PDF documents) backed by DynamoDB and S3.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and an HS256 JWT. The token carries the user id (sub), email and role claims; role "admin" unlocks the back-office operations. Simulation submission also accepts anonymous calls.

func main() {
	routes.Run()
}
