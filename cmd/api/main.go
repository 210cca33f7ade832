package main

import (
	_ "orcamentos_api/docs"
	"orcamentos_api/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Orçamentos API
// @version         1.0
// @description     Business management API (clients, budgets, finances, meetings, marketing, notes and texts) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
