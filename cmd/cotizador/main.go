package main

import (
	_ "cotizador/docs"
	"cotizador/internal/cmd"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Cotizador API
// @version         1.0
// @description     Quoting for a metal-works shop: catalog, pricing and offline-first sync with a Google spreadsheet.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cmd.Execute()
}
