package config

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "github.com/taskflow/taskflow-api/docs"
)

// AddSwaggerRoutes serves the interactive API documentation.
func AddSwaggerRoutes(app *fiber.App) {
	app.Get("/api-docs/*", swagger.HandlerDefault)
}
